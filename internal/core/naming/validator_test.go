package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==================== IsClaimable 测试 ====================

func TestIsClaimable_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		account  string
		expected bool
		desc     string
	}{
		{
			name:     "超长名称 - 13位",
			input:    "abcdefghijklm",
			account:  "alice",
			expected: false,
			desc:     "超过12位的名称一律非法",
		},
		{
			name:     "超长名称 - 等于超长账户名",
			input:    "abcdefghijklm",
			account:  "abcdefghijklm",
			expected: false,
			desc:     "长度规则优先于账户名相等判定",
		},
		{
			name:     "等于账户名",
			input:    "alice",
			account:  "alice",
			expected: true,
			desc:     "账户可以注册与自己同名的集合",
		},
		{
			name:     "账户命名空间子名称",
			input:    "abc.alice",
			account:  "alice",
			expected: true,
			desc:     "以 .账户名 结尾说明账户拥有该命名空间",
		},
		{
			name:     "以分隔符开头的子名称",
			input:    ".alice",
			account:  "alice",
			expected: false,
			desc:     "子名称的前缀部分不能为空",
		},
		{
			name:     "满12位且无分隔符",
			input:    "abcdefghijkl",
			account:  "anything",
			expected: true,
			desc:     "满12位名称对任何账户都可注册",
		},
		{
			name:     "满12位但含分隔符",
			input:    "abcdefghij.l",
			account:  "anything",
			expected: false,
			desc:     "满12位名称不允许包含分隔符",
		},
		{
			name:     "满12位且后缀恰为 .账户名",
			input:    "abcdef.alice",
			account:  "alice",
			expected: false,
			desc:     "长度分支优先：12位含分隔符即拒绝，后缀不豁免",
		},
		{
			name:     "11位子名称",
			input:    "abcde.alice",
			account:  "alice",
			expected: true,
			desc:     "不足12位的命名空间子名称正常放行",
		},
		{
			name:     "短名称但与账户无关",
			input:    "abcde",
			account:  "alice",
			expected: false,
			desc:     "不足12位且不属于账户命名空间的名称拒绝",
		},
		{
			name:     "后缀相似但缺少分隔符",
			input:    "abcalice",
			account:  "alice",
			expected: false,
			desc:     "必须以 .账户名 结尾，直接拼接不算命名空间",
		},
		{
			name:     "空名称",
			input:    "",
			account:  "alice",
			expected: false,
			desc:     "空串既不等于账户名也没有合法后缀",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsClaimable(tt.input, tt.account)
			assert.Equal(t, tt.expected, result, tt.desc)
		})
	}
}

func TestIsClaimable_LongNamesAlwaysRejected(t *testing.T) {
	// 任意超过12位的名称对任意账户都应拒绝
	accounts := []string{"", "alice", "abcdefghijkl", strings.Repeat("a", 20)}
	longNames := []string{
		strings.Repeat("a", 13),
		strings.Repeat("1", 64),
		"aaaa.bbbb.cccc",
	}
	for _, name := range longNames {
		for _, account := range accounts {
			assert.False(t, IsClaimable(name, account),
				"name=%q account=%q", name, account)
		}
	}
}

func TestIsClaimable_SelfNameAccepted(t *testing.T) {
	// 不超过12位时，名称等于账户名恒可注册
	for _, account := range []string{"a", "bob", "alice", "sub.alice", "abcdefghijkl"} {
		assert.True(t, IsClaimable(account, account), "account=%q", account)
	}
}

func TestIsClaimable_ExactTwelveWithDot(t *testing.T) {
	base := "abcdefghijkl"
	assert.True(t, IsClaimable(base, "anything"))

	// 任意位置替换为分隔符后都应拒绝
	for i := 0; i < len(base); i++ {
		mutated := base[:i] + "." + base[i+1:]
		assert.False(t, IsClaimable(mutated, "anything"), "mutated=%q", mutated)
	}
}

// ==================== IsWellFormed 测试 ====================

func TestIsWellFormed(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"alice", true},
		{"abc.alice", true},
		{"12345", true},
		{"a1b2c3", true},
		{"", false},
		{"Alice", false},        // 大写非法
		{"abc6", false},         // 6-9 不在字符集内
		{"abc0", false},         // 0 不在字符集内
		{"abc alice", false},    // 空格非法
		{"abcdefghijklm", false}, // 超长
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsWellFormed(tt.input))
		})
	}
}
