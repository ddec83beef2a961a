// Package naming 实现链上名称的可用性校验与未占用名称生成
package naming

import (
	"strings"

	"github.com/mintarc/v1/pkg/constants"
	naminginterface "github.com/mintarc/v1/pkg/interfaces/naming"
)

// IsClaimable 判断 account 是否有权注册名称 name
//
// 链的命名规则：
//   - 超过 12 位的名称一律非法
//   - 恰好 12 位的名称无需命名空间授权即可注册，但不允许包含分隔符
//     （即使后缀恰好是 ".账户名" 也不放行，长度分支优先判定）
//   - 不足 12 位的名称必须等于账户名本身，或是账户命名空间下的
//     子名称（以 ".账户名" 结尾且不以分隔符开头）
//
// 纯函数，无副作用，恒返回确定的布尔值。
func IsClaimable(name, account string) bool {
	if len(name) > constants.MaxNameLength {
		return false
	}
	if len(name) == constants.MaxNameLength {
		return !strings.Contains(name, constants.NameSeparator)
	}
	if name == account {
		return true
	}
	return strings.HasSuffix(name, constants.NameSeparator+account) &&
		!strings.HasPrefix(name, constants.NameSeparator)
}

// IsWellFormed 判断名称是否只包含合法字符
//
// 字符集校验与授权校验是两个独立维度：IsClaimable 只回答
// "这个账户能不能注册它"，IsWellFormed 回答"链会不会接受这串字符"。
func IsWellFormed(name string) bool {
	if name == "" || len(name) > constants.MaxNameLength {
		return false
	}
	for _, r := range name {
		if !strings.ContainsRune(constants.NameAlphabet, r) &&
			string(r) != constants.NameSeparator {
			return false
		}
	}
	return true
}

// Validator naming.Validator 接口的无状态实现
type Validator struct{}

// 确保实现接口
var _ naminginterface.Validator = (*Validator)(nil)

// NewValidator 创建名称校验器
func NewValidator() *Validator {
	return &Validator{}
}

// IsClaimable 实现 naming.Validator 接口
func (v *Validator) IsClaimable(name, account string) bool {
	return IsClaimable(name, account)
}
