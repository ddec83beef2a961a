// Package constants 定义链上命名规则相关的常量
package constants

// 链上名称规则常量
//
// 链采用固定进制的短名称编码：合法字符为小写字母 a-z 与数字 1-5，
// `.` 作为命名空间分隔符。名称最长 12 个字符。
const (
	// MaxNameLength 名称最大长度（含分隔符）
	MaxNameLength = 12

	// NameAlphabet 名称合法字符集（不含分隔符）
	NameAlphabet = "abcdefghijklmnopqrstuvwxyz12345"

	// NameSeparator 命名空间分隔符
	NameSeparator = "."

	// SuggestAlphabet 自动生成候选名称时使用的字符集
	//
	// 满 12 位且不含 `.` 的名称无需命名空间授权即可注册，
	// 因此候选只需从数字集合中均匀采样即可保证可注册性。
	// 这是一个实现上的简化选择，并非链规则的要求。
	SuggestAlphabet = "12345"
)
