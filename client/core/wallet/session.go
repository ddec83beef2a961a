// Package wallet 提供命令行场景下的钱包会话实现
package wallet

import (
	walletiface "github.com/mintarc/v1/pkg/interfaces/wallet"
)

// StaticSession 固定账户的钱包会话
//
// CLI 场景下没有交互式钱包连接流程，账户名由命令行参数
// 或环境变量给出。账户为空即视为"未连接"。
type StaticSession struct {
	account string
}

// 确保实现接口
var _ walletiface.Session = (*StaticSession)(nil)

// NewStaticSession 创建固定账户会话
func NewStaticSession(account string) *StaticSession {
	return &StaticSession{account: account}
}

// Account 返回会话账户名
func (s *StaticSession) Account() string {
	return s.account
}

// Connected 账户非空即视为已连接
func (s *StaticSession) Connected() bool {
	return s.account != ""
}
