// Package wallet 定义钱包会话的最小接口
//
// 钱包认证与交易签名由外部服务完成，本仓库只消费会话暴露的
// 账户身份。会话缺失时上层应提示用户连接钱包，而不是报错。
package wallet

// Session 已认证的钱包会话
type Session interface {
	// Account 返回当前会话的账户名
	Account() string

	// Connected 会话是否有效
	Connected() bool
}
