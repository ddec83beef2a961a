package types

import (
	"fmt"
	"time"
)

// ==================== 集合（Collection）领域类型 ====================

// SocialLinks 集合的社交链接
//
// 所有字段均为可选，序列化后作为元数据的一项随集合记录上链。
type SocialLinks struct {
	Website  string `json:"website,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Telegram string `json:"telegram,omitempty"`
	Discord  string `json:"discord,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Github   string `json:"github,omitempty"`
}

// CollectionDraft 集合创建请求的用户输入
//
// 对应创建表单收集的全部字段，提交前由 collectionsvc 做完整校验。
type CollectionDraft struct {
	// Name 集合名称（链上标识符，受命名规则约束）
	Name string `json:"name"`

	// DisplayName 展示名称（无命名规则约束）
	DisplayName string `json:"display_name"`

	// ImageCID 集合封面图的内容寻址哈希（base58 编码的 CIDv0）
	ImageCID string `json:"image_cid"`

	// MarketFee 二级市场手续费率，取值范围 [0, 0.15]
	MarketFee float64 `json:"market_fee"`

	// Description 集合描述
	Description string `json:"description,omitempty"`

	// Socials 社交链接
	Socials SocialLinks `json:"socials,omitempty"`
}

// MetadataEntry 集合元数据的键值对
//
// 链上集合记录携带结构化的键值元数据，值统一为字符串。
type MetadataEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CollectionRecord 完整组装后的集合记录
//
// 由 CollectionDraft 加上创建者身份与序列化元数据构成，
// 是提交给创建服务（钱包签名服务）的最终载荷。
type CollectionRecord struct {
	Name        string          `json:"name"`
	DisplayName string          `json:"display_name"`
	MarketFee   float64         `json:"market_fee"`
	Author      string          `json:"author"`
	Metadata    []MetadataEntry `json:"metadata"`
}

// CreateReceipt 创建成功后的回执
type CreateReceipt struct {
	// Name 已创建的集合名称
	Name string `json:"name"`

	// TxHash 上链交易哈希
	TxHash string `json:"tx_hash"`

	// Timestamp 创建服务确认的时间
	Timestamp time.Time `json:"timestamp"`
}

// ==================== 用户可见的失败报告 ====================

// SubmitReport 面向用户的提交失败报告
//
// 创建流程的失败统一转换为"标题 + 简短说明 + 原始诊断详情"
// 三段式结构：标题与说明给用户看，详情供排查问题时展开查看。
type SubmitReport struct {
	// Title 失败标题（如 "集合创建失败"）
	Title string `json:"title"`

	// Message 用户可读的简短说明
	Message string `json:"message"`

	// Details 原始诊断详情（底层错误串、服务端返回的 detail 等）
	Details string `json:"details,omitempty"`
}

// Error 实现 error 接口
func (r *SubmitReport) Error() string {
	if r.Details == "" {
		return fmt.Sprintf("%s: %s", r.Title, r.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", r.Title, r.Message, r.Details)
}

// NewSubmitReport 创建失败报告
func NewSubmitReport(title, message, details string) *SubmitReport {
	return &SubmitReport{
		Title:   title,
		Message: message,
		Details: details,
	}
}
