// Package handlers provides HTTP API handlers for the collection service
package handlers

// ==================== 📋 标准API响应结构 ====================

// StandardAPIResponse 标准API响应格式
// ✅ 统一所有handler的响应格式，提供一致的用户体验
type StandardAPIResponse struct {
	Success bool        `json:"success"`           // 操作是否成功
	Data    interface{} `json:"data,omitempty"`    // 响应数据（成功时）
	Message string      `json:"message,omitempty"` // 成功消息或简要说明
	Error   *APIError   `json:"error,omitempty"`   // 错误信息（失败时）
}

// APIError 标准错误结构
type APIError struct {
	Code    string `json:"code"`              // 错误代码（用于程序化处理）
	Message string `json:"message"`           // 用户友好的错误消息
	Details string `json:"details,omitempty"` // 详细错误信息（调试用）
}

// ==================== 🎯 通用错误代码常量 ====================

// 请求相关错误
const (
	ErrorCodeInvalidParameter = "INVALID_PARAMETER"
	ErrorCodeInvalidJSON      = "INVALID_JSON"
)

// 业务逻辑相关错误
const (
	ErrorCodeNameNotClaimable   = "NAME_NOT_CLAIMABLE"
	ErrorCodeNameTaken          = "NAME_TAKEN"
	ErrorCodeCollectionNotFound = "COLLECTION_NOT_FOUND"
	ErrorCodeCreateFailed       = "CREATE_FAILED"
	ErrorCodeGenerationFailed   = "GENERATION_FAILED"
)

// 系统相关错误
const (
	ErrorCodeNetworkError  = "NETWORK_ERROR"
	ErrorCodeInternalError = "INTERNAL_ERROR"
)

// successResponse 构建成功响应
func successResponse(data interface{}, message string) StandardAPIResponse {
	return StandardAPIResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// errorResponse 构建失败响应
func errorResponse(code, message, details string) StandardAPIResponse {
	return StandardAPIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}
