package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	collectioniface "github.com/mintarc/v1/pkg/interfaces/collection"
	naminginterface "github.com/mintarc/v1/pkg/interfaces/naming"
	"github.com/mintarc/v1/pkg/types"
)

// NamingHandler 名称校验与生成端点处理器
type NamingHandler struct {
	logger    *zap.Logger
	service   collectioniface.Service
	suggester naminginterface.Suggester
}

// NewNamingHandler 创建名称处理器
func NewNamingHandler(logger *zap.Logger, service collectioniface.Service, suggester naminginterface.Suggester) *NamingHandler {
	return &NamingHandler{
		logger:    logger,
		service:   service,
		suggester: suggester,
	}
}

// validateNameRequest 名称校验请求
type validateNameRequest struct {
	Name    string `json:"name" binding:"required"`
	Account string `json:"account" binding:"required"`
}

// validateNameResponse 名称校验响应
//
// Registrable 是最终判定：规则校验通过且账本确认未被占用。
// Claimable/Status 保留中间结果，供调用方展示具体原因。
type validateNameResponse struct {
	Name        string `json:"name"`
	Claimable   bool   `json:"claimable"`
	Status      string `json:"status"` // found | not_found | unknown
	Registrable bool   `json:"registrable"`
	Reason      string `json:"reason,omitempty"` // NAME_NOT_CLAIMABLE | NAME_TAKEN
}

// ValidateName 校验名称可用性
//
// POST /api/v1/names/validate
func (h *NamingHandler) ValidateName(c *gin.Context) {
	var req validateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(ErrorCodeInvalidJSON, "请求体解析失败", err.Error()))
		return
	}

	claimable, status, err := h.service.CheckName(c.Request.Context(), req.Name, req.Account)
	if err != nil {
		h.logger.Warn("名称占用查询失败", zap.String("name", req.Name), zap.Error(err))
		c.JSON(http.StatusBadGateway, errorResponse(ErrorCodeNetworkError, "无法查询名称占用状态", err.Error()))
		return
	}

	resp := validateNameResponse{
		Name:        req.Name,
		Claimable:   claimable,
		Status:      status.String(),
		Registrable: claimable && status == types.LookupNotFound,
	}
	switch {
	case !claimable:
		resp.Reason = ErrorCodeNameNotClaimable
	case status == types.LookupFound:
		resp.Reason = ErrorCodeNameTaken
	}
	c.JSON(http.StatusOK, successResponse(resp, ""))
}

// suggestNameResponse 名称生成响应
type suggestNameResponse struct {
	Name string `json:"name"`
}

// SuggestName 生成一个未被占用的名称
//
// POST /api/v1/names/suggest
func (h *NamingHandler) SuggestName(c *gin.Context) {
	name, err := h.suggester.Suggest(c.Request.Context())
	if err != nil {
		if errors.Is(err, types.ErrGenerationExhausted) {
			c.JSON(http.StatusServiceUnavailable, errorResponse(ErrorCodeGenerationFailed, "名称生成达到尝试上限", err.Error()))
			return
		}
		h.logger.Warn("名称生成失败", zap.Error(err))
		c.JSON(http.StatusBadGateway, errorResponse(ErrorCodeNetworkError, "名称生成过程中查询失败", err.Error()))
		return
	}

	c.JSON(http.StatusOK, successResponse(suggestNameResponse{Name: name}, ""))
}
