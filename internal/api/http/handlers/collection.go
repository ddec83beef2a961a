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

// CollectionHandler 集合端点处理器
type CollectionHandler struct {
	logger   *zap.Logger
	service  collectioniface.Service
	registry naminginterface.Registry
}

// NewCollectionHandler 创建集合处理器
func NewCollectionHandler(logger *zap.Logger, service collectioniface.Service, registry naminginterface.Registry) *CollectionHandler {
	return &CollectionHandler{
		logger:   logger,
		service:  service,
		registry: registry,
	}
}

// createCollectionRequest 集合创建请求
type createCollectionRequest struct {
	Actor string                `json:"actor" binding:"required"`
	Draft types.CollectionDraft `json:"draft" binding:"required"`
}

// CreateCollection 创建集合
//
// POST /api/v1/collections
func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	var req createCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(ErrorCodeInvalidJSON, "请求体解析失败", err.Error()))
		return
	}

	receipt, err := h.service.CreateCollection(c.Request.Context(), req.Actor, &req.Draft)
	if err != nil {
		// 失败报告带完整的三段式结构，按原样返回给前端展示
		var report *types.SubmitReport
		if errors.As(err, &report) {
			c.JSON(http.StatusUnprocessableEntity, errorResponse(ErrorCodeCreateFailed, report.Message, report.Details))
			return
		}
		h.logger.Error("集合创建失败", zap.String("name", req.Draft.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse(ErrorCodeInternalError, "集合创建失败", err.Error()))
		return
	}

	c.JSON(http.StatusOK, successResponse(receipt, "集合创建成功"))
}

// lookupResponse 集合占用查询响应
type lookupResponse struct {
	Name   string `json:"name"`
	Exists bool   `json:"exists"`
}

// GetCollection 查询集合是否存在
//
// GET /api/v1/collections/:name
func (h *CollectionHandler) GetCollection(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, errorResponse(ErrorCodeInvalidParameter, "缺少集合名称", ""))
		return
	}

	status, err := h.registry.Lookup(c.Request.Context(), name)
	if err != nil {
		h.logger.Warn("集合占用查询失败", zap.String("name", name), zap.Error(err))
		c.JSON(http.StatusBadGateway, errorResponse(ErrorCodeNetworkError, "无法查询集合", err.Error()))
		return
	}

	if status == types.LookupNotFound {
		c.JSON(http.StatusNotFound, errorResponse(ErrorCodeCollectionNotFound, "集合不存在", ""))
		return
	}
	c.JSON(http.StatusOK, successResponse(lookupResponse{Name: name, Exists: true}, ""))
}
