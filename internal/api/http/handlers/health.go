package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler 健康检查端点处理器
//
// 提供三层健康检查端点：
// - /health: 完整健康报告
// - /health/live: 存活检查（进程是否响应）
// - /health/ready: 就绪检查（是否可对外服务）
type HealthHandler struct {
	logger    *zap.Logger
	startTime time.Time
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		logger:    logger,
		startTime: time.Now(),
	}
}

// healthReport 完整健康报告
type healthReport struct {
	Status    string `json:"status"`
	UptimeSec int64  `json:"uptime_seconds"`
	Timestamp string `json:"timestamp"`
}

// Health 完整健康报告
//
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthReport{
		Status:    "ok",
		UptimeSec: int64(time.Since(h.startTime).Seconds()),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Live 存活检查
//
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Ready 就绪检查
//
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	// 服务无本地状态，进程起来即可对外服务；
	// 链端点的可达性由具体请求的错误路径反馈
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
