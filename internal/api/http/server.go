// Package http 提供集合服务的 HTTP API
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apiconfig "github.com/mintarc/v1/internal/config/api"
	"github.com/mintarc/v1/internal/api/http/handlers"
	"github.com/mintarc/v1/internal/api/http/middleware"
	collectioniface "github.com/mintarc/v1/pkg/interfaces/collection"
	logiface "github.com/mintarc/v1/pkg/interfaces/infrastructure/log"
	naminginterface "github.com/mintarc/v1/pkg/interfaces/naming"
)

// Server HTTP API 服务器
type Server struct {
	options    *apiconfig.APIOptions
	logger     logiface.Logger
	zapLogger  *zap.Logger
	router     *gin.Engine
	httpServer *http.Server

	service   collectioniface.Service
	registry  naminginterface.Registry
	suggester naminginterface.Suggester
}

// NewServer 创建 HTTP API 服务器
func NewServer(
	options *apiconfig.APIOptions,
	logger logiface.Logger,
	zapLogger *zap.Logger,
	service collectioniface.Service,
	registry naminginterface.Registry,
	suggester naminginterface.Suggester,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		options:   options,
		logger:    logger,
		zapLogger: zapLogger,
		router:    router,
		service:   service,
		registry:  registry,
		suggester: suggester,
	}
	s.setupRoutes()
	return s
}

// setupRoutes 注册路由与中间件
func (s *Server) setupRoutes() {
	s.router.Use(middleware.NewRequestID().Middleware())
	s.router.Use(middleware.NewLogger(s.logger).Middleware())
	s.router.Use(middleware.NewMetrics().Middleware())

	healthHandler := handlers.NewHealthHandler(s.zapLogger)
	s.router.GET("/health", healthHandler.Health)
	s.router.GET("/health/live", healthHandler.Live)
	s.router.GET("/health/ready", healthHandler.Ready)

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/api/v1")
	{
		namingHandler := handlers.NewNamingHandler(s.zapLogger, s.service, s.suggester)
		v1.POST("/names/validate", namingHandler.ValidateName)
		v1.POST("/names/suggest", namingHandler.SuggestName)

		collectionHandler := handlers.NewCollectionHandler(s.zapLogger, s.service, s.registry)
		v1.POST("/collections", collectionHandler.CreateCollection)
		v1.GET("/collections/:name", collectionHandler.GetCollection)
	}
}

// Router 返回底层路由（测试用）
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start 启动 HTTP 服务器
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.options.Host, s.options.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.options.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.options.WriteTimeout) * time.Second,
	}

	s.logger.Infof("HTTP API 服务启动: http://%s", addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Errorf("HTTP 服务异常退出: %v", err)
		}
	}()
	return nil
}

// Stop 停止 HTTP 服务器
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Info("HTTP API 服务停止中")
	return s.httpServer.Shutdown(ctx)
}
