// Package router 组装Gin引擎：全局中间件、基础路由和业务路由
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/userservice/internal/infrastructure/config"
	"github.com/xiebiao/userservice/internal/interface/http/handler"
	"github.com/xiebiao/userservice/internal/interface/http/middleware"
	"github.com/xiebiao/userservice/pkg/response"
)

// New 创建Gin引擎
// 中间件顺序：Tracing → Logger → Recovery → Metrics → Handler
// Tracing在最外层，Logger才能拿到trace_id
func New(cfg *config.Config, logger zerolog.Logger, userHandler *handler.UserHandler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.Tracing())
	r.Use(middleware.Logger(logger))
	r.Use(gin.Recovery())
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// 访问 /swagger/index.html 查看API文档
	if cfg.Swagger.Enabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	userHandler.RegisterRoutes(v1)

	return r
}
