// Package https_server 提供看板 HTTP 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件和路由
package https_server

import (
	"user_location_dashboard/internal/handler"
	"user_location_dashboard/internal/infrastructure/logger"
	"user_location_dashboard/internal/infrastructure/middleware"
	"user_location_dashboard/internal/router"
	"user_location_dashboard/pkg/constants"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init 初始化 HTTP 服务器并返回 Gin 引擎实例
// 中间件顺序：请求 id -> 日志 -> panic 恢复 -> 安全头 -> CORS
func Init(handlers *handler.Handlers, isDev bool) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))
	engine.Use(middleware.SecureHeaders(isDev))
	engine.Use(NewCors())

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}

// NewCors 看板前端与 mock 服务共用的 CORS 规则
func NewCors() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"} // 本地开发放行所有来源，生产环境应指定具体域名
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", constants.REQUEST_ID_HEADER}
	corsConfig.ExposeHeaders = []string{constants.REQUEST_ID_HEADER}
	return cors.New(corsConfig)
}
