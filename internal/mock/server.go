package mock

import (
	"user_location_dashboard/internal/infrastructure/logger"
	"user_location_dashboard/internal/infrastructure/middleware"
	"user_location_dashboard/pkg/constants"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewEngine 创建 mock 服务的 Gin 引擎，路由挂在 /api/v1 下
func NewEngine(h *Handler) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))
	engine.Use(cors.Default())

	RegisterRoutes(engine.Group(constants.API_PREFIX), h)
	return engine
}

// RegisterRoutes 注册坐标相关路由
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	coordinates := r.Group("/users/coordinates")
	{
		coordinates.GET("", h.ListCoordinates)
		coordinates.GET("/history/:userId", h.GetHistory)
		coordinates.GET("/:userId", h.GetCoordinates)
	}
}
