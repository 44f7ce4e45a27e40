// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"user_location_dashboard/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router 持有 Handler 聚合，按模块注册路由
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.RegisterDashboardRoutes(r.Group("/api/dashboard"))
	rt.RegisterWebSocketRoutes(r.Group(""))
}
