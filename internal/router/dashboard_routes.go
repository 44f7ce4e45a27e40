package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes 注册看板动作路由
func (rt *Router) RegisterDashboardRoutes(rg *gin.RouterGroup) {
	h := rt.handlers.Dashboard
	rg.GET("/state", h.GetState)
	rg.POST("/users", h.FetchAllUsers)
	rg.POST("/users/:userId", h.FetchUserInfo)
	rg.POST("/users/:userId/history", h.FetchLocationHistory)
	rg.POST("/clear", h.ClearUserData)
}
