// Package router 提供 HTTP 路由注册
// 本文件定义 WebSocket 推送路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes 注册 WebSocket 路由
// 请求示例: ws://host:port/ws
func (rt *Router) RegisterWebSocketRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws", rt.handlers.Ws.Connect)
}
