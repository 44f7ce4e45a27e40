// Package handler 提供 HTTP 请求处理器
// 本文件定义 Handler 聚合结构和构造函数
package handler

import (
	"user_location_dashboard/internal/gateway/websocket"
	"user_location_dashboard/internal/store"
)

// Handlers 聚合看板服务的所有 Handler 实例
type Handlers struct {
	Dashboard *DashboardHandler
	Ws        *WsHandler
}

// NewHandlers 创建并注入所有 Handler 实例
func NewHandlers(s *store.UserLocationStore, hub *websocket.Hub) *Handlers {
	return &Handlers{
		Dashboard: NewDashboardHandler(s),
		Ws:        NewWsHandler(hub),
	}
}
