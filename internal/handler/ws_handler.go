package handler

import (
	"user_location_dashboard/internal/gateway/websocket"
	"user_location_dashboard/pkg/errorx"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
)

// WsHandler 看板 WebSocket 处理器
type WsHandler struct {
	hub *websocket.Hub
}

// NewWsHandler 创建 WebSocket 处理器
func NewWsHandler(hub *websocket.Hub) *WsHandler {
	return &WsHandler{hub: hub}
}

// Connect 升级为 WebSocket，之后 Store 的每次状态变更都会推送到该连接
// GET /ws
func (h *WsHandler) Connect(c *gin.Context) {
	// 为什么：普通 HTTP 请求交给 Upgrader 只会得到一个纯文本 400，这里先按统一信封返回
	if !gorilla.IsWebSocketUpgrade(c.Request) {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "请使用 WebSocket 连接"))
		return
	}
	h.hub.ServeWs(c)
}
