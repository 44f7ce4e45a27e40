package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"user_location_dashboard/internal/store"
	"user_location_dashboard/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	// 看板前端由 Vite 开发服务器提供，跨域放行
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client 一个已连接的看板页面
type Client struct {
	Conn     *websocket.Conn
	Uuid     string
	SendBack chan []byte // 待推送给前端的快照
}

// Hub 把 Store 的每一次状态变更推送给所有已连接的页面
type Hub struct {
	source SnapshotSource

	mutex   sync.Mutex
	clients map[string]*Client
}

// NewHub 创建推送中心
func NewHub(source SnapshotSource) *Hub {
	return &Hub{
		source:  source,
		clients: make(map[string]*Client),
	}
}

// Attach 订阅 Store，返回取消订阅函数
func (h *Hub) Attach() (detach func()) {
	return h.source.Subscribe(h.Broadcast)
}

// Broadcast 序列化一次快照后分发给所有客户端
// 某个客户端的缓冲区满时丢弃这一帧，不阻塞 Store 的动作
func (h *Hub) Broadcast(st store.State) {
	payload, err := json.Marshal(st)
	if err != nil {
		zap.L().Error("marshal snapshot failed", zap.Error(err))
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for id, client := range h.clients {
		select {
		case client.SendBack <- payload:
		default:
			zap.L().Warn("ws client buffer full, dropping snapshot", zap.String("client_id", id))
		}
	}
}

// Count 当前连接数
func (h *Hub) Count() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// ServeWs 升级 HTTP 连接并注册客户端，连接建立后立即推送一份当前快照
func (h *Hub) ServeWs(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("ws upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		Conn:     conn,
		Uuid:     uuid.NewString(),
		SendBack: make(chan []byte, constants.CHANNEL_SIZE),
	}

	h.registerWithSnapshot(client)
	go client.Write()
	go h.read(client)
	zap.L().Info("ws连接成功", zap.String("client_id", client.Uuid))
}

// registerWithSnapshot 注册客户端并放入初始快照，两步在同一把锁内完成
// 为什么：先取快照再注册，中间发生的变更不会推给这个客户端；
// 持锁期间 Broadcast 进不来，之后的广播一定排在初始快照后面
func (h *Hub) registerWithSnapshot(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client.Uuid] = client
	initial, err := json.Marshal(h.source.Snapshot())
	if err != nil {
		zap.L().Error("marshal snapshot failed", zap.Error(err))
		return
	}
	client.SendBack <- initial
}

func (h *Hub) unregister(client *Client) {
	h.mutex.Lock()
	if _, ok := h.clients[client.Uuid]; ok {
		delete(h.clients, client.Uuid)
		close(client.SendBack)
	}
	h.mutex.Unlock()
}

// read 看板是只读推送，读循环只用于感知断开
func (h *Hub) read(client *Client) {
	defer func() {
		h.unregister(client)
		_ = client.Conn.Close()
		zap.L().Info("ws连接断开", zap.String("client_id", client.Uuid))
	}()
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Write 从 SendBack 读取快照写入 websocket
func (c *Client) Write() {
	for payload := range c.SendBack {
		_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			zap.L().Error("ws write failed", zap.String("client_id", c.Uuid), zap.Error(err))
			_ = c.Conn.Close()
			return
		}
	}
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
