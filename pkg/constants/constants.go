package constants

const (
	API_PREFIX           = "/api/v1"      // 后端接口前缀
	DEFAULT_PAGE         = 1              // 默认页码
	DEFAULT_PAGE_SIZE    = 20             // 默认每页条数
	MAX_PAGE_SIZE        = 100            // 每页条数上限（mock 服务端校验）
	CHANNEL_SIZE         = 100            // WebSocket 推送通道大小
	REDIS_TIMEOUT        = 1              // redis 缓存过期时间（分钟）
	REQUEST_ID_HEADER    = "X-Request-Id" // 请求追踪头
	ISO8601_MILLI_LAYOUT = "2006-01-02T15:04:05.000Z07:00"
)

// 各动作失败时的兜底提示
const (
	ERR_FETCH_USER_INFO        = "获取用户信息失败"
	ERR_FETCH_LOCATION_HISTORY = "获取位置历史失败"
	ERR_FETCH_ALL_USERS        = "获取用户列表失败"
)
