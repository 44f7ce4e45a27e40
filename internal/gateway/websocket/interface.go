package websocket

import "user_location_dashboard/internal/store"

// SnapshotSource 推送中心依赖的状态来源
// 由 *store.UserLocationStore 实现，解耦 websocket 包与 Store 的具体类型
type SnapshotSource interface {
	Snapshot() store.State
	Subscribe(l store.Listener) (unsubscribe func())
}
