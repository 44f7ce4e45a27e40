package store

import "user_location_dashboard/internal/model"

// State Store 对外暴露的只读快照
// HasUser / HasLocationHistory 由快照生成时计算，始终与状态一致
type State struct {
	CurrentUser        *model.UserInfo        `json:"currentUser"`
	LocationHistory    *model.LocationHistory `json:"locationHistory"`
	AllUsers           []model.UserInfo       `json:"allUsers"`
	AllUsersTotal      int                    `json:"allUsersTotal"`
	Loading            bool                   `json:"loading"`
	Error              *string                `json:"error"`
	HasUser            bool                   `json:"hasUser"`
	HasLocationHistory bool                   `json:"hasLocationHistory"`
}
