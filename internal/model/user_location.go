// Package model 定义看板使用的领域模型
// 本文件定义归一化之后的用户位置实体，所有组件只消费这里的形状
package model

// Gender 归一化后的性别枚举
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// CurrentLocation 用户当前位置
// 经纬度按原样保存，不做范围校验
type CurrentLocation struct {
	Latitude  float64 `json:"latitude"`  // [-90, 90]
	Longitude float64 `json:"longitude"` // [-180, 180]
	Region    string  `json:"region"`    // 行政区划文本，如 "北京市朝阳区"
}

// UserInfo 用户实时信息
type UserInfo struct {
	UserId          string          `json:"userId"`
	Age             int             `json:"age"`
	Gender          Gender          `json:"gender"`
	CurrentLocation CurrentLocation `json:"currentLocation"`
	LastUpdateTime  string          `json:"lastUpdateTime"` // ISO-8601
}

// LocationPoint 位置历史中的单个点
type LocationPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
	Region    string  `json:"region"`
}

// LocationHistory 用户位置历史
// Locations 约定按时间倒序排列（最近的在前），不做强制校验
type LocationHistory struct {
	UserId    string          `json:"userId"`
	Locations []LocationPoint `json:"locations"`
}

// UserPage 分页用户列表，对应后端 { users, total }
type UserPage struct {
	Users []UserInfo `json:"users"`
	Total int        `json:"total"`
}

// Clone 深拷贝，避免调用方修改 Store 内部的切片
func (h *LocationHistory) Clone() *LocationHistory {
	if h == nil {
		return nil
	}
	out := &LocationHistory{UserId: h.UserId, Locations: make([]LocationPoint, len(h.Locations))}
	copy(out.Locations, h.Locations)
	return out
}
