package service

import (
	"time"

	"user_location_dashboard/internal/dao"
	"user_location_dashboard/internal/service/coordinate"
)

// Services 聚合所有 Service 实例
type Services struct {
	Coordinate CoordinateService
}

// NewServices 创建并注入所有 Service 实例
// now 用于生成固定记录的 lastUpdate，传 nil 时使用 time.Now
func NewServices(repo dao.CoordinateRepository, now func() time.Time) *Services {
	return &Services{
		Coordinate: coordinate.NewCoordinateService(repo, now),
	}
}
