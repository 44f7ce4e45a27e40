// Package dao 定义 mock 服务端的数据访问接口
// 具体实现：memory（内置样例数据）、mysql（gorm），redis 作为可选的缓存层包在外面
package dao

import (
	"context"

	"user_location_dashboard/internal/model"
)

// CoordinateRepository 用户坐标数据访问接口
type CoordinateRepository interface {
	// FindUser 按 userId 查找坐标，不存在时返回 errorx.CodeNotFound
	FindUser(ctx context.Context, userId string) (*model.UserCoordinate, error)
	// ListUsers 分页列出坐标，按 userId 升序，同时返回总数
	ListUsers(ctx context.Context, offset, limit int) ([]model.UserCoordinate, int64, error)
	// FindTraces 按时间倒序返回历史轨迹，没有任何记录时返回 errorx.CodeNotFound
	FindTraces(ctx context.Context, userId string) ([]model.LocationTrace, error)
}
