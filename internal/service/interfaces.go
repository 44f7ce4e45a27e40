// Package service 定义 mock 服务端的业务层接口
// Handler 层只依赖这里的接口，不直接接触 dao
package service

import (
	"context"

	"user_location_dashboard/internal/dto/respond"
	"user_location_dashboard/internal/model"
)

// CoordinateService 坐标业务接口
type CoordinateService interface {
	// GetCoordinate 获取原始坐标记录，未登记的 userId 返回固定记录
	GetCoordinate(ctx context.Context, userId string) (*respond.RawUserCoordinate, error)
	// ListUsers 分页获取归一化后的用户列表
	ListUsers(ctx context.Context, page, pageSize int) (*model.UserPage, error)
	// GetHistory 获取位置历史，没有记录时返回 errorx.CodeNotFound
	GetHistory(ctx context.Context, userId string) (*model.LocationHistory, error)
}
