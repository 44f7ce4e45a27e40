package mysql

import (
	"context"

	"user_location_dashboard/internal/dao"
	"user_location_dashboard/internal/model"
	"user_location_dashboard/pkg/errorx"

	"gorm.io/gorm"
)

type coordinateRepository struct {
	db *gorm.DB
}

// NewCoordinateRepository 创建基于 gorm 的坐标仓库
func NewCoordinateRepository(db *gorm.DB) dao.CoordinateRepository {
	return &coordinateRepository{db: db}
}

// FindUser 按 userId 查找坐标
func (r *coordinateRepository) FindUser(ctx context.Context, userId string) (*model.UserCoordinate, error) {
	var u model.UserCoordinate
	if err := r.db.WithContext(ctx).First(&u, "user_id = ?", userId).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户坐标 user_id=%s", userId)
	}
	return &u, nil
}

// ListUsers 分页查询坐标
func (r *coordinateRepository) ListUsers(ctx context.Context, offset, limit int) ([]model.UserCoordinate, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.UserCoordinate{}).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "统计用户坐标")
	}

	users := []model.UserCoordinate{}
	if err := r.db.WithContext(ctx).Order("user_id ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, wrapDBError(err, "分页查询用户坐标")
	}
	return users, total, nil
}

// FindTraces 按上报时间倒序查询历史轨迹
func (r *coordinateRepository) FindTraces(ctx context.Context, userId string) ([]model.LocationTrace, error) {
	var traces []model.LocationTrace
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Order("recorded_at DESC").Find(&traces).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询历史轨迹 user_id=%s", userId)
	}
	if len(traces) == 0 {
		return nil, errorx.Newf(errorx.CodeNotFound, "用户 %s 没有位置历史", userId)
	}
	return traces, nil
}
