package coordinate

import (
	"context"
	"time"

	"user_location_dashboard/internal/client"
	"user_location_dashboard/internal/dao"
	"user_location_dashboard/internal/dto/respond"
	"user_location_dashboard/internal/model"
	"user_location_dashboard/pkg/constants"
	"user_location_dashboard/pkg/errorx"

	"go.uber.org/zap"
)

// coordinateService 坐标业务逻辑实现
type coordinateService struct {
	repo dao.CoordinateRepository
	now  func() time.Time
}

// NewCoordinateService 构造函数，注入仓库和时钟
func NewCoordinateService(repo dao.CoordinateRepository, now func() time.Time) *coordinateService {
	if now == nil {
		now = time.Now
	}
	return &coordinateService{repo: repo, now: now}
}

// GetCoordinate 获取原始坐标
func (s *coordinateService) GetCoordinate(ctx context.Context, userId string) (*respond.RawUserCoordinate, error) {
	u, err := s.repo.FindUser(ctx, userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			raw := fallbackCoordinate(userId, s.now())
			return &raw, nil
		}
		zap.L().Error("查询用户坐标失败", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	raw := toRaw(*u)
	return &raw, nil
}

// ListUsers 分页查询，page/pageSize 小于等于 0 时使用默认值
func (s *coordinateService) ListUsers(ctx context.Context, page, pageSize int) (*model.UserPage, error) {
	if page <= 0 {
		page = constants.DEFAULT_PAGE
	}
	if pageSize <= 0 {
		pageSize = constants.DEFAULT_PAGE_SIZE
	}

	rows, total, err := s.repo.ListUsers(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		zap.L().Error("分页查询用户坐标失败", zap.Int("page", page), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	out := &model.UserPage{Users: make([]model.UserInfo, 0, len(rows)), Total: int(total)}
	for _, row := range rows {
		info, err := client.AdaptUserInfo(toRaw(row))
		if err != nil {
			return nil, err
		}
		out.Users = append(out.Users, info)
	}
	return out, nil
}

// GetHistory 获取位置历史
func (s *coordinateService) GetHistory(ctx context.Context, userId string) (*model.LocationHistory, error) {
	traces, err := s.repo.FindTraces(ctx, userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, err
		}
		zap.L().Error("查询位置历史失败", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	h := toHistory(userId, traces)
	return &h, nil
}
