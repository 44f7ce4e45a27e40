// Package memory 提供基于内存样例数据的 CoordinateRepository 实现
package memory

import (
	"context"
	"sort"
	"time"

	"user_location_dashboard/internal/dao"
	"user_location_dashboard/internal/model"
	"user_location_dashboard/pkg/errorx"
)

// coordinateRepository 构造后只读，可并发访问
type coordinateRepository struct {
	users  map[string]model.UserCoordinate
	ids    []string // 按 userId 升序
	traces map[string][]model.LocationTrace
}

// NewCoordinateRepository 使用给定数据创建内存仓库
func NewCoordinateRepository(users []model.UserCoordinate, traces []model.LocationTrace) dao.CoordinateRepository {
	r := &coordinateRepository{
		users:  make(map[string]model.UserCoordinate, len(users)),
		traces: make(map[string][]model.LocationTrace),
	}
	for _, u := range users {
		if _, ok := r.users[u.UserId]; !ok {
			r.ids = append(r.ids, u.UserId)
		}
		r.users[u.UserId] = u
	}
	sort.Strings(r.ids)

	for _, t := range traces {
		r.traces[t.UserId] = append(r.traces[t.UserId], t)
	}
	for id := range r.traces {
		list := r.traces[id]
		sort.SliceStable(list, func(i, j int) bool { return list[i].RecordedAt.After(list[j].RecordedAt) })
	}
	return r
}

// NewSeeded 使用内置样例数据创建内存仓库
func NewSeeded(now time.Time) dao.CoordinateRepository {
	return NewCoordinateRepository(dao.SeedData(now))
}

func (r *coordinateRepository) FindUser(ctx context.Context, userId string) (*model.UserCoordinate, error) {
	u, ok := r.users[userId]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "用户 %s 不存在", userId)
	}
	return &u, nil
}

func (r *coordinateRepository) ListUsers(ctx context.Context, offset, limit int) ([]model.UserCoordinate, int64, error) {
	total := int64(len(r.ids))
	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.ids) || limit <= 0 {
		return []model.UserCoordinate{}, total, nil
	}
	end := offset + limit
	if end > len(r.ids) {
		end = len(r.ids)
	}

	out := make([]model.UserCoordinate, 0, end-offset)
	for _, id := range r.ids[offset:end] {
		out = append(out, r.users[id])
	}
	return out, total, nil
}

func (r *coordinateRepository) FindTraces(ctx context.Context, userId string) ([]model.LocationTrace, error) {
	list, ok := r.traces[userId]
	if !ok || len(list) == 0 {
		return nil, errorx.Newf(errorx.CodeNotFound, "用户 %s 没有位置历史", userId)
	}
	out := make([]model.LocationTrace, len(list))
	copy(out, list)
	return out, nil
}
