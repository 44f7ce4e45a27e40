package redis

import (
	"context"
	"encoding/json"
	"time"

	"user_location_dashboard/internal/dao"
	"user_location_dashboard/internal/model"
	"user_location_dashboard/pkg/constants"
	"user_location_dashboard/pkg/errorx"

	"go.uber.org/zap"
)

const (
	userKeyPrefix  = "user_coordinate:"
	traceKeyPrefix = "location_trace:"
)

// cachedRepository 旁路缓存：先查缓存，未命中回源后异步回写
// 分页列表不缓存，直接走底层仓库
type cachedRepository struct {
	next  dao.CoordinateRepository
	cache AsyncCacheService
	ttl   time.Duration
}

// NewCachedRepository 用缓存包装一个坐标仓库
func NewCachedRepository(next dao.CoordinateRepository, cache AsyncCacheService) dao.CoordinateRepository {
	return &cachedRepository{
		next:  next,
		cache: cache,
		ttl:   time.Duration(constants.REDIS_TIMEOUT) * time.Minute,
	}
}

func (r *cachedRepository) FindUser(ctx context.Context, userId string) (*model.UserCoordinate, error) {
	key := userKeyPrefix + userId
	var u model.UserCoordinate
	if r.lookup(ctx, key, &u) {
		return &u, nil
	}

	found, err := r.next.FindUser(ctx, userId)
	if err != nil {
		r.evictIfGone(key, err)
		return nil, err
	}
	r.writeBack(key, found)
	return found, nil
}

func (r *cachedRepository) ListUsers(ctx context.Context, offset, limit int) ([]model.UserCoordinate, int64, error) {
	return r.next.ListUsers(ctx, offset, limit)
}

func (r *cachedRepository) FindTraces(ctx context.Context, userId string) ([]model.LocationTrace, error) {
	key := traceKeyPrefix + userId
	var traces []model.LocationTrace
	if r.lookup(ctx, key, &traces) && len(traces) > 0 {
		return traces, nil
	}

	found, err := r.next.FindTraces(ctx, userId)
	if err != nil {
		r.evictIfGone(key, err)
		return nil, err
	}
	r.writeBack(key, found)
	return found, nil
}

// lookup 命中并成功反序列化时返回 true，缓存故障只记日志
func (r *cachedRepository) lookup(ctx context.Context, key string, dst any) bool {
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		zap.L().Warn("cache get failed, falling back", zap.String("key", key), zap.Error(err))
		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		zap.L().Warn("cache entry corrupted", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// evictIfGone 回源确认记录不存在时异步删除缓存键
// 为什么：走到回源说明缓存没命中或条目损坏，损坏的条目不删会一直回源
func (r *cachedRepository) evictIfGone(key string, err error) {
	if !errorx.IsNotFound(err) {
		return
	}
	r.cache.SubmitTask(func() {
		if err := r.cache.Delete(context.Background(), key); err != nil {
			zap.L().Error("cache evict failed", zap.String("key", key), zap.Error(err))
		}
	})
}

func (r *cachedRepository) writeBack(key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		zap.L().Error("marshal cache entry failed", zap.String("key", key), zap.Error(err))
		return
	}
	r.cache.SubmitTask(func() {
		if err := r.cache.Set(context.Background(), key, string(payload), r.ttl); err != nil {
			zap.L().Error("cache write back failed", zap.String("key", key), zap.Error(err))
		}
	})
}
