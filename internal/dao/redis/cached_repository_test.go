package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"user_location_dashboard/internal/dao"
	"user_location_dashboard/internal/dao/memory"
	"user_location_dashboard/internal/model"
	"user_location_dashboard/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapCache 进程内 AsyncCacheService，任务同步执行
type mapCache struct {
	mu      sync.Mutex
	data    map[string]string
	getErr  error
	setKeys []string
}

func newMapCache() *mapCache { return &mapCache{data: map[string]string{}} }

func (m *mapCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.setKeys = append(m.setKeys, key)
	return nil
}

func (m *mapCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.data[key], nil
}

func (m *mapCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *mapCache) SubmitTask(action func()) { action() }

// countingRepo 统计回源次数
type countingRepo struct {
	dao.CoordinateRepository
	userCalls  int
	traceCalls int
}

func TestCachedRepository_FindUserHitsCacheSecondTime(t *testing.T) {
	base := &countingRepo{CoordinateRepository: newMemory()}
	cache := newMapCache()
	repo := NewCachedRepository(base, cache)
	ctx := context.Background()

	u, err := repo.FindUser(ctx, "user001")
	require.NoError(t, err)
	assert.Equal(t, 1, base.userCalls)
	assert.Contains(t, cache.setKeys, "user_coordinate:user001")

	again, err := repo.FindUser(ctx, "user001")
	require.NoError(t, err)
	assert.Equal(t, 1, base.userCalls)
	assert.Equal(t, u.Region, again.Region)
	assert.Equal(t, u.Latitude, again.Latitude)
}

func TestCachedRepository_FindTracesCachesNonEmpty(t *testing.T) {
	base := &countingRepo{CoordinateRepository: newMemory()}
	repo := NewCachedRepository(base, newMapCache())
	ctx := context.Background()

	first, err := repo.FindTraces(ctx, "user001")
	require.NoError(t, err)
	second, err := repo.FindTraces(ctx, "user001")
	require.NoError(t, err)
	assert.Equal(t, 1, base.traceCalls)
	assert.Len(t, second, len(first))

	_, err = repo.FindTraces(ctx, "unknown-id")
	assert.True(t, errorx.IsNotFound(err))
}

func TestCachedRepository_CacheFailureFallsBack(t *testing.T) {
	base := &countingRepo{CoordinateRepository: newMemory()}
	cache := newMapCache()
	cache.getErr = errors.New("connection refused")
	repo := NewCachedRepository(base, cache)

	_, err := repo.FindUser(context.Background(), "user002")
	require.NoError(t, err)
	_, err = repo.FindUser(context.Background(), "user002")
	require.NoError(t, err)
	assert.Equal(t, 2, base.userCalls)
}

func TestCachedRepository_ListUsersBypassesCache(t *testing.T) {
	cache := newMapCache()
	repo := NewCachedRepository(newMemory(), cache)

	users, total, err := repo.ListUsers(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.EqualValues(t, 3, total)
	assert.Empty(t, cache.setKeys)
}

func newMemory() dao.CoordinateRepository {
	return memory.NewSeeded(time.Now())
}

func (c *countingRepo) FindUser(ctx context.Context, userId string) (*model.UserCoordinate, error) {
	c.userCalls++
	return c.CoordinateRepository.FindUser(ctx, userId)
}

func (c *countingRepo) FindTraces(ctx context.Context, userId string) ([]model.LocationTrace, error) {
	c.traceCalls++
	return c.CoordinateRepository.FindTraces(ctx, userId)
}

func TestCachedRepository_EvictsCorruptedEntryForMissingUser(t *testing.T) {
	cache := newMapCache()
	cache.data["user_coordinate:ghost"] = "{not json"
	cache.data["location_trace:ghost"] = "{not json"
	repo := NewCachedRepository(newMemory(), cache)
	ctx := context.Background()

	_, err := repo.FindUser(ctx, "ghost")
	assert.True(t, errorx.IsNotFound(err))
	_, err = repo.FindTraces(ctx, "ghost")
	assert.True(t, errorx.IsNotFound(err))

	assert.NotContains(t, cache.data, "user_coordinate:ghost")
	assert.NotContains(t, cache.data, "location_trace:ghost")
}
