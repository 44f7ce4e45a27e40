package redis

import (
	"context"
	"time"
)

// CacheService 缓存服务接口
type CacheService interface {
	// Set 设置键值对并指定过期时间
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get 获取键对应的值（键不存在返回空字符串和 nil）
	Get(ctx context.Context, key string) (string, error)
	// Delete 删除键（如果存在）
	Delete(ctx context.Context, key string) error
}

// AsyncCacheService 异步缓存服务接口
// 提供异步任务提交能力，用于非阻塞回写缓存
type AsyncCacheService interface {
	CacheService
	// SubmitTask 提交异步缓存任务
	SubmitTask(action func())
}
