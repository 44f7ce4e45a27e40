package redis

import (
	"context"
	"errors"
	"time"

	"user_location_dashboard/pkg/errorx"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisCache AsyncCacheService 的 Redis 实现，自带一个回写 Worker Pool
type RedisCache struct {
	client   *redis.Client
	taskChan chan func()
}

// NewRedisCache 创建 Redis 缓存实例并启动 workerNum 个 Worker
func NewRedisCache(client *redis.Client, workerNum, taskChanSize int) *RedisCache {
	rc := &RedisCache{
		client:   client,
		taskChan: make(chan func(), taskChanSize),
	}
	for i := 0; i < workerNum; i++ {
		go rc.startWorker()
	}
	zap.L().Info("Redis Cache Workers started", zap.Int("workers", workerNum), zap.Int("buffer", taskChanSize))
	return rc
}

// startWorker 启动单个 Worker 消费循环
func (r *RedisCache) startWorker() {
	defer func() {
		if rec := recover(); rec != nil {
			zap.L().Error("Redis Worker panic", zap.Any("recover", rec))
			go r.startWorker() // 重启
		}
	}()

	for task := range r.taskChan {
		if task != nil {
			task()
		}
	}
}

// SubmitTask 提交异步任务，通道满时降级为同步执行
func (r *RedisCache) SubmitTask(action func()) {
	select {
	case r.taskChan <- action:
	default:
		zap.L().Warn("Redis cache task channel full, executing synchronously")
		action()
	}
}

// Set 设置键值对并指定过期时间
func (r *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis set key %s", key)
	}
	return nil
}

// Get 获取键对应的值，键不存在返回空字符串和 nil
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// Delete 删除键
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis del key %s", key)
	}
	return nil
}
