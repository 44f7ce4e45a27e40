// Package redis 为 mock 服务端的坐标查询提供 Redis 缓存
// 使用 github.com/go-redis/redis/v8 作为底层客户端
package redis

import (
	"context"
	"strconv"

	"user_location_dashboard/internal/config"
	"user_location_dashboard/pkg/errorx"

	"github.com/go-redis/redis/v8"
)

// NewClient 按配置创建 Redis 客户端并 Ping 一次
func NewClient(ctx context.Context, conf config.RedisConfig) (*redis.Client, error) {
	addr := conf.Host + ":" + strconv.Itoa(conf.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.Password, // 无密码留空
		DB:       conf.Db,
		// 连接池配置
		PoolSize:     20,
		MinIdleConns: 4, // 与 Worker 数量匹配
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errorx.Wrapf(err, errorx.CodeCacheError, "redis ping %s", addr)
	}
	return client, nil
}
