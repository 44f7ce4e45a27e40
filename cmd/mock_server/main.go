package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user_location_dashboard/internal/config"
	"user_location_dashboard/internal/dao"
	"user_location_dashboard/internal/dao/memory"
	"user_location_dashboard/internal/dao/mysql"
	myredis "user_location_dashboard/internal/dao/redis"
	"user_location_dashboard/internal/handler"
	"user_location_dashboard/internal/infrastructure/logger"
	"user_location_dashboard/internal/mock"
	"user_location_dashboard/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置，没有配置文件时使用默认值，配置文件写错则直接退出
	if err := config.LoadConfig(); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		log.Fatalf("load config failed: %v", err)
	}
	conf := config.GetConfig()

	// 2. 初始化日志，与看板服务分开写文件，避免两个进程轮转同一个文件
	logConf := conf.LogConfig
	logConf.FileName = conf.MockServerConfig.LogFileName
	if err := logger.Init(&logConf, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("初始化翻译器失败", zap.Error(err))
	}

	// 3. 选择数据来源
	repo, cleanup, err := openRepository(conf)
	if err != nil {
		zap.L().Fatal("初始化数据来源失败", zap.Error(err))
	}
	defer cleanup()

	if conf.MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MockServerConfig.Host, conf.MockServerConfig.Port),
		Handler: mock.NewEngine(mock.NewHandler(service.NewServices(repo, nil).Coordinate)),
	}
	go func() {
		zap.L().Info("mock 服务启动", zap.String("addr", srv.Addr), zap.String("data_source", conf.MockServerConfig.DataSource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}
	zap.L().Info("mock 服务已关闭")
}

// openRepository 按配置组装仓库：memory 或 mysql，可选再包一层 Redis 缓存
func openRepository(conf *config.Config) (dao.CoordinateRepository, func(), error) {
	var repo dao.CoordinateRepository
	switch conf.MockServerConfig.DataSource {
	case "", "memory":
		repo = memory.NewSeeded(time.Now())
	case "mysql":
		r, err := mysql.Init(conf.MysqlConfig)
		if err != nil {
			return nil, nil, err
		}
		repo = r
		zap.L().Info("数据库初始化成功")
	default:
		return nil, nil, fmt.Errorf("unknown dataSource %q", conf.MockServerConfig.DataSource)
	}

	if !conf.MockServerConfig.CacheEnabled {
		return repo, func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rdb, err := myredis.NewClient(ctx, conf.RedisConfig)
	if err != nil {
		return nil, nil, err
	}
	zap.L().Info("Redis 初始化成功")
	cache := myredis.NewRedisCache(rdb, 4, 256)
	return myredis.NewCachedRepository(repo, cache), func() { _ = rdb.Close() }, nil
}
