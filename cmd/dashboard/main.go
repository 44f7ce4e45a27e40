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

	"user_location_dashboard/internal/client"
	"user_location_dashboard/internal/config"
	"user_location_dashboard/internal/gateway/websocket"
	"user_location_dashboard/internal/handler"
	"user_location_dashboard/internal/https_server"
	"user_location_dashboard/internal/infrastructure/logger"
	"user_location_dashboard/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置，没有配置文件时使用默认值，配置文件写错则直接退出
	if err := config.LoadConfig(); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		log.Fatalf("load config failed: %v", err)
	}
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()
	zap.L().Info("日志初始化成功")

	// 3. 参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("初始化翻译器失败", zap.Error(err))
	}

	// 4. Resource Client -> Store -> 推送中心
	api := client.New(conf.APIConfig)
	s := store.New(api)
	hub := websocket.NewHub(s)
	detach := hub.Attach()
	defer detach()
	zap.L().Info("Store 初始化成功", zap.String("base_url", conf.APIConfig.BaseURL))

	// 5. HTTP 服务
	isDev := conf.MainConfig.Mode != "release"
	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := https_server.Init(handler.NewHandlers(s, hub), isDev)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}
	go func() {
		zap.L().Info("看板服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}
	zap.L().Info("服务器已关闭")
}
