package logger

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"user_location_dashboard/internal/config"
	"user_location_dashboard/pkg/constants"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init 初始化全局 Logger
// dev 模式同时输出到控制台和文件，release 模式只写 JSON 文件
func Init(cfg *config.LogConfig, mode string) (err error) {
	if cfg == nil {
		return fmt.Errorf("logger.Init received nil config")
	}

	if cfg.FileName == "" {
		cfg.FileName = "app.log"
	}
	// 为什么：配置里通常只写文件名，不拼上 logPath 日志会落在进程的工作目录里
	if filepath.Dir(cfg.FileName) == "." {
		cfg.FileName = filepath.Join(cfg.LogPath, cfg.FileName)
	}
	if cfg.MaxSize == 0 {
		cfg.MaxSize = 100
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 5
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = 30
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}

	var level zapcore.Level
	if err = level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return
	}

	fileCore := zapcore.NewCore(getEncoder(), getLogWriter(cfg), level)

	var core zapcore.Core
	if mode == "dev" || mode == gin.DebugMode {
		consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		consoleCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), zapcore.DebugLevel)
		core = zapcore.NewTee(fileCore, consoleCore)
	} else {
		core = fileCore
	}

	zap.ReplaceGlobals(zap.New(core, zap.AddCaller()))
	return
}

// getLogWriter 使用 lumberjack 实现日志切割
func getLogWriter(cfg *config.LogConfig) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.FileName,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	})
}

// getEncoder 文件日志使用 JSON 格式
func getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

// GinLogger 将 gin 的请求日志通过 zap 输出
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		zap.L().Info("http request",
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("ClientIP", c.ClientIP()),
			zap.String("request_id", c.GetHeader(constants.REQUEST_ID_HEADER)),
			zap.Duration("cost", time.Since(start)),
			zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()),
		)
	}
}

// GinRecovery 捕获 panic 并记录堆栈，客户端断开（broken pipe）时只记日志不回写
func GinRecovery(stack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				var brokenPipe bool
				if err, ok := rec.(error); ok {
					brokenPipe = isBrokenPipeError(err)
				}

				httpRequest, _ := httputil.DumpRequest(c.Request, false)
				fields := []zap.Field{
					zap.Any("error", rec),
					zap.String("request", string(httpRequest)),
				}

				if brokenPipe {
					zap.L().Error("broken pipe",
						append(fields, zap.String("path", c.Request.URL.Path))...,
					)
					_ = c.Error(rec.(error))
					c.Abort()
					return
				}

				if stack {
					fields = append(fields, zap.String("stack", string(debug.Stack())))
				}
				zap.L().Error("[Recovery from panic]", fields...)
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// isBrokenPipeError 检查错误链中是否包含 broken pipe
func isBrokenPipeError(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		var syscallErr *os.SyscallError
		if errors.As(opErr.Err, &syscallErr) {
			msg := strings.ToLower(syscallErr.Error())
			return strings.Contains(msg, "broken pipe") ||
				strings.Contains(msg, "connection reset by peer")
		}
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "connection reset by peer")
}
