// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库
)

// MainConfig 看板服务主配置
type MainConfig struct {
	AppName string `toml:"appName"` // 应用名称，用于日志标识等
	Host    string `toml:"host"`    // 服务器监听地址，如 "0.0.0.0"
	Port    int    `toml:"port"`    // 服务器监听端口，如 8000
	Mode    string `toml:"mode"`    // 运行模式："dev" 或 "release"
}

// APIConfig 后端坐标接口配置（Resource Client 使用）
type APIConfig struct {
	BaseURL string        `toml:"baseURL"` // 接口根地址，如 "http://localhost:8080/api/v1"
	Timeout time.Duration `toml:"timeout"` // 单次请求超时，如 "10s"
}

// MockServerConfig 本地开发用 mock 服务配置
type MockServerConfig struct {
	Host         string `toml:"host"`         // 监听地址
	Port         int    `toml:"port"`         // 监听端口，默认 8080
	DataSource   string `toml:"dataSource"`   // 数据来源："memory" 或 "mysql"
	CacheEnabled bool   `toml:"cacheEnabled"` // 是否在数据来源前加一层 Redis 缓存
	LogFileName  string `toml:"logFileName"`  // mock 服务自己的日志文件名，与看板分开轮转
}

// MysqlConfig MySQL 数据库连接配置
type MysqlConfig struct {
	Host         string `toml:"host"`         // MySQL 服务器地址
	Port         int    `toml:"port"`         // MySQL 端口，默认 3306
	User         string `toml:"user"`         // 数据库用户名
	Password     string `toml:"password"`     // 数据库密码
	DatabaseName string `toml:"databaseName"` // 数据库名称
}

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Host     string `toml:"host"`     // Redis 服务器地址
	Port     int    `toml:"port"`     // Redis 端口，默认 6379
	Password string `toml:"password"` // Redis 密码，无密码留空
	Db       int    `toml:"db"`       // Redis 数据库编号，默认 0
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig       `toml:"mainConfig"`       // 主配置
	APIConfig        `toml:"apiConfig"`        // 坐标接口配置
	MockServerConfig `toml:"mockServerConfig"` // mock 服务配置
	MysqlConfig      `toml:"mysqlConfig"`      // MySQL 配置
	RedisConfig      `toml:"redisConfig"`      // Redis 配置
	LogConfig        `toml:"logConfig"`        // 日志配置
}

// config 全局配置单例，延迟加载
var config *Config

// searchPaths 候选配置文件路径（优先加载本地配置）
var searchPaths = []string{
	"configs/config_local.toml",
	"configs/config.toml",
	"../../configs/config_local.toml", // 从 cmd 子目录运行时的路径
	"../../configs/config.toml",
	"../../../configs/config.toml", // 从 internal 子包运行测试时的路径
}

// Default 返回带默认值的配置
// 默认值与 Vite 代理约定保持一致：接口根路径 /api/v1，超时 10 秒
func Default() *Config {
	return &Config{
		MainConfig: MainConfig{
			AppName: "user_location_dashboard",
			Host:    "0.0.0.0",
			Port:    8000,
			Mode:    "dev",
		},
		APIConfig: APIConfig{
			BaseURL: "http://localhost:8080/api/v1",
			Timeout: 10 * time.Second,
		},
		MockServerConfig: MockServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			DataSource:  "memory",
			LogFileName: "mock_server.log",
		},
		MysqlConfig: MysqlConfig{Host: "127.0.0.1", Port: 3306},
		RedisConfig: RedisConfig{Host: "127.0.0.1", Port: 6379},
		LogConfig: LogConfig{
			LogPath: "logs",
			Level:   "info",
		},
	}
}

// Load 从指定路径加载配置文件，未出现在文件中的字段保留默认值
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// ErrConfigNotFound 所有候选路径都没有配置文件
var ErrConfigNotFound = errors.New("could not find configuration file in any of the search paths")

// LoadConfig 从多个候选路径加载配置文件
// 按顺序查找，第一个存在的文件即为最终配置；该文件解析失败时直接返回错误，
// 不会继续尝试后面的路径
// 为什么：本地配置写错时悄悄退回到 configs/config.toml，排查起来非常隐蔽
func LoadConfig() error {
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := Load(path)
		if err != nil {
			return err
		}
		config = cfg
		return nil
	}
	return ErrConfigNotFound
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件，加载失败时使用默认值；
// 需要区分"没有文件"和"文件写错"的调用方应先调用 LoadConfig
func GetConfig() *Config {
	if config == nil {
		if err := LoadConfig(); err != nil {
			config = Default()
		}
	}
	return config
}
