// Package mysql 提供 mock 服务端的 MySQL 数据来源
// 负责建立连接、自动迁移表结构、空表时写入样例数据
package mysql

import (
	"fmt"
	"time"

	"user_location_dashboard/internal/config"
	"user_location_dashboard/internal/dao"
	"user_location_dashboard/internal/model"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init 初始化数据库连接并返回坐标仓库
// 执行步骤：
//  1. 构建 DSN 连接字符串
//  2. 使用 GORM 建立数据库连接
//  3. AutoMigrate 自动迁移表结构
//  4. user_coordinate 表为空时写入样例数据
func Init(conf config.MysqlConfig) (dao.CoordinateRepository, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.User,
		conf.Password,
		conf.Host,
		conf.Port,
		conf.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	if err := db.AutoMigrate(
		&model.UserCoordinate{}, // 用户坐标表
		&model.LocationTrace{},  // 历史轨迹表
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	if err := Seed(db, time.Now()); err != nil {
		return nil, err
	}
	return NewCoordinateRepository(db), nil
}

// Seed 表为空时写入样例数据，已有数据则跳过
func Seed(db *gorm.DB, now time.Time) error {
	var count int64
	if err := db.Model(&model.UserCoordinate{}).Count(&count).Error; err != nil {
		return wrapDBError(err, "统计用户坐标")
	}
	if count > 0 {
		return nil
	}

	users, traces := dao.SeedData(now)
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		return tx.Create(&traces).Error
	})
	if err != nil {
		return wrapDBError(err, "写入样例数据")
	}
	zap.L().Info("样例数据写入成功", zap.Int("users", len(users)), zap.Int("traces", len(traces)))
	return nil
}
