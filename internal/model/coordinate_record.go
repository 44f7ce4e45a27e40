package model

import (
	"time"

	"gorm.io/gorm"
)

// UserCoordinate mock 服务端存储的用户坐标行
// 对应数据库 user_coordinate 表，字段保持后端原始形态（性别为 "男"/"女"）
type UserCoordinate struct {
	gorm.Model

	// UserId 用户唯一标识，如 "user001"
	UserId string `gorm:"column:user_id;uniqueIndex;type:varchar(32);not null;comment:用户id"`

	Age int `gorm:"column:age;not null;comment:年龄"`

	// Gender 原始性别文本，"男" / "女" / 其他
	Gender string `gorm:"column:gender;type:varchar(8);comment:性别"`

	Region    string  `gorm:"column:region;type:varchar(64);comment:区域"`
	Latitude  float64 `gorm:"column:latitude;comment:纬度"`
	Longitude float64 `gorm:"column:longitude;comment:经度"`

	// LastUpdate 最近一次上报时间
	LastUpdate time.Time `gorm:"column:last_update;type:datetime(3);comment:最近上报时间"`
}

// TableName 指定表名
func (UserCoordinate) TableName() string {
	return "user_coordinate"
}

// LocationTrace mock 服务端存储的历史轨迹点
// 对应数据库 location_trace 表
type LocationTrace struct {
	gorm.Model

	UserId     string    `gorm:"column:user_id;index;type:varchar(32);not null;comment:用户id"`
	Latitude   float64   `gorm:"column:latitude;comment:纬度"`
	Longitude  float64   `gorm:"column:longitude;comment:经度"`
	Region     string    `gorm:"column:region;type:varchar(64);comment:区域"`
	RecordedAt time.Time `gorm:"column:recorded_at;index;type:datetime(3);comment:上报时间"`
}

// TableName 指定表名
func (LocationTrace) TableName() string {
	return "location_trace"
}
