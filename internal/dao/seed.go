package dao

import (
	"time"

	"user_location_dashboard/internal/model"
)

// SeedData 本地开发用的样例数据，时间相对 now 计算
// 三个用户各带三条历史轨迹，轨迹按时间倒序排列
func SeedData(now time.Time) ([]model.UserCoordinate, []model.LocationTrace) {
	users := []model.UserCoordinate{
		{UserId: "user001", Age: 25, Gender: "男", Region: "北京市朝阳区", Latitude: 39.9042, Longitude: 116.4074, LastUpdate: now},
		{UserId: "user002", Age: 30, Gender: "女", Region: "上海市浦东新区", Latitude: 31.2304, Longitude: 121.4737, LastUpdate: now},
		{UserId: "user003", Age: 28, Gender: "男", Region: "广州市天河区", Latitude: 23.1291, Longitude: 113.2644, LastUpdate: now},
	}

	ago := func(ms int64) time.Time { return now.Add(-time.Duration(ms) * time.Millisecond) }
	traces := []model.LocationTrace{
		{UserId: "user001", Latitude: 39.9042, Longitude: 116.4074, Region: "北京市朝阳区", RecordedAt: ago(3600000)},
		{UserId: "user001", Latitude: 39.9142, Longitude: 116.4174, Region: "北京市海淀区", RecordedAt: ago(7200000)},
		{UserId: "user001", Latitude: 39.8942, Longitude: 116.3974, Region: "北京市西城区", RecordedAt: ago(10800000)},
		{UserId: "user002", Latitude: 31.2304, Longitude: 121.4737, Region: "上海市浦东新区", RecordedAt: ago(1800000)},
		{UserId: "user002", Latitude: 31.2204, Longitude: 121.4637, Region: "上海市黄浦区", RecordedAt: ago(5400000)},
		{UserId: "user002", Latitude: 31.2404, Longitude: 121.4837, Region: "上海市静安区", RecordedAt: ago(9000000)},
		{UserId: "user003", Latitude: 23.1291, Longitude: 113.2644, Region: "广州市天河区", RecordedAt: ago(2700000)},
		{UserId: "user003", Latitude: 23.1191, Longitude: 113.2544, Region: "广州市越秀区", RecordedAt: ago(6300000)},
		{UserId: "user003", Latitude: 23.1391, Longitude: 113.2744, Region: "广州市荔湾区", RecordedAt: ago(9900000)},
	}
	return users, traces
}
