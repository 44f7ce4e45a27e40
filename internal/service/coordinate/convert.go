package coordinate

import (
	"time"

	"user_location_dashboard/internal/client"
	"user_location_dashboard/internal/dto/respond"
	"user_location_dashboard/internal/model"
)

// fallbackCoordinate 未登记的 userId 一律返回这条固定记录
func fallbackCoordinate(userId string, now time.Time) respond.RawUserCoordinate {
	return respond.RawUserCoordinate{
		UserId:     userId,
		Gender:     "男",
		Age:        28,
		Region:     "北京市朝阳区",
		Latitude:   39.921239,
		Longitude:  116.443087,
		LastUpdate: respond.LastUpdateMillis(now.UnixMilli()),
	}
}

// toRaw 存储行 -> 线上原始形态，lastUpdate 以毫秒时间戳下发
func toRaw(u model.UserCoordinate) respond.RawUserCoordinate {
	return respond.RawUserCoordinate{
		UserId:     u.UserId,
		Gender:     respond.RawGender(u.Gender),
		Age:        u.Age,
		Region:     u.Region,
		Latitude:   u.Latitude,
		Longitude:  u.Longitude,
		LastUpdate: respond.LastUpdateMillis(u.LastUpdate.UnixMilli()),
	}
}

func toHistory(userId string, traces []model.LocationTrace) model.LocationHistory {
	h := model.LocationHistory{UserId: userId, Locations: make([]model.LocationPoint, 0, len(traces))}
	for _, t := range traces {
		h.Locations = append(h.Locations, model.LocationPoint{
			Latitude:  t.Latitude,
			Longitude: t.Longitude,
			Timestamp: client.FormatISO(t.RecordedAt),
			Region:    t.Region,
		})
	}
	return h
}
