package client

import (
	"errors"
	"time"

	"user_location_dashboard/internal/dto/respond"
	"user_location_dashboard/internal/model"
	"user_location_dashboard/pkg/constants"
	"user_location_dashboard/pkg/errorx"
)

// maxTimestampMillis 毫秒时间戳的合法范围 ±8.64e15（约 ±27.5 万年），与浏览器 Date 一致
const maxTimestampMillis = 8_640_000_000_000_000

var (
	errMissingLastUpdate    = errors.New("lastUpdate 字段缺失")
	errLastUpdateOutOfRange = errors.New("lastUpdate 超出可表示的时间范围")
)

// ClassifyGender 将后端性别文本归一化
// "男" -> male，"女" -> female，其余一律 other，不会报错
func ClassifyGender(raw string) model.Gender {
	switch raw {
	case "男":
		return model.GenderMale
	case "女":
		return model.GenderFemale
	default:
		return model.GenderOther
	}
}

// FormatISO 按 ISO-8601 UTC 毫秒精度格式化，如 2024-01-02T03:04:05.678Z
func FormatISO(t time.Time) string {
	return t.UTC().Format(constants.ISO8601_MILLI_LAYOUT)
}

// AdaptUserInfo 将原始坐标记录转换为 UserInfo
// 经纬度和区域原样保留；lastUpdate 为数字时按毫秒时间戳转换，
// 为字符串时必须能解析为 RFC 3339 时间，否则返回 CodeInvalidTimestamp
func AdaptUserInfo(raw respond.RawUserCoordinate) (model.UserInfo, error) {
	lastUpdateTime, err := normalizeLastUpdate(raw.LastUpdate)
	if err != nil {
		return model.UserInfo{}, errorx.Wrapf(err, errorx.CodeInvalidTimestamp, "用户 %s 的 lastUpdate 非法", raw.UserId)
	}

	return model.UserInfo{
		UserId: raw.UserId,
		Age:    raw.Age,
		Gender: ClassifyGender(string(raw.Gender)),
		CurrentLocation: model.CurrentLocation{
			Latitude:  raw.Latitude,
			Longitude: raw.Longitude,
			Region:    raw.Region,
		},
		LastUpdateTime: lastUpdateTime,
	}, nil
}

func normalizeLastUpdate(l respond.LastUpdate) (string, error) {
	if ms, ok := l.Millis(); ok {
		if ms > maxTimestampMillis || ms < -maxTimestampMillis {
			return "", errLastUpdateOutOfRange
		}
		// 为什么：ISO-8601 的年份只有四位，超出 0000-9999 的结果下游解析不了
		t := time.UnixMilli(ms).UTC()
		if t.Year() < 0 || t.Year() > 9999 {
			return "", errLastUpdateOutOfRange
		}
		return FormatISO(t), nil
	}
	if s, ok := l.Text(); ok {
		if _, err := time.Parse(time.RFC3339Nano, s); err != nil {
			return "", err
		}
		return s, nil
	}
	return "", errMissingLastUpdate
}
