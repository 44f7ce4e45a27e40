package respond

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// RawUserCoordinate 后端 /users/coordinates/{userId} 返回的原始记录
// 只被 adapter 消费一次，不会被持久化
// 使用位置:
//   - internal/client/adapter.go: AdaptUserInfo
//   - internal/mock/handler.go: GetCoordinates
type RawUserCoordinate struct {
	UserId     string     `json:"userId"`
	Gender     RawGender  `json:"gender"`
	Age        int        `json:"age"`
	Region     string     `json:"region"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	LastUpdate LastUpdate `json:"lastUpdate"`
}

// RawGender 原始性别字段，"男" / "女" / 任意值
// 非字符串的 JSON 值（数字、对象、null）一律视为空串，交给 adapter 归为 other
type RawGender string

// UnmarshalJSON 宽松解析，永不返回错误
func (g *RawGender) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*g = ""
		return nil
	}
	*g = RawGender(s)
	return nil
}

// LastUpdate 原始 lastUpdate 字段，可能是毫秒时间戳也可能是时间字符串
// 解析时记住线上的原始类型，由 adapter 决定如何转换
type LastUpdate struct {
	present  bool
	isNumber bool
	millis   int64
	text     string
}

// LastUpdateMillis 构造数字形式的 lastUpdate
func LastUpdateMillis(ms int64) LastUpdate {
	return LastUpdate{present: true, isNumber: true, millis: ms}
}

// LastUpdateText 构造字符串形式的 lastUpdate
func LastUpdateText(s string) LastUpdate {
	return LastUpdate{present: true, text: s}
}

// Millis 数字形式时返回毫秒时间戳
func (l LastUpdate) Millis() (int64, bool) { return l.millis, l.present && l.isNumber }

// Text 字符串形式时返回原文
func (l LastUpdate) Text() (string, bool) { return l.text, l.present && !l.isNumber }

// UnmarshalJSON 区分数字和字符串两种线上形态
func (l *LastUpdate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*l = LastUpdate{}
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = LastUpdateText(s)
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		// 布尔、对象等非法类型按字符串原文透传，由 adapter 的时间解析拒绝
		*l = LastUpdateText(string(b))
		return nil
	}
	// 为什么：超出 int64 的浮点直接转换结果未定义，这里饱和到边界值，交给 adapter 按范围拒绝
	switch {
	case f >= math.MaxInt64:
		*l = LastUpdateMillis(math.MaxInt64)
	case f <= math.MinInt64:
		*l = LastUpdateMillis(math.MinInt64)
	default:
		*l = LastUpdateMillis(int64(f))
	}
	return nil
}

// MarshalJSON 按原始形态输出
func (l LastUpdate) MarshalJSON() ([]byte, error) {
	switch {
	case !l.present:
		return []byte("null"), nil
	case l.isNumber:
		return []byte(strconv.FormatInt(l.millis, 10)), nil
	default:
		return json.Marshal(l.text)
	}
}
