package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"user_location_dashboard/internal/dao/memory"
	"user_location_dashboard/internal/handler"
	"user_location_dashboard/internal/model"
	"user_location_dashboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, handler.InitTrans("zh"))
	svc := service.NewServices(memory.NewSeeded(fixedNow), func() time.Time { return fixedNow })
	return NewEngine(NewHandler(svc.Coordinate))
}

func get(t *testing.T, e *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestGetCoordinates_KnownUser(t *testing.T) {
	w := get(t, newTestEngine(t), "/api/v1/users/coordinates/user002")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user002", body["userId"])
	assert.Equal(t, "女", body["gender"])
	assert.Equal(t, "上海市浦东新区", body["region"])
	assert.EqualValues(t, fixedNow.UnixMilli(), body["lastUpdate"])
}

func TestGetCoordinates_UnknownUserGetsFixedRecord(t *testing.T) {
	w := get(t, newTestEngine(t), "/api/v1/users/coordinates/someone-else")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "someone-else", body["userId"])
	assert.Equal(t, "男", body["gender"])
	assert.EqualValues(t, 28, body["age"])
	assert.Equal(t, "北京市朝阳区", body["region"])
	assert.Equal(t, 39.921239, body["latitude"])
	assert.Equal(t, 116.443087, body["longitude"])
	assert.EqualValues(t, fixedNow.UnixMilli(), body["lastUpdate"])
}

func TestListCoordinates_Paginates(t *testing.T) {
	w := get(t, newTestEngine(t), "/api/v1/users/coordinates?page=2&pageSize=2")
	require.Equal(t, http.StatusOK, w.Code)

	var page model.UserPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Users, 1)
	assert.Equal(t, "user003", page.Users[0].UserId)
	assert.Equal(t, model.GenderMale, page.Users[0].Gender)
	assert.Equal(t, "2024-05-01T08:00:00.000Z", page.Users[0].LastUpdateTime)
}

func TestListCoordinates_DefaultsWhenAbsent(t *testing.T) {
	w := get(t, newTestEngine(t), "/api/v1/users/coordinates")
	require.Equal(t, http.StatusOK, w.Code)

	var page model.UserPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Users, 3)
}

func TestListCoordinates_RejectsOversizedPage(t *testing.T) {
	w := get(t, newTestEngine(t), "/api/v1/users/coordinates?page=1&pageSize=500")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message map[string]string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "pageSize")
}

func TestListCoordinates_RejectsNonNumeric(t *testing.T) {
	w := get(t, newTestEngine(t), "/api/v1/users/coordinates?page=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHistory(t *testing.T) {
	e := newTestEngine(t)

	w := get(t, e, "/api/v1/users/coordinates/history/user001")
	require.Equal(t, http.StatusOK, w.Code)
	var h model.LocationHistory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	assert.Equal(t, "user001", h.UserId)
	require.Len(t, h.Locations, 3)
	assert.Equal(t, "2024-05-01T07:00:00.000Z", h.Locations[0].Timestamp)
	assert.Equal(t, "北京市朝阳区", h.Locations[0].Region)

	w = get(t, e, "/api/v1/users/coordinates/history/unknown-id")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
