package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"user_location_dashboard/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetHeader(constants.REQUEST_ID_HEADER))
	})
	return r
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	r := newEngine(RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(constants.REQUEST_ID_HEADER)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	r := newEngine(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(constants.REQUEST_ID_HEADER, "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc", w.Header().Get(constants.REQUEST_ID_HEADER))
}

func TestSecureHeaders(t *testing.T) {
	r := newEngine(SecureHeaders(true))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
