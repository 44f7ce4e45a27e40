package middleware

import (
	"user_location_dashboard/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID 保证每个请求都带有 X-Request-Id，并回写到响应头
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.REQUEST_ID_HEADER)
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set(constants.REQUEST_ID_HEADER, id)
		}
		c.Header(constants.REQUEST_ID_HEADER, id)
		c.Next()
	}
}
