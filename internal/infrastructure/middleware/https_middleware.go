package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// SecureHeaders 为看板页面和接口添加安全响应头
// isDev 为 true 时跳过 HSTS 等只适用于 HTTPS 部署的头
func SecureHeaders(isDev bool) gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "same-origin",
		IsDevelopment:      isDev,
	})

	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			// 不能在中间件里 Fatal，只终止当前请求
			zap.L().Error("secure middleware rejected request", zap.Error(err))
			c.Abort()
			return
		}
		// secure 可能已经写了重定向响应
		if status := c.Writer.Status(); status > 300 && status < 399 {
			c.Abort()
			return
		}
		c.Next()
	}
}
