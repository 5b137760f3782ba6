package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求 ID 头名称.
const RequestIDHeader = "X-Request-ID"

// requestIDContextKey gin context 中的请求 ID 键.
const requestIDContextKey = "request_id"

// RequestIDMiddleware 为每个请求分配请求 ID；调用方已携带时原样透传.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDContextKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID 取出当前请求的请求 ID.
func GetRequestID(c *gin.Context) string {
	if id, ok := c.Get(requestIDContextKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return ""
}
