package middleware

import (
	"github.com/gin-gonic/gin"

	"pulse/pkg/util"
)

// RequestIDKey is the context key the request id is stored under
const RequestIDKey = "request_id"

// RequestIDHeader is the header the request id is propagated in
const RequestIDHeader = "X-Request-ID"

// RequestID returns a gin middleware that tags every request with an
// id, honoring one supplied by the caller
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = util.GenerateUUID()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
