package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware tags each request with a correlation ID, echoed in
// the X-Request-ID response header and carried into every log line via
// HandleError/HandleSuccess. A client-supplied X-Request-ID is honored
// so a round-logging client can stitch its own logs to the server's.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
