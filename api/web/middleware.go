package web

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jt0/varasto/logs"
)

const RequestIdHeader = "X-Request-Id"

// RequestLogger logs one line per request. The request id is taken from the incoming header when present and is
// echoed back in the response.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestId := c.GetHeader(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Header(RequestIdHeader, requestId)

		c.Next()

		logs.Info.Printf("%s %s %s %d %s", requestId, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
