package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyRequestID is both the header and the context key for the id.
const KeyRequestID = "X-Request-ID"

// maximum length accepted from the client before we mint our own
const maxRequestIDLen = 64

// RequestID propagates the caller's request id, or mints a UUID when
// the header is missing or oversized. The id is echoed on the response
// and stashed in the context for the access log.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if rid == "" || len(rid) > maxRequestIDLen {
			rid = uuid.NewString()
		}
		c.Set(KeyRequestID, rid)
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Next()
	}
}
