package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fyyur/fyyur-backend/utils"
)

const HeaderRequestId = "X-Request-Id"

// NewRequestId reuses the request id set by a proxy in front of the server, or generates one.
// It is echoed in the response and stored in the request context.
func NewRequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(HeaderRequestId)
		if _, err := uuid.Parse(requestId); err != nil {
			requestId = uuid.NewString()
		}
		c.Header(HeaderRequestId, requestId)
		c.Request = c.Request.WithContext(utils.StoreRequestIdInContext(c.Request.Context(), requestId))
		c.Next()
	}
}
