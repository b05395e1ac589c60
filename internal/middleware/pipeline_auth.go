package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/logger"
)

// PipelineKeyHeader carries the ingestion pipeline's shared secret.
const PipelineKeyHeader = "X-API-Key"

// PipelineAuthMiddleware guards the ingestion routes with a shared API key.
// With no key configured every request is refused.
func PipelineAuthMiddleware(apiKey string) gin.HandlerFunc {
	expected := []byte(apiKey)
	return func(c *gin.Context) {
		if len(expected) == 0 {
			WriteError(c, apperrors.ErrPipelineNotConfigured)
			return
		}

		key := c.GetHeader(PipelineKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), expected) != 1 {
			logger.Get().Warnw("pipeline request rejected",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
				"key_present", key != "",
				"request_id", RequestID(c),
			)
			WriteError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
