package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/logger"
)

// HeaderAPIKey carries the shared secret of machine callers.
const HeaderAPIKey = "X-API-Key"

// RefreshKeyMiddleware guards the quote refresh endpoints with a shared key.
// An empty apiKey disables them instead of leaving them open.
func RefreshKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithError(c, apperrors.ErrRefreshNotConfigured)
			return
		}
		if subtle.ConstantTimeCompare([]byte(c.GetHeader(HeaderAPIKey)), []byte(apiKey)) != 1 {
			logger.Get().Warnw("rejected refresh request",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
			)
			abortWithError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
