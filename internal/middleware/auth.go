// Package middleware provides HTTP middleware for orgatlas.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIKeyHeader is the request header carrying the static API key.
const APIKeyHeader = "X-API-KEY"

// authTimingFloor is the minimum response time for rejected auth attempts
// to prevent timing oracles that could distinguish key prefixes.
const authTimingFloor = 50 * time.Millisecond

// truncateKey returns at most the first 4 characters of key followed by "...".
func truncateKey(key string) string {
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return key
}

// enforceTimingFloor sleeps if needed so the response takes at least authTimingFloor.
func enforceTimingFloor(start time.Time) {
	if elapsed := time.Since(start); elapsed < authTimingFloor {
		time.Sleep(authTimingFloor - elapsed)
	}
}

// APIKeyAuth returns Gin middleware that authenticates requests against a
// single static API key supplied via the X-API-KEY header. When the server
// has no key configured, every request is refused with 503 rather than
// running open.
func APIKeyAuth(apiKey string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if c.Writer.Status() == http.StatusUnauthorized {
				enforceTimingFloor(start)
			}
		}()

		if apiKey == "" {
			respondError(c, http.StatusServiceUnavailable, "unavailable", "API key not configured by the server")
			return
		}

		supplied := c.GetHeader(APIKeyHeader)
		if supplied == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(apiKey)) != 1 {
			logAuthFailure(log, c, supplied)
			respondError(c, http.StatusUnauthorized, "unauthorized", "invalid or missing API key")
			return
		}

		c.Next()
	}
}

// logAuthFailure logs a failed authentication attempt.
func logAuthFailure(log *logrus.Logger, c *gin.Context, apiKey string) {
	log.WithFields(logrus.Fields{
		"client_ip":  c.ClientIP(),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"user_agent": c.Request.UserAgent(),
		"request_id": c.GetString("request_id"),
		"key_prefix": truncateKey(apiKey),
	}).Warn("authentication failed: invalid api key")
}
