package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// APIKeyHeader carries the shared secret on every enrich call.
const APIKeyHeader = "x-api-key"

// APIKeyMiddleware rejects requests whose x-api-key header does not match key.
func APIKeyMiddleware(key string) gin.HandlerFunc {
	expected := []byte(key)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(APIKeyHeader))
		if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
			log.Ctx(c.Request.Context()).Warn().
				Str("client_ip", c.ClientIP()).
				Bool("header_present", len(got) > 0).
				Msg("rejected api key")
			c.String(http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
