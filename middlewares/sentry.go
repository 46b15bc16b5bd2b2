package middlewares

import (
	"log"
	"net/http"

	"Socialnet/responses"
	"Socialnet/utils/httpctx"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// SentryMiddleware gives each request its own hub and turns panics into a
// reported 500.
func SentryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetRequest(c.Request)
		if id := httpctx.RequestID(c); id != "" {
			hub.Scope().SetTag("request_id", id)
		}
		c.Request = c.Request.WithContext(sentry.SetHubOnContext(c.Request.Context(), hub))

		defer func() {
			if rec := recover(); rec != nil {
				hub.RecoverWithContext(c.Request.Context(), rec)
				log.Printf("[api] request_id=%s panic: %v", httpctx.RequestID(c), rec)
				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{Error: "internal_error"})
				}
			}
		}()

		c.Next()
	}
}
