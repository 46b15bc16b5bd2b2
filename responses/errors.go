package responses

import (
	"log"
	"net/http"

	"Socialnet/utils/apperror"
	"Socialnet/utils/httpctx"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindInvalidInput:
		return http.StatusUnprocessableEntity
	case apperror.KindSelfReference:
		return http.StatusBadRequest
	case apperror.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err and aborts the request. Domain errors carry their own code;
// anything else is logged, reported and hidden behind internal_error.
func Error(c *gin.Context, err error) {
	if appErr, ok := apperror.As(err); ok {
		c.AbortWithStatusJSON(StatusFor(appErr.Kind), ErrorResponse{
			Error:   appErr.Code,
			Message: appErr.Message,
			Field:   appErr.Field,
		})
		return
	}

	_ = c.Error(err)
	log.Printf("[api] request_id=%s %s %s: %v", httpctx.RequestID(c), c.Request.Method, c.FullPath(), err)
	if hub := sentry.GetHubFromContext(c.Request.Context()); hub != nil {
		hub.CaptureException(err)
	} else {
		sentry.CaptureException(err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal_error"})
}

// BadRequest reports a body that could not be decoded at all.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "invalid_body",
		Message: message,
	})
}
