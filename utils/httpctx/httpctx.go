package httpctx

import "github.com/gin-gonic/gin"

const (
	UserIDKey    = "userID"
	RequestIDKey = "requestID"
)

// CurrentUserID retrieves the authenticated user ID from Gin context if present.
func CurrentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	uid, ok := val.(uint)
	return uid, ok
}

// RequestID returns the id assigned by the request id middleware, or "".
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
