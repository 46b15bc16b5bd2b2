package middlewares

import (
	"errors"

	"Socialnet/auth"
	"Socialnet/responses"
	"Socialnet/services"
	"Socialnet/utils/httpctx"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TokenAuthMiddleware resolves the bearer token to a user that still exists
// and stores its id on the context.
func TokenAuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := auth.ExtractTokenID(c.Request)
		if err != nil {
			responses.Error(c, services.ErrInvalidJWT)
			return
		}

		if _, err := services.FindUserByID(db.WithContext(c.Request.Context()), userID); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				responses.Error(c, services.ErrInvalidJWT)
				return
			}
			responses.Error(c, err)
			return
		}

		c.Set(httpctx.UserIDKey, userID)
		c.Next()
	}
}

// CORSMiddleware lets the configured frontends call the API with credentials.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowOrigins = nil
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}
	return cors.New(cfg)
}
