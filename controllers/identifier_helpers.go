package controllers

import (
	"strconv"
	"strings"

	"Socialnet/services"
	"Socialnet/utils/apperror"
	"Socialnet/utils/httpctx"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperror.Invalid(apperror.DomainRequest, name, name+" must be a positive integer")
	}
	return uint(id), nil
}

// viewerID returns the authenticated user. Routes behind the auth middleware
// always have one.
func viewerID(c *gin.Context) (uint, error) {
	id, ok := httpctx.CurrentUserID(c)
	if !ok {
		return 0, services.ErrInvalidJWT
	}
	return id, nil
}
