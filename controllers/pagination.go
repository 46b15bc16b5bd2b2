package controllers

import (
	"strconv"
	"strings"

	"Socialnet/services"
	"Socialnet/utils/apperror"

	"github.com/gin-gonic/gin"
)

// pageFromQuery reads ?limit=&offset= with the service defaults.
func pageFromQuery(c *gin.Context) (services.Page, error) {
	limit, err := intQuery(c, "limit", services.DefaultLimit)
	if err != nil {
		return services.Page{}, err
	}
	offset, err := intQuery(c, "offset", 0)
	if err != nil {
		return services.Page{}, err
	}
	return services.NewPage(limit, offset)
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Invalid(apperror.DomainRequest, name, name+" must be an integer")
	}
	return n, nil
}
