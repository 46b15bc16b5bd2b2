package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (server *Server) Healthz(c *gin.Context) {
	sqlDB, err := server.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
