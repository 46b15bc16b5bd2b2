package controllers

import (
	"net/http"
	"strings"

	"Socialnet/auth"
	"Socialnet/models"
	"Socialnet/responses"
	"Socialnet/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Login godoc
// @Summary      Log in
// @Description  Authenticate with email (or username) and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Login payload"
// @Success      200          {object}  responses.TokenResponse
// @Failure      401          {object}  responses.ErrorResponse
// @Router       /login [post]
func (server *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.BadRequest(c, "Cannot unmarshal body")
		return
	}
	login := strings.TrimSpace(req.Email)
	if login == "" {
		login = strings.TrimSpace(req.Username)
	}
	if login == "" || req.Password == "" {
		responses.Error(c, services.ErrInvalidLogin)
		return
	}

	var user *models.User
	err := server.withTx(c, func(tx *gorm.DB) error {
		var err error
		user, err = services.Authenticate(tx, login, req.Password)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}

	token, err := auth.CreateToken(user.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, responses.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
