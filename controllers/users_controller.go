package controllers

import (
	"net/http"
	"strings"

	"Socialnet/models"
	"Socialnet/responses"
	"Socialnet/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateUser godoc
// @Summary      Register
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      RegisterRequest  true  "Account details"
// @Success      201   {object}  responses.UserSettingsResponse
// @Failure      409   {object}  responses.ErrorResponse
// @Failure      422   {object}  responses.ErrorResponse
// @Router       /users [post]
func (server *Server) CreateUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Cannot unmarshal body")
		return
	}

	user := &models.User{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		Bio:       req.Bio,
		IsPrivate: req.IsPrivate,
	}
	err := server.withTx(c, func(tx *gorm.DB) error {
		var err error
		user, err = services.CreateUser(tx, user)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, userSettingsResponse(user))
}

// SearchUsers godoc
// @Summary      Search users by username
// @Tags         users
// @Produce      json
// @Param        query  query     string  false  "Substring to match"
// @Param        limit  query     int     false  "1-50, default 10"
// @Success      200    {array}   responses.UserSummaryResponse
// @Router       /users [get]
// @Security     BearerAuth
func (server *Server) SearchUsers(c *gin.Context) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}
	page, err := pageFromQuery(c)
	if err != nil {
		responses.Error(c, err)
		return
	}

	var results []services.UserSummary
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		results, err = services.SearchUsers(tx, viewer, c.Query("query"), page.Limit)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, userSummaryResponses(results))
}

// GetCurrentUser returns the caller's own profile header.
func (server *Server) GetCurrentUser(c *gin.Context) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}

	var profile *services.Profile
	err = server.withTx(c, func(tx *gorm.DB) error {
		me, err := services.FindUserByID(tx, viewer)
		if err != nil {
			return err
		}
		profile, err = services.GetProfile(tx, viewer, me)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, userProfileResponse(profile))
}

func (server *Server) GetCurrentUserSettings(c *gin.Context) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}

	var me *models.User
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		me, err = services.FindUserByID(tx, viewer)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, userSettingsResponse(me))
}

func (server *Server) UpdateCurrentUser(c *gin.Context) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}
	var req UserEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Cannot unmarshal body")
		return
	}

	var updated *models.User
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		updated, err = services.UpdateUser(tx, viewer, services.UserUpdate{
			Username:  req.Username,
			Bio:       req.Bio,
			IsPrivate: req.IsPrivate,
		})
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, userEditResponse(updated))
}

func (server *Server) ChangePassword(c *gin.Context) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Cannot unmarshal body")
		return
	}

	err = server.withTx(c, func(tx *gorm.DB) error {
		return services.ChangePassword(tx, viewer, req.CurrentPassword, req.NewPassword)
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (server *Server) DeleteCurrentUser(c *gin.Context) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}

	err = server.withTx(c, func(tx *gorm.DB) error {
		return services.DeleteUser(tx, viewer)
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	services.AfterUserDeleted(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// GetUser godoc
// @Summary      Public profile header
// @Description  Counts and relationship flag for any user. Private content behind it is gated separately.
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  responses.UserProfileResponse
// @Failure      404       {object}  responses.ErrorResponse
// @Router       /users/{username} [get]
// @Security     BearerAuth
func (server *Server) GetUser(c *gin.Context) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}

	var profile *services.Profile
	err = server.withTx(c, func(tx *gorm.DB) error {
		target, err := services.FindUserByUsername(tx, c.Param("username"))
		if err != nil {
			return err
		}
		profile, err = services.GetProfile(tx, viewer, target)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, userProfileResponse(profile))
}

func (server *Server) GetFollowers(c *gin.Context) {
	server.listConnections(c, services.ListFollowers)
}

func (server *Server) GetFollowing(c *gin.Context) {
	server.listConnections(c, services.ListFollowing)
}

type connectionLister func(tx *gorm.DB, viewerID uint, username string, page services.Page, search string) ([]services.UserSummary, error)

func (server *Server) listConnections(c *gin.Context, list connectionLister) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}
	page, err := pageFromQuery(c)
	if err != nil {
		responses.Error(c, err)
		return
	}
	search := strings.TrimSpace(c.Query("search"))

	var results []services.UserSummary
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		results, err = list(tx, viewer, c.Param("username"), page, search)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, userSummaryResponses(results))
}
