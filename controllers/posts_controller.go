package controllers

import (
	"net/http"

	"Socialnet/models"
	"Socialnet/responses"
	"Socialnet/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post  body      PostCreateRequest  true  "Title (4-40 chars) and content"
// @Success      201   {object}  responses.PostCreatedResponse
// @Failure      422   {object}  responses.ErrorResponse
// @Router       /posts [post]
// @Security     BearerAuth
func (server *Server) CreatePost(c *gin.Context) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}
	var req PostCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Cannot unmarshal body")
		return
	}

	var post *models.Post
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		post, err = services.CreatePost(tx, viewer, req.Title, req.Content)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, postCreatedResponse(post))
}

// GetPost godoc
// @Summary      Get a post
// @Description  Includes counts, reactions by type, the owner and the caller's own reaction.
// @Tags         posts
// @Produce      json
// @Param        post_id  path      int  true  "Post ID"
// @Success      200      {object}  responses.PostResponse
// @Failure      403      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Router       /posts/{post_id} [get]
// @Security     BearerAuth
func (server *Server) GetPost(c *gin.Context) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		responses.Error(c, err)
		return
	}

	var detail *services.PostDetail
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		detail, err = services.GetPost(c.Request.Context(), tx, viewer, postID)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, postResponse(detail))
}

func (server *Server) UpdatePost(c *gin.Context) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		responses.Error(c, err)
		return
	}
	var req PostEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Cannot unmarshal body")
		return
	}

	var post *models.Post
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		post, err = services.UpdatePost(tx, viewer, postID, services.PostUpdate{Title: req.Title, Content: req.Content})
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, postCreatedResponse(post))
}

func (server *Server) DeletePost(c *gin.Context) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		responses.Error(c, err)
		return
	}

	err = server.withTx(c, func(tx *gorm.DB) error {
		return services.DeletePost(tx, viewer, postID)
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	services.AfterPostDeleted(c.Request.Context(), postID)
	c.Status(http.StatusNoContent)
}

// GetUserPosts lists a user's posts newest first.
func (server *Server) GetUserPosts(c *gin.Context) {
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

	var rows []services.PostRow
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		rows, err = services.ListPostsByOwner(tx, viewer, c.Param("username"), page)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, postListResponses(rows))
}
