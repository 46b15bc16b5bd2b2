package controllers

import (
	"net/http"

	"Socialnet/models"
	"Socialnet/responses"
	"Socialnet/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// postScope parses the caller and the (post_id, comment_id) address.
// withComment is false for collection routes.
func postScope(c *gin.Context, withComment bool) (viewer, postID, commentID uint, err error) {
	if viewer, err = viewerID(c); err != nil {
		return
	}
	if postID, err = parseIDParam(c, "post_id"); err != nil {
		return
	}
	if withComment {
		commentID, err = parseIDParam(c, "comment_id")
	}
	return
}

// CreateComment godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        post_id  path      int             true  "Post ID"
// @Param        comment  body      CommentRequest  true  "Comment content"
// @Success      201      {object}  responses.CommentCreatedResponse
// @Failure      403      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Router       /posts/{post_id}/comments [post]
// @Security     BearerAuth
func (server *Server) CreateComment(c *gin.Context) {
	viewer, postID, _, err := postScope(c, false)
	if err != nil {
		responses.Error(c, err)
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Cannot unmarshal body")
		return
	}

	var comment *models.Comment
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		comment, err = services.AddComment(tx, viewer, postID, req.Content)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, commentCreatedResponse(comment))
}

// GetComments lists a post's comments newest first.
func (server *Server) GetComments(c *gin.Context) {
	viewer, postID, _, err := postScope(c, false)
	if err != nil {
		responses.Error(c, err)
		return
	}
	page, err := pageFromQuery(c)
	if err != nil {
		responses.Error(c, err)
		return
	}

	var views []services.CommentView
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		views, err = services.ListComments(tx, viewer, postID, page)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	out := make([]responses.CommentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, commentResponse(v))
	}
	c.JSON(http.StatusOK, out)
}

func (server *Server) GetComment(c *gin.Context) {
	viewer, postID, commentID, err := postScope(c, true)
	if err != nil {
		responses.Error(c, err)
		return
	}

	var view *services.CommentView
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		view, err = services.GetComment(tx, viewer, postID, commentID)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, commentResponse(*view))
}

func (server *Server) UpdateComment(c *gin.Context) {
	viewer, postID, commentID, err := postScope(c, true)
	if err != nil {
		responses.Error(c, err)
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Cannot unmarshal body")
		return
	}

	var comment *models.Comment
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		comment, err = services.UpdateComment(tx, viewer, postID, commentID, req.Content)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, commentCreatedResponse(comment))
}

func (server *Server) DeleteComment(c *gin.Context) {
	viewer, postID, commentID, err := postScope(c, true)
	if err != nil {
		responses.Error(c, err)
		return
	}

	err = server.withTx(c, func(tx *gorm.DB) error {
		return services.DeleteComment(tx, viewer, postID, commentID)
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
