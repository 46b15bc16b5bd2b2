package controllers

import (
	"net/http"

	"Socialnet/models"
	"Socialnet/responses"
	"Socialnet/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetReactions lists a post's reactions ordered by user id.
func (server *Server) GetReactions(c *gin.Context) {
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

	var views []services.ReactionView
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		views, err = services.ListReactions(tx, viewer, postID, page)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	out := make([]responses.ReactionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, reactionResponse(v))
	}
	c.JSON(http.StatusOK, out)
}

// CreateReaction godoc
// @Summary      React to a post
// @Tags         reactions
// @Accept       json
// @Produce      json
// @Param        post_id   path      int              true  "Post ID"
// @Param        reaction  body      ReactionRequest  true  "like, wow, heart, fire or sad"
// @Success      201       {object}  responses.ReactionCreatedResponse
// @Failure      409       {object}  responses.ErrorResponse
// @Router       /posts/{post_id}/reactions [post]
// @Security     BearerAuth
func (server *Server) CreateReaction(c *gin.Context) {
	server.writeReaction(c, http.StatusCreated, services.AddReaction)
}

func (server *Server) UpdateReaction(c *gin.Context) {
	server.writeReaction(c, http.StatusOK, services.UpdateReaction)
}

type reactionWriter func(tx *gorm.DB, viewerID, postID uint, reactionType string) (*models.Reaction, error)

func (server *Server) writeReaction(c *gin.Context, status int, write reactionWriter) {
	viewer, postID, _, err := postScope(c, false)
	if err != nil {
		responses.Error(c, err)
		return
	}
	var req ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Cannot unmarshal body")
		return
	}

	var reaction *models.Reaction
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		reaction, err = write(tx, viewer, postID, req.Type)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	services.AfterReactionChanged(c.Request.Context(), postID)
	c.JSON(status, reactionCreatedResponse(reaction))
}

func (server *Server) DeleteReaction(c *gin.Context) {
	viewer, postID, _, err := postScope(c, false)
	if err != nil {
		responses.Error(c, err)
		return
	}

	err = server.withTx(c, func(tx *gorm.DB) error {
		return services.DeleteReaction(tx, viewer, postID)
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	services.AfterReactionChanged(c.Request.Context(), postID)
	c.Status(http.StatusNoContent)
}
