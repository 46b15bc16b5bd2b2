package controllers

import (
	"net/http"

	"Socialnet/responses"
	"Socialnet/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// edgeAction is a follow graph mutation addressed by (viewer, other user).
type edgeAction func(tx *gorm.DB, viewerID, otherID uint) error

// FollowUser godoc
// @Summary      Follow a user
// @Description  Public accounts are followed immediately; private accounts receive a pending request.
// @Tags         follows
// @Param        user_id  path  int  true  "User ID to follow"
// @Success      204
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Router       /follows/{user_id}/follow [post]
// @Security     BearerAuth
func (server *Server) FollowUser(c *gin.Context) {
	server.mutateEdge(c, func(tx *gorm.DB, viewerID, otherID uint) error {
		_, err := services.Follow(tx, viewerID, otherID)
		return err
	})
}

// UnfollowUser drops an accepted follow of user_id.
func (server *Server) UnfollowUser(c *gin.Context) {
	server.mutateEdge(c, services.Unfollow)
}

// RemoveFollower drops user_id from the caller's followers.
func (server *Server) RemoveFollower(c *gin.Context) {
	server.mutateEdge(c, services.RemoveFollower)
}

// AcceptFollowRequest accepts user_id's pending request to follow the caller.
func (server *Server) AcceptFollowRequest(c *gin.Context) {
	server.mutateEdge(c, func(tx *gorm.DB, viewerID, followerID uint) error {
		return services.AcceptRequest(tx, followerID, viewerID)
	})
}

func (server *Server) RejectFollowRequest(c *gin.Context) {
	server.mutateEdge(c, services.RejectRequest)
}

func (server *Server) CancelFollowRequest(c *gin.Context) {
	server.mutateEdge(c, services.CancelRequest)
}

func (server *Server) mutateEdge(c *gin.Context, action edgeAction) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}
	otherID, err := parseIDParam(c, "user_id")
	if err != nil {
		responses.Error(c, err)
		return
	}

	err = server.withTx(c, func(tx *gorm.DB) error {
		return action(tx, viewer, otherID)
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetIncomingRequests godoc
// @Summary      Pending follow requests sent to the caller
// @Tags         follows
// @Produce      json
// @Success      200  {array}  responses.FollowRequestResponse
// @Router       /follows/requests/incoming [get]
// @Security     BearerAuth
func (server *Server) GetIncomingRequests(c *gin.Context) {
	server.listRequests(c, services.Incoming)
}

func (server *Server) GetOutgoingRequests(c *gin.Context) {
	server.listRequests(c, services.Outgoing)
}

func (server *Server) listRequests(c *gin.Context, direction services.RequestDirection) {
	viewer, err := viewerID(c)
	if err != nil {
		responses.Error(c, err)
		return
	}

	var requests []services.FollowRequest
	err = server.withTx(c, func(tx *gorm.DB) error {
		var err error
		requests, err = services.ListRequests(tx, viewer, direction)
		return err
	})
	if err != nil {
		responses.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, followRequestResponses(requests))
}
