package controllers

import (
	"Socialnet/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) initializeRoutes() {
	s.Router.GET("/healthz", s.Healthz)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.Router.Group("/api/v1")
	{
		v1.POST("/login", s.Login)
		v1.POST("/users", s.CreateUser)
	}

	authed := v1.Group("")
	authed.Use(middlewares.TokenAuthMiddleware(s.DB))
	{
		// Users routes
		authed.GET("/users", s.SearchUsers)
		authed.GET("/users/me", s.GetCurrentUser)
		authed.GET("/users/me/settings", s.GetCurrentUserSettings)
		authed.PATCH("/users/me", s.UpdateCurrentUser)
		authed.PUT("/users/me/password", s.ChangePassword)
		authed.DELETE("/users/me", s.DeleteCurrentUser)
		authed.GET("/users/:username", s.GetUser)
		authed.GET("/users/:username/followers", s.GetFollowers)
		authed.GET("/users/:username/following", s.GetFollowing)
		authed.GET("/users/:username/posts", s.GetUserPosts)

		// Follow routes
		authed.POST("/follows/:user_id/follow", s.FollowUser)
		authed.DELETE("/follows/:user_id/unfollow", s.UnfollowUser)
		authed.DELETE("/follows/:user_id/follower", s.RemoveFollower)
		authed.GET("/follows/requests/incoming", s.GetIncomingRequests)
		authed.GET("/follows/requests/outgoing", s.GetOutgoingRequests)
		authed.PATCH("/follows/requests/:user_id/accept", s.AcceptFollowRequest)
		authed.DELETE("/follows/requests/:user_id/reject", s.RejectFollowRequest)
		authed.DELETE("/follows/requests/:user_id/cancel", s.CancelFollowRequest)

		// Post routes
		authed.POST("/posts", s.CreatePost)
		authed.GET("/posts/:post_id", s.GetPost)
		authed.PATCH("/posts/:post_id", s.UpdatePost)
		authed.DELETE("/posts/:post_id", s.DeletePost)

		// Comment routes
		authed.GET("/posts/:post_id/comments", s.GetComments)
		authed.POST("/posts/:post_id/comments", s.CreateComment)
		authed.GET("/posts/:post_id/comments/:comment_id", s.GetComment)
		authed.PATCH("/posts/:post_id/comments/:comment_id", s.UpdateComment)
		authed.DELETE("/posts/:post_id/comments/:comment_id", s.DeleteComment)

		// Reaction routes
		authed.GET("/posts/:post_id/reactions", s.GetReactions)
		authed.POST("/posts/:post_id/reactions", s.CreateReaction)
		authed.PATCH("/posts/:post_id/reactions", s.UpdateReaction)
		authed.DELETE("/posts/:post_id/reactions", s.DeleteReaction)
	}
}
