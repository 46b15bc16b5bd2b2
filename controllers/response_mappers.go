package controllers

import (
	"Socialnet/models"
	"Socialnet/responses"
	"Socialnet/services"
)

func userSummaryResponse(s services.UserSummary) responses.UserSummaryResponse {
	return responses.UserSummaryResponse{
		ID:             s.ID,
		Username:       s.Username,
		IsFollowing:    s.IsFollowing,
		FollowersCount: s.FollowersCount,
	}
}

func userSummaryResponses(in []services.UserSummary) []responses.UserSummaryResponse {
	out := make([]responses.UserSummaryResponse, 0, len(in))
	for _, s := range in {
		out = append(out, userSummaryResponse(s))
	}
	return out
}

func userSettingsResponse(u *models.User) responses.UserSettingsResponse {
	return responses.UserSettingsResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		IsPrivate: u.IsPrivate,
		CreatedAt: u.CreatedAt,
	}
}

func userEditResponse(u *models.User) responses.UserEditResponse {
	return responses.UserEditResponse{
		ID:        u.ID,
		Username:  u.Username,
		Bio:       u.Bio,
		IsPrivate: u.IsPrivate,
	}
}

func userProfileResponse(p *services.Profile) responses.UserProfileResponse {
	return responses.UserProfileResponse{
		ID:             p.User.ID,
		Username:       p.User.Username,
		Bio:            p.User.Bio,
		IsPrivate:      p.User.IsPrivate,
		PostsCount:     p.PostsCount,
		FollowersCount: p.FollowersCount,
		FollowingCount: p.FollowingCount,
		IsFollowing:    p.IsFollowing,
	}
}

func followRequestResponses(in []services.FollowRequest) []responses.FollowRequestResponse {
	out := make([]responses.FollowRequestResponse, 0, len(in))
	for _, r := range in {
		out = append(out, responses.FollowRequestResponse{
			FollowerID:       r.FollowerID,
			FollowerUsername: r.FollowerUsername,
			FolloweeID:       r.FolloweeID,
			FolloweeUsername: r.FolloweeUsername,
			CreatedAt:        r.CreatedAt,
			Accepted:         r.Accepted,
		})
	}
	return out
}

func postCreatedResponse(p *models.Post) responses.PostCreatedResponse {
	return responses.PostCreatedResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
	}
}

func postListItemResponse(row services.PostRow) responses.PostListItemResponse {
	return responses.PostListItemResponse{
		ID:             row.ID,
		Title:          row.Title,
		Content:        row.Content,
		OwnerID:        row.OwnerID,
		CreatedAt:      row.CreatedAt,
		CommentsCount:  row.CommentsCount,
		ReactionsCount: row.ReactionsCount,
		UserReacted:    row.UserReaction,
	}
}

func postListResponses(rows []services.PostRow) []responses.PostListItemResponse {
	out := make([]responses.PostListItemResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, postListItemResponse(row))
	}
	return out
}

func postResponse(d *services.PostDetail) responses.PostResponse {
	byType := make(map[string]int64, len(d.ReactionsByType))
	for t, n := range d.ReactionsByType {
		byType[string(t)] = n
	}
	return responses.PostResponse{
		PostListItemResponse: postListItemResponse(d.PostRow),
		Owner:                userSummaryResponse(d.Owner),
		ReactionsByType:      byType,
	}
}

func commentCreatedResponse(c *models.Comment) responses.CommentCreatedResponse {
	return responses.CommentCreatedResponse{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		PostID:    c.PostID,
		OwnerID:   c.OwnerID,
	}
}

func commentResponse(v services.CommentView) responses.CommentResponse {
	return responses.CommentResponse{
		ID:        v.ID,
		Content:   v.Content,
		CreatedAt: v.CreatedAt,
		PostID:    v.PostID,
		Owner:     userSummaryResponse(v.Owner),
	}
}

func reactionCreatedResponse(r *models.Reaction) responses.ReactionCreatedResponse {
	return responses.ReactionCreatedResponse{
		Type:   string(r.Type),
		PostID: r.PostID,
		UserID: r.UserID,
	}
}

func reactionResponse(v services.ReactionView) responses.ReactionResponse {
	return responses.ReactionResponse{
		PostID: v.PostID,
		UserID: v.UserID,
		Type:   string(v.Type),
		Owner:  userSummaryResponse(v.Owner),
	}
}
