package responses

import "time"

type PostCreatedResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type PostListItemResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	OwnerID        uint      `json:"owner_id"`
	CreatedAt      time.Time `json:"created_at"`
	CommentsCount  int64     `json:"comments_count"`
	ReactionsCount int64     `json:"reactions_count"`
	UserReacted    *string   `json:"user_reacted"`
}

type PostResponse struct {
	PostListItemResponse
	Owner           UserSummaryResponse `json:"owner"`
	ReactionsByType map[string]int64    `json:"reactions_by_type"`
}

type CommentCreatedResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	PostID    uint      `json:"post_id"`
	OwnerID   uint      `json:"owner_id"`
}

type CommentResponse struct {
	ID        uint                `json:"id"`
	Content   string              `json:"content"`
	CreatedAt time.Time           `json:"created_at"`
	PostID    uint                `json:"post_id"`
	Owner     UserSummaryResponse `json:"owner"`
}

type ReactionCreatedResponse struct {
	Type   string `json:"type"`
	PostID uint   `json:"post_id"`
	UserID uint   `json:"user_id"`
}

type ReactionResponse struct {
	PostID uint                `json:"post_id"`
	UserID uint                `json:"user_id"`
	Type   string              `json:"type"`
	Owner  UserSummaryResponse `json:"owner"`
}
