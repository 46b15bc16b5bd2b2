package responses

import "time"

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserSummaryResponse is the user shape used inside lists.
type UserSummaryResponse struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	IsFollowing    bool   `json:"is_following"`
	FollowersCount int64  `json:"followers_count"`
}

// UserSettingsResponse is returned on registration and to the account owner.
type UserSettingsResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       *string   `json:"bio"`
	IsPrivate bool      `json:"is_private"`
	CreatedAt time.Time `json:"created_at"`
}

type UserEditResponse struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Bio       *string `json:"bio"`
	IsPrivate bool    `json:"is_private"`
}

// UserProfileResponse is the public profile header. IsFollowing is null when
// viewers look at themselves.
type UserProfileResponse struct {
	ID             uint    `json:"id"`
	Username       string  `json:"username"`
	Bio            *string `json:"bio"`
	IsPrivate      bool    `json:"is_private"`
	PostsCount     int64   `json:"posts_count"`
	FollowersCount int64   `json:"followers_count"`
	FollowingCount int64   `json:"following_count"`
	IsFollowing    *bool   `json:"is_following"`
}

type FollowRequestResponse struct {
	FollowerID       uint      `json:"follower_id"`
	FollowerUsername string    `json:"follower_username"`
	FolloweeID       uint      `json:"followee_id"`
	FolloweeUsername string    `json:"followee_username"`
	CreatedAt        time.Time `json:"created_at"`
	Accepted         bool      `json:"accepted"`
}
