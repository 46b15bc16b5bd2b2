package controllers

// Request bodies. Optional fields are pointers so an absent key leaves the
// stored value alone.

type RegisterRequest struct {
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Bio       *string `json:"bio"`
	IsPrivate bool    `json:"is_private"`
}

// LoginRequest accepts JSON {email, password} or the OAuth2 password form,
// where the email travels as "username".
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type UserEditRequest struct {
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	IsPrivate *bool   `json:"is_private"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type PostCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PostEditRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

type ReactionRequest struct {
	Type string `json:"type"`
}
