package services

import "Socialnet/utils/apperror"

// Auth
var (
	ErrInvalidLogin = apperror.New(apperror.DomainAuth, apperror.KindUnauthenticated, "invalid_login", "Invalid login credentials.")
	ErrInvalidJWT   = apperror.New(apperror.DomainAuth, apperror.KindUnauthenticated, "invalid_jwt", "JWT is invalid or cannot be validated.")
)

// Users
var (
	ErrUserAlreadyExists      = apperror.New(apperror.DomainUser, apperror.KindConflict, "user_already_exists", "User already exists.")
	ErrUserEmailAlreadyExists = apperror.New(apperror.DomainUser, apperror.KindConflict, "user_email_already_exists", "A user with this email already exists.").WithField("email")
	ErrUsernameAlreadyExists  = apperror.New(apperror.DomainUser, apperror.KindConflict, "username_already_exists", "This username is already taken.").WithField("username")
	ErrUserNotFound           = apperror.New(apperror.DomainUser, apperror.KindNotFound, "user_not_found", "User not found.")
	ErrUserNotAllowed         = apperror.New(apperror.DomainUser, apperror.KindForbidden, "user_not_allowed_to_view_resource", "You are not allowed to view this resource.")
	ErrInvalidPassword        = apperror.New(apperror.DomainUser, apperror.KindForbidden, "invalid_password", "Current password is incorrect.").WithField("current_password")
	ErrPasswordUnchanged      = apperror.New(apperror.DomainUser, apperror.KindConflict, "password_unchanged", "New password must be different from the current password.").WithField("new_password")
)

// Follows
var (
	ErrFollowYourself        = apperror.New(apperror.DomainFollow, apperror.KindSelfReference, "follow_yourself", "You cannot follow yourself.")
	ErrFollowAlreadyExists   = apperror.New(apperror.DomainFollow, apperror.KindConflict, "follow_already_exists", "You already follow this user or a request is pending.")
	ErrFollowNotFound        = apperror.New(apperror.DomainFollow, apperror.KindNotFound, "follow_not_found", "Follow relationship not found.")
	ErrFollowNotAccepted     = apperror.New(apperror.DomainFollow, apperror.KindForbidden, "follow_not_accepted", "Follow request has not been accepted yet.")
	ErrFollowAlreadyAccepted = apperror.New(apperror.DomainFollow, apperror.KindConflict, "follow_already_accepted", "Follow request has already been accepted.")
)

// Posts
var (
	ErrPostNotFound       = apperror.New(apperror.DomainPost, apperror.KindNotFound, "post_not_found", "Post not found.")
	ErrPostUserNotAllowed = apperror.New(apperror.DomainPost, apperror.KindForbidden, "post_user_not_allowed", "You are not allowed to modify this post.")
)

// Comments
var (
	ErrCommentNotFound       = apperror.New(apperror.DomainComment, apperror.KindNotFound, "comment_not_found", "Comment not found.")
	ErrCommentUserNotAllowed = apperror.New(apperror.DomainComment, apperror.KindForbidden, "comment_user_not_allowed", "You are not allowed to modify this comment.")
)

// Reactions
var (
	ErrReactionAlreadyExists = apperror.New(apperror.DomainReaction, apperror.KindConflict, "reaction_already_exists", "You have already reacted to this post.")
	ErrReactionNotFound      = apperror.New(apperror.DomainReaction, apperror.KindNotFound, "reaction_not_found", "Reaction not found.")
)
