package services

import (
	"context"
	"errors"
	"strings"

	"Socialnet/cache"
	"Socialnet/database"
	"Socialnet/models"
	"Socialnet/security"
	"Socialnet/utils/apperror"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserUpdate carries the editable profile fields; nil leaves a field unchanged.
type UserUpdate struct {
	Username  *string
	Bio       *string
	IsPrivate *bool
}

// Profile is a user's public header with relationship counts. IsFollowing is
// nil when the viewer is the user.
type Profile struct {
	User           models.User
	PostsCount     int64
	FollowersCount int64
	FollowingCount int64
	IsFollowing    *bool
}

// CreateUser validates, hashes and stores a new account. user.Password holds
// the plaintext password on input and the hash on return.
func CreateUser(tx *gorm.DB, user *models.User) (*models.User, error) {
	user.Prepare()
	if err := user.Validate(""); err != nil {
		return nil, err
	}

	taken, err := exists(tx.Model(&models.User{}).Where("email = ?", user.Email))
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserEmailAlreadyExists
	}
	taken, err = exists(tx.Model(&models.User{}).Where("username = ?", user.Username))
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameAlreadyExists
	}

	if err := user.HashPassword(); err != nil {
		return nil, err
	}
	if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
		return nil, userConflict(err)
	}
	return user, nil
}

// userConflict maps a unique violation on users to the matching domain error.
func userConflict(err error) error {
	detail, ok := database.UniqueViolation(err)
	if !ok {
		return err
	}
	detail = strings.ToLower(detail)
	switch {
	case strings.Contains(detail, "email"):
		return ErrUserEmailAlreadyExists
	case strings.Contains(detail, "username"):
		return ErrUsernameAlreadyExists
	default:
		return ErrUserAlreadyExists
	}
}

func FindUserByID(tx *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func FindUserByUsername(tx *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := tx.Where("username = ?", models.NormalizeUsername(username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(tx *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := tx.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies the non-nil fields of changes to the user.
func UpdateUser(tx *gorm.DB, id uint, changes UserUpdate) (*models.User, error) {
	var username string
	if changes.Username != nil {
		username = models.NormalizeUsername(*changes.Username)
		if err := models.ValidateUsername(username); err != nil {
			return nil, err
		}
	}
	bio := models.NormalizeBio(changes.Bio)
	if err := models.ValidateBio(bio); err != nil {
		return nil, err
	}

	user, err := FindUserByID(tx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if changes.Username != nil && username != user.Username {
		taken, err := exists(tx.Model(&models.User{}).Where("username = ? AND id <> ?", username, id))
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrUsernameAlreadyExists
		}
		updates["username"] = username
	}
	if bio != nil {
		updates["bio"] = *bio
	}
	if changes.IsPrivate != nil {
		updates["is_private"] = *changes.IsPrivate
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := tx.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, userConflict(err)
	}
	return FindUserByID(tx, id)
}

// ChangePassword replaces the password hash after verifying current.
func ChangePassword(tx *gorm.DB, id uint, current, next string) error {
	if err := models.ValidatePassword(next); err != nil {
		if appErr, ok := apperror.As(err); ok {
			return appErr.WithField("new_password")
		}
		return err
	}
	user, err := FindUserByID(tx, id)
	if err != nil {
		return err
	}
	if err := security.VerifyPassword(user.Password, current); err != nil {
		return ErrInvalidPassword
	}
	if err := security.VerifyPassword(user.Password, next); err == nil {
		return ErrPasswordUnchanged
	}
	hashed, err := security.Hash(next)
	if err != nil {
		return err
	}
	return tx.Model(user).Update("password", string(hashed)).Error
}

// DeleteUser removes the account. Posts, comments, reactions and follow edges
// in both directions go with it through ON DELETE CASCADE.
func DeleteUser(tx *gorm.DB, id uint) error {
	result := tx.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AfterUserDeleted drops cached reaction counts once the deletion commits.
func AfterUserDeleted(ctx context.Context) {
	cache.InvalidateAllReactionCounts(ctx)
}

// Authenticate checks a username or email plus password pair. Every failure
// collapses into ErrInvalidLogin.
func Authenticate(tx *gorm.DB, login, password string) (*models.User, error) {
	var (
		user *models.User
		err  error
	)
	if strings.Contains(login, "@") {
		user, err = FindUserByEmail(tx, login)
	} else {
		user, err = FindUserByUsername(tx, login)
	}
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidLogin
		}
		return nil, err
	}
	if err := security.VerifyPassword(user.Password, password); err != nil {
		return nil, ErrInvalidLogin
	}
	return user, nil
}

// GetProfile returns target's header with counts as seen by viewerID.
func GetProfile(tx *gorm.DB, viewerID uint, target *models.User) (*Profile, error) {
	profile := &Profile{User: *target}
	if err := tx.Model(&models.Post{}).Where("owner_id = ?", target.ID).Count(&profile.PostsCount).Error; err != nil {
		return nil, err
	}
	var err error
	if profile.FollowersCount, err = CountAcceptedFollowers(tx, target.ID); err != nil {
		return nil, err
	}
	if profile.FollowingCount, err = CountAcceptedFollowing(tx, target.ID); err != nil {
		return nil, err
	}
	if viewerID != target.ID {
		following, err := IsFollowingAccepted(tx, viewerID, target.ID)
		if err != nil {
			return nil, err
		}
		profile.IsFollowing = &following
	}
	return profile, nil
}

func exists(query *gorm.DB) (bool, error) {
	var count int64
	if err := query.Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
