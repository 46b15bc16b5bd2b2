package services

import (
	"errors"

	"Socialnet/models"

	"gorm.io/gorm"
)

// ResolveTargetUser loads the user named username and checks that viewerID
// may see their content. A user is visible when public, when they are the
// viewer, or when the viewer holds an accepted follow edge to them.
func ResolveTargetUser(tx *gorm.DB, viewerID uint, username string) (*models.User, error) {
	target, err := FindUserByUsername(tx, username)
	if err != nil {
		return nil, err
	}
	if err := authorizeView(tx, viewerID, target); err != nil {
		return nil, err
	}
	return target, nil
}

// ResolvePost loads a post and applies the same rule to its owner.
func ResolvePost(tx *gorm.DB, viewerID, postID uint) (*models.Post, error) {
	var post models.Post
	if err := tx.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	owner, err := FindUserByID(tx, post.OwnerID)
	if err != nil {
		return nil, err
	}
	if err := authorizeView(tx, viewerID, owner); err != nil {
		return nil, err
	}
	return &post, nil
}

func authorizeView(tx *gorm.DB, viewerID uint, target *models.User) error {
	ok, err := canView(tx, viewerID, target)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotAllowed
	}
	return nil
}

func canView(tx *gorm.DB, viewerID uint, target *models.User) (bool, error) {
	if !target.IsPrivate || target.ID == viewerID {
		return true, nil
	}
	return IsFollowingAccepted(tx, viewerID, target.ID)
}
