package services

import (
	"errors"
	"time"

	"Socialnet/database"
	"Socialnet/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RequestDirection selects which side of pending edges ListRequests returns.
type RequestDirection string

const (
	Incoming RequestDirection = "incoming"
	Outgoing RequestDirection = "outgoing"
)

// FollowRequest is a pending edge with both parties' usernames.
type FollowRequest struct {
	FollowerID       uint
	FollowerUsername string
	FolloweeID       uint
	FolloweeUsername string
	Accepted         bool
	CreatedAt        time.Time
}

// Follow creates an edge follower -> followee. Public followees accept
// immediately; private ones leave the edge pending.
func Follow(tx *gorm.DB, followerID, followeeID uint) (*models.Follow, error) {
	if followerID == followeeID {
		return nil, ErrFollowYourself
	}
	followee, err := FindUserByID(tx, followeeID)
	if err != nil {
		return nil, err
	}
	if _, err := findFollow(tx, followerID, followeeID); err == nil {
		return nil, ErrFollowAlreadyExists
	} else if !errors.Is(err, ErrFollowNotFound) {
		return nil, err
	}

	follow := models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		Accepted:   !followee.IsPrivate,
	}
	if err := tx.Omit(clause.Associations).Create(&follow).Error; err != nil {
		if _, dup := database.UniqueViolation(err); dup {
			return nil, ErrFollowAlreadyExists
		}
		return nil, err
	}
	return &follow, nil
}

// Unfollow removes an accepted edge. Pending requests are withdrawn with
// CancelRequest instead.
func Unfollow(tx *gorm.DB, followerID, followeeID uint) error {
	follow, err := getFollow(tx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !follow.Accepted {
		return ErrFollowNotAccepted
	}
	return deleteFollow(tx, follow)
}

// RemoveFollower drops followerID from targetID's followers.
func RemoveFollower(tx *gorm.DB, targetID, followerID uint) error {
	return Unfollow(tx, followerID, targetID)
}

func AcceptRequest(tx *gorm.DB, followerID, followeeID uint) error {
	follow, err := getFollow(tx, followerID, followeeID)
	if err != nil {
		return err
	}
	if follow.Accepted {
		return ErrFollowAlreadyAccepted
	}
	return tx.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Update("accepted", true).Error
}

// RejectRequest is called by the followee on an incoming request.
func RejectRequest(tx *gorm.DB, followeeID, followerID uint) error {
	return removePendingRequest(tx, followerID, followeeID)
}

// CancelRequest is called by the follower on an outgoing request.
func CancelRequest(tx *gorm.DB, followerID, followeeID uint) error {
	return removePendingRequest(tx, followerID, followeeID)
}

func removePendingRequest(tx *gorm.DB, followerID, followeeID uint) error {
	follow, err := getFollow(tx, followerID, followeeID)
	if err != nil {
		return err
	}
	if follow.Accepted {
		return ErrFollowAlreadyAccepted
	}
	return deleteFollow(tx, follow)
}

// ListRequests returns userID's pending edges newest first.
func ListRequests(tx *gorm.DB, userID uint, direction RequestDirection) ([]FollowRequest, error) {
	query := tx.Table("follows").
		Select("follows.follower_id, follower.username AS follower_username, " +
			"follows.followee_id, followee.username AS followee_username, " +
			"follows.accepted, follows.created_at").
		Joins("JOIN users follower ON follower.id = follows.follower_id").
		Joins("JOIN users followee ON followee.id = follows.followee_id").
		Where("follows.accepted = ?", false)

	switch direction {
	case Outgoing:
		query = query.Where("follows.follower_id = ?", userID).
			Order("follows.created_at DESC").Order("follows.followee_id DESC")
	default:
		query = query.Where("follows.followee_id = ?", userID).
			Order("follows.created_at DESC").Order("follows.follower_id DESC")
	}

	requests := []FollowRequest{}
	if err := query.Scan(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// IsFollowingAccepted reports whether a holds an accepted edge to b.
func IsFollowingAccepted(tx *gorm.DB, followerID, followeeID uint) (bool, error) {
	return exists(tx.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ? AND accepted = ?", followerID, followeeID, true))
}

func CountAcceptedFollowers(tx *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := tx.Model(&models.Follow{}).
		Where("followee_id = ? AND accepted = ?", userID, true).
		Count(&count).Error
	return count, err
}

func CountAcceptedFollowing(tx *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := tx.Model(&models.Follow{}).
		Where("follower_id = ? AND accepted = ?", userID, true).
		Count(&count).Error
	return count, err
}

// getFollow addresses an existing edge; equal ids are a self-reference.
func getFollow(tx *gorm.DB, followerID, followeeID uint) (*models.Follow, error) {
	if followerID == followeeID {
		return nil, ErrFollowYourself
	}
	return findFollow(tx, followerID, followeeID)
}

func findFollow(tx *gorm.DB, followerID, followeeID uint) (*models.Follow, error) {
	var follow models.Follow
	err := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFollowNotFound
		}
		return nil, err
	}
	return &follow, nil
}

func deleteFollow(tx *gorm.DB, follow *models.Follow) error {
	return tx.Where("follower_id = ? AND followee_id = ?", follow.FollowerID, follow.FolloweeID).
		Delete(&models.Follow{}).Error
}
