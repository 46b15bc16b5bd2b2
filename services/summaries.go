package services

import (
	"time"

	"Socialnet/models"

	"gorm.io/gorm"
)

// UserSummary is the compact user shape attached to list items: search
// results, follower lists, comment and reaction owners, post owners.
type UserSummary struct {
	ID             uint
	Username       string
	IsFollowing    bool
	FollowersCount int64
}

// PostRow is a post annotated for a specific viewer.
type PostRow struct {
	ID             uint
	Title          string
	Content        string
	OwnerID        uint
	CreatedAt      time.Time
	CommentsCount  int64
	ReactionsCount int64
	UserReaction   *string
}

const userSummaryColumns = "users.id, users.username, " +
	"(SELECT COUNT(*) FROM follows f WHERE f.followee_id = users.id AND f.accepted = ?) AS followers_count, " +
	"EXISTS (SELECT 1 FROM follows f WHERE f.follower_id = ? AND f.followee_id = users.id AND f.accepted = ?) AS is_following"

// selectUserSummaries starts a users query projected onto UserSummary as
// seen by viewerID.
func selectUserSummaries(tx *gorm.DB, viewerID uint) *gorm.DB {
	return tx.Model(&models.User{}).Select(userSummaryColumns, true, viewerID, true)
}

func loadUserSummary(tx *gorm.DB, viewerID, userID uint) (UserSummary, error) {
	var summaries []UserSummary
	if err := selectUserSummaries(tx, viewerID).Where("users.id = ?", userID).Limit(1).Scan(&summaries).Error; err != nil {
		return UserSummary{}, err
	}
	if len(summaries) == 0 {
		return UserSummary{}, ErrUserNotFound
	}
	return summaries[0], nil
}

// loadUserSummaries returns summaries keyed by user id.
func loadUserSummaries(tx *gorm.DB, viewerID uint, userIDs []uint) (map[uint]UserSummary, error) {
	out := make(map[uint]UserSummary, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	var summaries []UserSummary
	if err := selectUserSummaries(tx, viewerID).Where("users.id IN ?", userIDs).Scan(&summaries).Error; err != nil {
		return nil, err
	}
	for _, s := range summaries {
		out[s.ID] = s
	}
	return out, nil
}

const postRowColumns = "posts.id, posts.title, posts.content, posts.owner_id, posts.created_at, " +
	"(SELECT COUNT(*) FROM comments c WHERE c.post_id = posts.id) AS comments_count, " +
	"(SELECT COUNT(*) FROM reactions r WHERE r.post_id = posts.id) AS reactions_count, " +
	"(SELECT r.type FROM reactions r WHERE r.post_id = posts.id AND r.user_id = ?) AS user_reaction"

func selectPostRows(tx *gorm.DB, viewerID uint) *gorm.DB {
	return tx.Model(&models.Post{}).Select(postRowColumns, viewerID)
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
