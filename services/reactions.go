package services

import (
	"context"
	"errors"

	"Socialnet/cache"
	"Socialnet/database"
	"Socialnet/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionView is a reaction with its owner summarized for the viewer.
type ReactionView struct {
	PostID uint
	UserID uint
	Type   models.ReactionType
	Owner  UserSummary
}

func AddReaction(tx *gorm.DB, viewerID, postID uint, reactionType string) (*models.Reaction, error) {
	rt, err := models.ParseReactionType(reactionType)
	if err != nil {
		return nil, err
	}
	if _, err := ResolvePost(tx, viewerID, postID); err != nil {
		return nil, err
	}
	if _, err := findReaction(tx, viewerID, postID); err == nil {
		return nil, ErrReactionAlreadyExists
	} else if !errors.Is(err, ErrReactionNotFound) {
		return nil, err
	}

	reaction := models.Reaction{UserID: viewerID, PostID: postID, Type: rt}
	if err := tx.Omit(clause.Associations).Create(&reaction).Error; err != nil {
		if _, dup := database.UniqueViolation(err); dup {
			return nil, ErrReactionAlreadyExists
		}
		return nil, err
	}
	return &reaction, nil
}

// UpdateReaction changes the viewer's reaction type. Setting the same type is
// a no-op returning the stored row.
func UpdateReaction(tx *gorm.DB, viewerID, postID uint, reactionType string) (*models.Reaction, error) {
	rt, err := models.ParseReactionType(reactionType)
	if err != nil {
		return nil, err
	}
	if _, err := ResolvePost(tx, viewerID, postID); err != nil {
		return nil, err
	}
	reaction, err := findReaction(tx, viewerID, postID)
	if err != nil {
		return nil, err
	}
	if reaction.Type == rt {
		return reaction, nil
	}
	err = tx.Model(&models.Reaction{}).
		Where("user_id = ? AND post_id = ?", viewerID, postID).
		Update("type", rt).Error
	if err != nil {
		return nil, err
	}
	reaction.Type = rt
	return reaction, nil
}

func DeleteReaction(tx *gorm.DB, viewerID, postID uint) error {
	if _, err := ResolvePost(tx, viewerID, postID); err != nil {
		return err
	}
	result := tx.Where("user_id = ? AND post_id = ?", viewerID, postID).Delete(&models.Reaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReactionNotFound
	}
	return nil
}

// AfterReactionChanged drops the post's cached counts once a reaction write
// commits.
func AfterReactionChanged(ctx context.Context, postID uint) {
	cache.InvalidateReactionCounts(ctx, postID)
}

// ListReactions pages through a post's reactions ordered by user id.
func ListReactions(tx *gorm.DB, viewerID, postID uint, page Page) ([]ReactionView, error) {
	if _, err := ResolvePost(tx, viewerID, postID); err != nil {
		return nil, err
	}
	var reactions []models.Reaction
	err := tx.Where("post_id = ?", postID).
		Order("user_id ASC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&reactions).Error
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint, 0, len(reactions))
	for _, r := range reactions {
		userIDs = append(userIDs, r.UserID)
	}
	owners, err := loadUserSummaries(tx, viewerID, userIDs)
	if err != nil {
		return nil, err
	}

	views := make([]ReactionView, 0, len(reactions))
	for _, r := range reactions {
		views = append(views, ReactionView{
			PostID: r.PostID,
			UserID: r.UserID,
			Type:   r.Type,
			Owner:  owners[r.UserID],
		})
	}
	return views, nil
}

// CountReactionsByType returns a count for every reaction type, zero when
// absent. Results are served from redis when available.
func CountReactionsByType(ctx context.Context, tx *gorm.DB, postID uint) (map[models.ReactionType]int64, error) {
	return countReactionsByType(ctx, tx, postID, cache.ReactionCountsKey(ctx, postID))
}

// countReactionsByType reads through the cache entry cacheKey, which must
// have been resolved before tx read anything the counts depend on.
func countReactionsByType(ctx context.Context, tx *gorm.DB, postID uint, cacheKey string) (map[models.ReactionType]int64, error) {
	counts := make(map[models.ReactionType]int64, len(models.ReactionTypes))
	for _, t := range models.ReactionTypes {
		counts[t] = 0
	}

	if cached, ok := cache.GetReactionCounts(ctx, cacheKey); ok {
		for _, t := range models.ReactionTypes {
			counts[t] = cached[string(t)]
		}
		return counts, nil
	}

	var rows []struct {
		Type  string
		Count int64
	}
	err := tx.Model(&models.Reaction{}).
		Select("type, COUNT(*) AS count").
		Where("post_id = ?", postID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if _, known := counts[models.ReactionType(row.Type)]; known {
			counts[models.ReactionType(row.Type)] = row.Count
		}
	}

	toCache := make(map[string]int64, len(counts))
	for t, n := range counts {
		toCache[string(t)] = n
	}
	cache.SetReactionCounts(ctx, cacheKey, toCache)
	return counts, nil
}

func findReaction(tx *gorm.DB, userID, postID uint) (*models.Reaction, error) {
	var reaction models.Reaction
	err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReactionNotFound
		}
		return nil, err
	}
	return &reaction, nil
}
