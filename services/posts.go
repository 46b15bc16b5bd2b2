package services

import (
	"context"
	"errors"
	"strings"

	"Socialnet/cache"
	"Socialnet/models"
	"Socialnet/utils/apperror"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostUpdate carries the editable post fields; nil leaves a field unchanged.
type PostUpdate struct {
	Title   *string
	Content *string
}

// PostDetail is a single post as seen by a viewer.
type PostDetail struct {
	PostRow
	Owner           UserSummary
	ReactionsByType map[models.ReactionType]int64
}

func CreatePost(tx *gorm.DB, ownerID uint, title, content string) (*models.Post, error) {
	post := models.Post{Title: title, Content: content, OwnerID: ownerID}
	post.Prepare()
	if err := post.Validate(); err != nil {
		return nil, err
	}
	if err := tx.Omit(clause.Associations).Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPost resolves the post for viewerID and annotates it with counts, the
// owner summary and the viewer's own reaction.
func GetPost(ctx context.Context, tx *gorm.DB, viewerID, postID uint) (*PostDetail, error) {
	countsKey := cache.ReactionCountsKey(ctx, postID)
	if _, err := ResolvePost(tx, viewerID, postID); err != nil {
		return nil, err
	}

	var rows []PostRow
	if err := selectPostRows(tx, viewerID).Where("posts.id = ?", postID).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrPostNotFound
	}

	owner, err := loadUserSummary(tx, viewerID, rows[0].OwnerID)
	if err != nil {
		return nil, err
	}
	byType, err := countReactionsByType(ctx, tx, postID, countsKey)
	if err != nil {
		return nil, err
	}
	return &PostDetail{PostRow: rows[0], Owner: owner, ReactionsByType: byType}, nil
}

func UpdatePost(tx *gorm.DB, userID, postID uint, changes PostUpdate) (*models.Post, error) {
	updates := map[string]interface{}{}
	if changes.Title != nil {
		title := strings.TrimSpace(*changes.Title)
		if err := models.ValidateTitle(title); err != nil {
			return nil, err
		}
		updates["title"] = title
	}
	if changes.Content != nil {
		content := strings.TrimSpace(*changes.Content)
		if err := models.ValidateContent(apperror.DomainPost, content); err != nil {
			return nil, err
		}
		updates["content"] = content
	}

	post, err := ownedPost(tx, userID, postID)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return post, nil
	}
	if err := tx.Model(&models.Post{}).Where("id = ?", post.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	if title, ok := updates["title"].(string); ok {
		post.Title = title
	}
	if content, ok := updates["content"].(string); ok {
		post.Content = content
	}
	return post, nil
}

func DeletePost(tx *gorm.DB, userID, postID uint) error {
	post, err := ownedPost(tx, userID, postID)
	if err != nil {
		return err
	}
	return tx.Delete(&models.Post{}, post.ID).Error
}

// AfterPostDeleted drops the cached reaction counts of a deleted post.
func AfterPostDeleted(ctx context.Context, postID uint) {
	cache.InvalidateReactionCounts(ctx, postID)
}

// ListPostsByOwner lists owner's posts newest first once the viewer has been
// cleared to see them.
func ListPostsByOwner(tx *gorm.DB, viewerID uint, ownerUsername string, page Page) ([]PostRow, error) {
	owner, err := ResolveTargetUser(tx, viewerID, ownerUsername)
	if err != nil {
		return nil, err
	}
	rows := []PostRow{}
	err = selectPostRows(tx, viewerID).
		Where("posts.owner_id = ?", owner.ID).
		Order("posts.created_at DESC").Order("posts.id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func ownedPost(tx *gorm.DB, userID, postID uint) (*models.Post, error) {
	var post models.Post
	if err := tx.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.OwnerID != userID {
		return nil, ErrPostUserNotAllowed
	}
	return &post, nil
}
