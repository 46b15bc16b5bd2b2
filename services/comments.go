package services

import (
	"errors"
	"strings"
	"time"

	"Socialnet/models"
	"Socialnet/utils/apperror"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentView is a comment with its owner summarized for the viewer.
type CommentView struct {
	ID        uint
	Content   string
	PostID    uint
	CreatedAt time.Time
	Owner     UserSummary
}

func AddComment(tx *gorm.DB, viewerID, postID uint, content string) (*models.Comment, error) {
	comment := models.Comment{Content: content, PostID: postID, OwnerID: viewerID}
	comment.Prepare()
	if err := comment.Validate(); err != nil {
		return nil, err
	}
	if _, err := ResolvePost(tx, viewerID, postID); err != nil {
		return nil, err
	}
	if err := tx.Omit(clause.Associations).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func GetComment(tx *gorm.DB, viewerID, postID, commentID uint) (*CommentView, error) {
	if _, err := ResolvePost(tx, viewerID, postID); err != nil {
		return nil, err
	}
	comment, err := findComment(tx, postID, commentID)
	if err != nil {
		return nil, err
	}
	owner, err := loadUserSummary(tx, viewerID, comment.OwnerID)
	if err != nil {
		return nil, err
	}
	return commentView(comment, owner), nil
}

func UpdateComment(tx *gorm.DB, viewerID, postID, commentID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if err := models.ValidateContent(apperror.DomainComment, content); err != nil {
		return nil, err
	}
	if _, err := ResolvePost(tx, viewerID, postID); err != nil {
		return nil, err
	}
	comment, err := ownedComment(tx, viewerID, postID, commentID)
	if err != nil {
		return nil, err
	}
	comment.Content = content
	if err := tx.Model(&models.Comment{}).Where("id = ?", comment.ID).Update("content", comment.Content).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func DeleteComment(tx *gorm.DB, viewerID, postID, commentID uint) error {
	if _, err := ResolvePost(tx, viewerID, postID); err != nil {
		return err
	}
	comment, err := ownedComment(tx, viewerID, postID, commentID)
	if err != nil {
		return err
	}
	return tx.Delete(&models.Comment{}, comment.ID).Error
}

// ListComments pages through a post's comments newest first.
func ListComments(tx *gorm.DB, viewerID, postID uint, page Page) ([]CommentView, error) {
	if _, err := ResolvePost(tx, viewerID, postID); err != nil {
		return nil, err
	}
	var comments []models.Comment
	err := tx.Where("post_id = ?", postID).
		Order("created_at DESC").Order("id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		ownerIDs = append(ownerIDs, c.OwnerID)
	}
	owners, err := loadUserSummaries(tx, viewerID, uniqueIDs(ownerIDs))
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, *commentView(&comments[i], owners[comments[i].OwnerID]))
	}
	return views, nil
}

func commentView(c *models.Comment, owner UserSummary) *CommentView {
	return &CommentView{
		ID:        c.ID,
		Content:   c.Content,
		PostID:    c.PostID,
		CreatedAt: c.CreatedAt,
		Owner:     owner,
	}
}

// findComment addresses a comment through its post; a comment on another
// post is reported as missing.
func findComment(tx *gorm.DB, postID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	err := tx.Where("id = ? AND post_id = ?", commentID, postID).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func ownedComment(tx *gorm.DB, userID, postID, commentID uint) (*models.Comment, error) {
	comment, err := findComment(tx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.OwnerID != userID {
		return nil, ErrCommentUserNotAllowed
	}
	return comment, nil
}
