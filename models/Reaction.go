package models

import (
	"strings"

	"Socialnet/utils/apperror"
)

type ReactionType string

const (
	ReactionLike  ReactionType = "like"
	ReactionWow   ReactionType = "wow"
	ReactionHeart ReactionType = "heart"
	ReactionFire  ReactionType = "fire"
	ReactionSad   ReactionType = "sad"
)

// ReactionTypes lists every reaction type in display order.
var ReactionTypes = []ReactionType{ReactionLike, ReactionWow, ReactionHeart, ReactionFire, ReactionSad}

func ParseReactionType(value string) (ReactionType, error) {
	candidate := ReactionType(strings.ToLower(strings.TrimSpace(value)))
	for _, t := range ReactionTypes {
		if t == candidate {
			return t, nil
		}
	}
	return "", apperror.Invalid(apperror.DomainReaction, "type", "Reaction type must be one of: like, wow, heart, fire, sad")
}

// Reaction is keyed by (user, post); a user holds at most one reaction per post.
type Reaction struct {
	UserID uint         `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID uint         `gorm:"primaryKey;autoIncrement:false;index" json:"post_id"`
	Type   ReactionType `gorm:"type:varchar(10);not null" json:"type"`
	User   User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Post   Post         `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}
