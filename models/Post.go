package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"Socialnet/utils/apperror"
)

const (
	TitleMinLength = 4
	TitleMaxLength = 40
)

type Post struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Title     string    `gorm:"size:40;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	Owner     User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (p *Post) Prepare() {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
}

func (p *Post) Validate() error {
	if err := ValidateTitle(p.Title); err != nil {
		return err
	}
	return ValidateContent(apperror.DomainPost, p.Content)
}

func ValidateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < TitleMinLength || n > TitleMaxLength {
		return apperror.Invalid(apperror.DomainPost, "title", "Post title must be between 4 and 40 characters")
	}
	return nil
}

func ValidateContent(domain apperror.Domain, content string) error {
	if content == "" {
		return apperror.Invalid(domain, "content", "Content is required")
	}
	return nil
}
