package models

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"Socialnet/security"
	"Socialnet/utils/apperror"

	"github.com/badoux/checkmail"
)

const (
	UsernameMinLength = 4
	UsernameMaxLength = 20
	BioMaxLength      = 200
	PasswordMinLength = 6
)

type User struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Email     string    `gorm:"size:100;not null;uniqueIndex:idx_users_email" json:"email"`
	Username  string    `gorm:"size:20;not null;uniqueIndex:idx_users_username" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Bio       *string   `gorm:"size:200" json:"bio"`
	IsPrivate bool      `gorm:"not null;default:false" json:"is_private"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) HashPassword() error {
	hashedPassword, err := security.Hash(u.Password)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// Prepare normalizes user input before validation. Usernames and emails are
// stored lower-cased so lookups and uniqueness are case-insensitive.
func (u *User) Prepare() {
	u.Username = NormalizeUsername(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Bio = NormalizeBio(u.Bio)
}

// Validate checks a prepared user. action "update" only checks the profile
// fields that can be edited; everything else is a registration.
func (u *User) Validate(action string) error {
	if strings.ToLower(action) != "update" {
		if u.Email == "" {
			return apperror.Invalid(apperror.DomainUser, "email", "Email is required")
		}
		if err := checkmail.ValidateFormat(u.Email); err != nil {
			return apperror.Invalid(apperror.DomainUser, "email", "Invalid email")
		}
		if err := ValidatePassword(u.Password); err != nil {
			return err
		}
	}
	if err := ValidateUsername(u.Username); err != nil {
		return err
	}
	return ValidateBio(u.Bio)
}

func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func NormalizeBio(bio *string) *string {
	if bio == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*bio)
	return &trimmed
}

func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < UsernameMinLength || n > UsernameMaxLength || strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return apperror.Invalid(apperror.DomainUser, "username", "Username must be 4-20 characters and contain no spaces")
	}
	return nil
}

func ValidateBio(bio *string) error {
	if bio != nil && utf8.RuneCountInString(*bio) > BioMaxLength {
		return apperror.Invalid(apperror.DomainUser, "bio", "Bio must be at most 200 characters long")
	}
	return nil
}

// ValidatePassword enforces the password policy: at least six characters with
// one uppercase letter, one digit and one symbol.
func ValidatePassword(password string) error {
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
		default:
			hasSymbol = true
		}
	}
	if utf8.RuneCountInString(password) < PasswordMinLength || !hasUpper || !hasDigit || !hasSymbol {
		return apperror.New(apperror.DomainUser, apperror.KindInvalidInput, "weak_password",
			"Password must be at least 6 characters long and contain one uppercase letter, one number, and one special character").WithField("password")
	}
	return nil
}
