package services

import "Socialnet/utils/apperror"

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// Page is a validated limit/offset window.
type Page struct {
	Limit  int
	Offset int
}

func DefaultPage() Page {
	return Page{Limit: DefaultLimit}
}

// NewPage rejects a limit outside [1, MaxLimit] or a negative offset.
func NewPage(limit, offset int) (Page, error) {
	if limit < 1 || limit > MaxLimit {
		return Page{}, apperror.Invalid(apperror.DomainRequest, "limit", "limit must be between 1 and 50")
	}
	if offset < 0 {
		return Page{}, apperror.Invalid(apperror.DomainRequest, "offset", "offset must be greater than or equal to 0")
	}
	return Page{Limit: limit, Offset: offset}, nil
}
