package apperror

import "errors"

// Kind classifies a domain failure independently of the transport that reports it.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindForbidden
	KindInvalidInput
	KindSelfReference
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindInvalidInput:
		return "invalid_input"
	case KindSelfReference:
		return "self_reference"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Domain names the resource family an error belongs to.
type Domain string

const (
	DomainAuth     Domain = "auth"
	DomainUser     Domain = "user"
	DomainFollow   Domain = "follow"
	DomainPost     Domain = "post"
	DomainComment  Domain = "comment"
	DomainReaction Domain = "reaction"
	DomainRequest  Domain = "request"
)

// Error is the single error shape returned by the service layer.
// Code is stable and safe to show to clients; Field optionally names the
// offending input.
type Error struct {
	Domain  Domain
	Kind    Kind
	Code    string
	Message string
	Field   string
}

func New(domain Domain, kind Kind, code, message string) *Error {
	return &Error{Domain: domain, Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	return string(e.Domain) + ": " + e.Code
}

// Is matches on Code so that copies made by WithField/WithMessage still
// satisfy errors.Is against the package-level sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Domain == t.Domain && e.Code == t.Code
}

func (e *Error) WithField(field string) *Error {
	cp := *e
	cp.Field = field
	return &cp
}

func (e *Error) WithMessage(message string) *Error {
	cp := *e
	cp.Message = message
	return &cp
}

// Invalid builds an InvalidInput error for a single field.
func Invalid(domain Domain, field, message string) *Error {
	return &Error{
		Domain:  domain,
		Kind:    KindInvalidInput,
		Code:    "invalid_" + field,
		Message: message,
		Field:   field,
	}
}

// As extracts an *Error from err, if present.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf reports the Kind of err, or 0 when err is not a domain error.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return 0
}
