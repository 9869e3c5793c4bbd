package domain

import "errors"

// Error kinds. Every failure returned by the core wraps exactly one of these,
// so callers can switch on errors.Is regardless of the field hint attached.
var (
	ErrMissingToken          = errors.New("token is required")
	ErrInvalidOrExpiredToken = errors.New("login session expired, please login again")
	ErrAccessDenied          = errors.New("access denied")
	ErrNotFound              = errors.New("not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrEmailConflict         = errors.New("new email already exists")
	ErrPasswordMismatch      = errors.New("confirm password is incorrect")
	ErrInvalidCredentials    = errors.New("email or password is invalid")
	ErrValidation            = errors.New("validation failed")
	ErrDuplicateRequest      = errors.New("duplicate request")
)

// Error attaches a human-readable message and the offending input field to
// one of the error kinds above.
type Error struct {
	Kind    error
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError builds a field-scoped error of the given kind.
func NewError(kind error, field, message string) *Error {
	return &Error{Kind: kind, Field: field, Message: message}
}

// FieldOf returns the field hint carried by err, or "" when there is none.
func FieldOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Field
	}
	return ""
}

// KindName returns the machine-readable name of the kind wrapped by err.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrMissingToken):
		return "MissingToken"
	case errors.Is(err, ErrInvalidOrExpiredToken):
		return "InvalidOrExpiredToken"
	case errors.Is(err, ErrAccessDenied):
		return "AccessDenied"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrEmailAlreadyExists):
		return "EmailAlreadyExists"
	case errors.Is(err, ErrEmailConflict):
		return "EmailConflict"
	case errors.Is(err, ErrPasswordMismatch):
		return "PasswordMismatch"
	case errors.Is(err, ErrInvalidCredentials):
		return "InvalidCredentials"
	case errors.Is(err, ErrValidation):
		return "Validation"
	case errors.Is(err, ErrDuplicateRequest):
		return "DuplicateRequest"
	default:
		return "Internal"
	}
}
