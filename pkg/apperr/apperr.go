package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories the API distinguishes.
// Everything that is not one of the domain kinds is Internal and must not
// leak implementation detail past the handler boundary.
type Kind int

const (
	Internal Kind = iota
	InvalidCredentials
	InactiveAccount
	Unauthenticated
	Forbidden
	NotFound
	Validation
	Conflict
)

func (k Kind) String() string {
	switch k {
	case InvalidCredentials:
		return "invalid_credentials"
	case InactiveAccount:
		return "inactive_account"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case Validation:
		return "validation_failed"
	case Conflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error carries a kind, a caller-safe message and optional per-field details.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match two apperr values by kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and caller-safe message to an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithDetails builds a Validation-style error that enumerates every violated
// field rule, not just the first one.
func WithDetails(kind Kind, message string, details map[string]string) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

// KindOf extracts the kind from err; unknown errors are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// MessageOf returns the caller-safe message for err. Internal errors get a
// fixed message so database and driver detail never crosses the boundary.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Message
	}
	return "internal server error"
}

// DetailsOf returns the field details for err, or nil.
func DetailsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

// HTTPStatus maps a kind to its HTTP status code.
func HTTPStatus(k Kind) int {
	switch k {
	case InvalidCredentials, Unauthenticated:
		return http.StatusUnauthorized
	case InactiveAccount, Conflict:
		return http.StatusBadRequest
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Validation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
