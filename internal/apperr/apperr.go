// internal/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/javajoker/retail-backend/internal/i18n"
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindNotAllowed   Kind = "method_not_allowed"
	KindConflict     Kind = "conflict"
	KindTooLarge     Kind = "too_large"
	KindRateLimited  Kind = "rate_limited"
	KindInternal     Kind = "internal"
)

// Error is the only error type handlers render. Key is an i18n message key,
// Err carries the underlying cause for server-side logs and is never sent to
// clients.
type Error struct {
	Kind    Kind
	Key     string
	Args    []interface{}
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Key)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message renders the client-facing message in lang.
func (e *Error) Message(lang string) string {
	return i18n.T(lang, e.Key, e.Args...)
}

func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindNotAllowed:
		return http.StatusMethodNotAllowed
	case KindConflict:
		return http.StatusConflict
	case KindTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func (e *Error) Code() string {
	switch e.Kind {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindForbidden:
		return "FORBIDDEN"
	case KindNotFound:
		return "NOT_FOUND"
	case KindNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case KindConflict:
		return "CONFLICT"
	case KindTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case KindRateLimited:
		return "RATE_LIMITED"
	default:
		return "INTERNAL_ERROR"
	}
}

func New(kind Kind, key string, args ...interface{}) *Error {
	return &Error{Kind: kind, Key: key, Args: args}
}

func Validation(key string, args ...interface{}) *Error {
	return New(KindValidation, key, args...)
}

func Unauthorized(key string, args ...interface{}) *Error {
	return New(KindUnauthorized, key, args...)
}

func Forbidden(key string, args ...interface{}) *Error {
	return New(KindForbidden, key, args...)
}

func NotFound(key string, args ...interface{}) *Error {
	return New(KindNotFound, key, args...)
}

func Conflict(key string, args ...interface{}) *Error {
	return New(KindConflict, key, args...)
}

func TooLarge(key string, args ...interface{}) *Error {
	return New(KindTooLarge, key, args...)
}

// Internal wraps an unexpected failure. key describes the operation that
// failed, e.g. i18n.KeyProductCreateFailed.
func Internal(key string, err error) *Error {
	return &Error{Kind: KindInternal, Key: key, Err: err}
}

// From returns err as an *Error, wrapping anything else as internal.
func From(err error, key string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(key, err)
}

// FromDB classifies a store error. notFoundKey is used for missing rows and
// failKey for everything unexpected; args are applied to both.
func FromDB(err error, notFoundKey, failKey string, args ...interface{}) *Error {
	var appErr *Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: KindNotFound, Key: notFoundKey, Args: args, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &Error{Kind: KindConflict, Key: i18n.KeyConflictReference, Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Kind: KindConflict, Key: i18n.KeyConflictDuplicate, Err: err}
	default:
		return &Error{Kind: KindInternal, Key: failKey, Args: args, Err: err}
	}
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
