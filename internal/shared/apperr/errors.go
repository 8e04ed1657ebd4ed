// Package apperr defines the application error taxonomy shared by every feature.
// Usecases return *Error values for business failures; transport maps Kind to HTTP status.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies an error for propagation and HTTP mapping.
type Kind int

const (
	// KindInternal is an unexpected store or file failure.
	KindInternal Kind = iota
	// KindValidation is a missing or malformed request field.
	KindValidation
	// KindUnauthorized is a credential mismatch.
	KindUnauthorized
	// KindNotFound is a lookup of a resource that does not exist.
	KindNotFound
	// KindConflict is a uniqueness violation.
	KindConflict
	// KindInfrastructure means the database could not be reached.
	KindInfrastructure
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInfrastructure:
		return "infrastructure"
	default:
		return "internal"
	}
}

// HTTPStatus returns the response status code for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInfrastructure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string
	// Fields lists every missing or invalid request field for KindValidation.
	Fields []string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind and message, so that sentinel
// values declared with New can be compared with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// New returns an error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap returns an error of the given kind carrying cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

// Validation returns a KindValidation error.
func Validation(msg string, fields ...string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

// MissingFields returns a KindValidation error naming every missing field.
func MissingFields(fields ...string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Missing required fields: " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

// Infrastructure returns a KindInfrastructure error wrapping cause.
func Infrastructure(msg string, cause error) *Error {
	return &Error{Kind: KindInfrastructure, Message: msg, Err: cause}
}

// KindOf classifies err. Errors that carry no *Error are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// As extracts the *Error from err, if any.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
