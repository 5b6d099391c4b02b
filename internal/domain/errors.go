package domain

import (
	"fmt"
	"net/http"
)

// ErrorKind is the closed set of failure classifications the API can
// surface. Every failure that reaches the response boundary carries
// exactly one kind; the kind alone determines the HTTP status.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindBadRequest
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindMethodNotAllowed
)

// Status maps a kind to its HTTP status code.
func (k ErrorKind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "BadRequest"
	case KindUnauthenticated:
		return "Unauthenticated"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	case KindMethodNotAllowed:
		return "MethodNotAllowed"
	default:
		return "Internal"
	}
}

// FieldError is one structured sub-error attached to a request failure,
// serialized verbatim into the error envelope's "errors" array.
type FieldError struct {
	Message string `json:"message"`
	Param   string `json:"param"`
}

// Error is the single error type crossing the service/handler boundary.
// It replaces ad hoc status-carrying errors with a tagged variant: each
// kind carries exactly the fields its normalizer rule needs.
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  []FieldError // structured sub-errors, empty for most kinds
	cause   error        // internal detail, logged but never serialized
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return e.Kind.String()
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// Status returns the HTTP status implied by the error's kind.
func (e *Error) Status() int { return e.Kind.Status() }

// NotFound reports a referenced post/comment/user being absent.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// BadRequest reports a missing or malformed request field.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// BadRequestFields reports an input-validation failure with per-field detail.
func BadRequestFields(message string, fields []FieldError) *Error {
	return &Error{Kind: KindBadRequest, Message: message, Fields: fields}
}

// Unauthenticated reports a missing or invalid credential.
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// Forbidden reports an authenticated caller without ownership rights.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Conflict reports a duplicate create.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// MethodNotAllowed reports a verb not supported on a matched route.
func MethodNotAllowed(method, path string) *Error {
	return &Error{
		Kind:    KindMethodNotAllowed,
		Message: fmt.Sprintf("Method %s Not Allowed for %s", method, path),
	}
}

// Internal wraps an unexpected failure. The cause is kept for server-side
// logging; clients only ever see the generic message and kind name.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal Server Error", cause: err}
}
