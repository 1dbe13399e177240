// -----------------------------------------------------------------------------
// Classified Application Errors
// -----------------------------------------------------------------------------
// This file defines the error kinds the application propagates through return
// values instead of panics: BadRequest, NotFound, NotAuthorized and Internal.
//
// Each kind carries an HTTP-equivalent status code and a generic, non-leaking
// message for the client. The underlying cause is kept for logging only and
// is never serialized into a response.
//
// Propagation policy:
//   - Validation/parse failures produce BadRequest before any SQL runs.
//   - Pre-flight existence checks produce NotFound.
//   - NotAuthorized is produced only by the HTTP boundary (middleware).
//   - Anything unclassified that escapes a statement execution is wrapped
//     into Internal at the repository boundary (see From).
// -----------------------------------------------------------------------------

package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error into an HTTP-equivalent category.
type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindNotAuthorized
	KindInternal
)

// Default user-facing messages per kind. Intentionally generic: internal
// detail is logged, not returned to the caller.
const (
	msgBadRequest = "The request you submitted appears to be invalid or improperly formatted. " +
		"This could be due to missing or incorrect parameters, incompatible data formats, " +
		"or other issues with the request itself."
	msgNotFound = "The resource you are looking for may have been moved, deleted, " +
		"or never existed in the first place."
	msgNotAuthorized = "You don't have permission to access this resource."
	msgInternal      = "We apologize for the inconvenience, but it seems that our server " +
		"encountered an unexpected issue while processing your request."
)

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string // generic message returned to the client
	Err     error  // underlying cause, logged but never returned
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%d]: %v", e.kindLabel(), e.Status(), e.Err)
	}
	return fmt.Sprintf("%s [%d]: %s", e.kindLabel(), e.Status(), e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindNotAuthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (e *Error) kindLabel() string {
	switch e.Kind {
	case KindBadRequest:
		return "Bad Request"
	case KindNotFound:
		return "Not Found"
	case KindNotAuthorized:
		return "Not Authorized"
	default:
		return "Internal Server Error"
	}
}

// BadRequest returns a BadRequest-kind error. An empty message falls back to
// the generic text.
func BadRequest(message string) *Error {
	if message == "" {
		message = msgBadRequest
	}
	return &Error{Kind: KindBadRequest, Message: message}
}

// BadRequestf formats a BadRequest message naming the offending input.
func BadRequestf(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a NotFound-kind error.
func NotFound(message string) *Error {
	if message == "" {
		message = msgNotFound
	}
	return &Error{Kind: KindNotFound, Message: message}
}

// NotFoundf formats a NotFound message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NotAuthorized returns a NotAuthorized-kind error. Reserved for the HTTP
// boundary; core layers never produce it.
func NotAuthorized(message string) *Error {
	if message == "" {
		message = msgNotAuthorized
	}
	return &Error{Kind: KindNotAuthorized, Message: message}
}

// Internal wraps an unclassified failure. The cause is kept for logging, the
// client only ever sees the generic message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: msgInternal, Err: err}
}

// From re-classifies err as Internal unless it already is a classified
// *Error, in which case the more specific kind is preserved. nil stays nil.
func From(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// IsKind reports whether err is a classified error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
