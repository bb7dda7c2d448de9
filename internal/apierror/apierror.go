// Package apierror defines the single error taxonomy shared by every gateway,
// session and cart operation. Callers branch on Kind; the original transport
// error is preserved as the cause for logging only.
package apierror

import (
	"errors"
	"fmt"
)

// Kind categorises an operation failure.
type Kind string

const (
	// KindUnauthenticated means no valid token was present locally when one
	// was required. No network call has been made.
	KindUnauthenticated Kind = "unauthenticated"
	// KindUnauthorized means the backend rejected the presented token
	// (HTTP 401/403). The credential store has been cleared.
	KindUnauthorized Kind = "unauthorized"
	// KindValidation means the input failed local checks before any
	// network call.
	KindValidation Kind = "validation"
	// KindRemote means the backend answered with a non-success payload or
	// a non-2xx status carrying a message.
	KindRemote Kind = "remote"
	// KindTransport means the request never produced a response.
	KindTransport Kind = "transport"
)

// Error is the uniform error shape surfaced by the SDK.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is lets errors.Is match two taxonomy errors by kind alone, so callers can
// compare against e.g. apierror.Unauthenticated("") sentinels in tests.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Unauthenticated builds a fail-fast "no token" error.
func Unauthenticated(message string) *Error {
	if message == "" {
		message = "not logged in"
	}
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// Unauthorized builds a "token rejected by backend" error.
func Unauthorized(message string, cause error) *Error {
	if message == "" {
		message = "session rejected, please log in again"
	}
	return &Error{Kind: KindUnauthorized, Message: message, Cause: cause}
}

// Validation builds a local input validation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Validationf builds a local input validation error with a formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Remote builds an error from a backend-reported failure.
func Remote(message string, cause error) *Error {
	if message == "" {
		message = "request failed"
	}
	return &Error{Kind: KindRemote, Message: message, Cause: cause}
}

// Transport builds an error for a request that got no response. The message
// deliberately suggests retrying.
func Transport(cause error) *Error {
	return &Error{Kind: KindTransport, Message: "network error, please retry", Cause: cause}
}

// KindOf extracts the taxonomy kind from err, or "" when err does not carry
// one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool { return KindOf(err) == k }
