package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks. Their texts double as the
// default message for the matching error kind.
var (
	// ErrUnauthorized is returned when the API key is missing or rejected.
	ErrUnauthorized = errors.New("invalid or missing API key")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrBadRequest is returned when the server rejects the request as malformed.
	ErrBadRequest = errors.New("bad request")

	// ErrServer is returned for 5xx responses.
	ErrServer = errors.New("server error")

	// ErrTimeout is returned when a call exceeds its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrRequestFailed is returned for transport-level failures other than timeouts.
	ErrRequestFailed = errors.New("request failed")
)

// Kind discriminates the failure classes an API call can produce.
type Kind string

const (
	// KindAPI is a non-2xx response outside the specifically mapped codes.
	KindAPI Kind = "api"
	// KindUnauthorized is a 401 response, or a call that required a key
	// when none was configured.
	KindUnauthorized Kind = "unauthorized"
	// KindNotFound is a 404 response.
	KindNotFound Kind = "not_found"
	// KindBadRequest is a 400 response.
	KindBadRequest Kind = "bad_request"
	// KindServer is any response in [500,600).
	KindServer Kind = "server"
	// KindTimeout is a client-side deadline expiry; no status code is involved.
	KindTimeout Kind = "timeout"
	// KindTransport is a connection-level failure other than a timeout.
	KindTransport Kind = "transport"
)

// defaultMessage returns the message used when an Error carries none.
func (k Kind) defaultMessage() string {
	switch k {
	case KindUnauthorized:
		return ErrUnauthorized.Error()
	case KindNotFound:
		return ErrNotFound.Error()
	case KindBadRequest:
		return ErrBadRequest.Error()
	case KindServer:
		return ErrServer.Error()
	case KindTimeout:
		return ErrTimeout.Error()
	default:
		return ErrRequestFailed.Error()
	}
}

// Error represents a failed JackalPin API call.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int   // 0 when no HTTP response was involved
	Response   any   // decoded response payload, when one was received
	Err        error // underlying cause for timeout/transport failures
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.defaultMessage()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, msg)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindUnauthorized:
		return target == ErrUnauthorized
	case KindNotFound:
		return target == ErrNotFound
	case KindBadRequest:
		return target == ErrBadRequest
	case KindServer:
		return target == ErrServer
	case KindTimeout:
		return target == ErrTimeout
	case KindTransport:
		return target == ErrRequestFailed
	}
	return false
}

// kindForStatus maps a non-2xx HTTP status code to its error kind.
func kindForStatus(status int) Kind {
	switch {
	case status == 401:
		return KindUnauthorized
	case status == 404:
		return KindNotFound
	case status == 400:
		return KindBadRequest
	case status >= 500 && status < 600:
		return KindServer
	default:
		return KindAPI
	}
}

// newStatusError builds the classified error for a non-2xx response.
func newStatusError(status int, message string, payload any) *Error {
	return &Error{
		Kind:       kindForStatus(status),
		Message:    message,
		StatusCode: status,
		Response:   payload,
	}
}
