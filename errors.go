package jackalpin

import "github.com/jackalLabs/jackalpin-go/internal/api"

// Error represents a failed API call. Kind discriminates the failure
// class; StatusCode and Response are set when an HTTP response was
// involved, and Err wraps the cause of timeout and transport failures.
type Error = api.Error

// Kind discriminates the failure classes an API call can produce.
type Kind = api.Kind

// Failure kinds carried by [Error].
const (
	// KindAPI is a non-2xx response outside the specifically mapped codes.
	KindAPI = api.KindAPI
	// KindUnauthorized is a 401 response, or a call that required a key
	// when none was configured.
	KindUnauthorized = api.KindUnauthorized
	// KindNotFound is a 404 response.
	KindNotFound = api.KindNotFound
	// KindBadRequest is a 400 response.
	KindBadRequest = api.KindBadRequest
	// KindServer is any response in [500,600).
	KindServer = api.KindServer
	// KindTimeout is a client-side deadline expiry; no status code is involved.
	KindTimeout = api.KindTimeout
	// KindTransport is a connection-level failure other than a timeout.
	KindTransport = api.KindTransport
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrUnauthorized is returned when the API key is missing or rejected.
	ErrUnauthorized = api.ErrUnauthorized

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = api.ErrNotFound

	// ErrBadRequest is returned when the server rejects the request as malformed.
	ErrBadRequest = api.ErrBadRequest

	// ErrServer is returned for 5xx responses.
	ErrServer = api.ErrServer

	// ErrTimeout is returned when a call exceeds its deadline.
	ErrTimeout = api.ErrTimeout

	// ErrRequestFailed is returned for transport-level failures other than timeouts.
	ErrRequestFailed = api.ErrRequestFailed
)
