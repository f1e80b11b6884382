// Package api provides HTTP client functionality for communicating with the
// JackalPin API. It handles bearer-token authentication, JSON and multipart
// request encoding, response decoding, and classification of failures into
// typed errors.
//
// # Client Creation
//
// Clients are created with [NewClient] from a [Config]. Only the base URL is
// required; the API key is optional because some endpoints accept
// unauthenticated calls. Whenever a key is configured it is sent as an
// Authorization: Bearer header on every request.
//
// # Dispatch
//
// Every call is described by a [Request] and executed with [Client.Do]:
// exactly one HTTP round trip, bounded by the configured timeout. There are
// no retries; classification is surfaced verbatim and the caller decides
// whether to call again. Requests that require a key fail before any network
// activity when none is configured.
//
// # Error Handling
//
// Failures are [*Error] values discriminated by [Kind], with sentinel errors
// for errors.Is checks:
//
//   - [ErrUnauthorized]: missing or rejected API key (401).
//   - [ErrNotFound]: resource does not exist (404).
//   - [ErrBadRequest]: request rejected as malformed (400).
//   - [ErrServer]: any 5xx response; the exact code is on the error.
//   - [ErrTimeout]: the call exceeded its deadline; no status code.
//   - [ErrRequestFailed]: transport failure other than a timeout.
//
// Use errors.Is to check for specific conditions:
//
//	if errors.Is(err, api.ErrNotFound) {
//	    // Handle missing resource
//	}
//
// The decoded response payload that produced a status error is retained on
// [Error.Response] for caller inspection.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously; the API key is the only mutable
// state and [Client.SetAPIKey] guards it.
package api
