// internal/api/errors.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Kind classifies a failed remote operation. Every error that crosses the
// workflow boundary carries exactly one Kind.
type Kind int

const (
	// KindUnknown is the catch-all for failures that match no other kind.
	KindUnknown Kind = iota
	// KindConnectivity means the host was unreachable (refused, DNS failure).
	KindConnectivity
	// KindTimeout means a connect/read/write deadline was exceeded.
	KindTimeout
	// KindTransport is a generic I/O failure distinct from the two above.
	KindTransport
	// KindServerRejected is a non-2xx response with a parseable error body.
	KindServerRejected
	// KindSchema means the response body did not match the expected shape.
	KindSchema
	// KindDomainInvalid is a client-side precondition violated before any
	// network call was made.
	KindDomainInvalid
)

func (k Kind) String() string {
	switch k {
	case KindConnectivity:
		return "connectivity"
	case KindTimeout:
		return "timeout"
	case KindTransport:
		return "transport"
	case KindServerRejected:
		return "server_rejected"
	case KindSchema:
		return "schema"
	case KindDomainInvalid:
		return "domain_invalid"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by every remote operation. The
// Message method yields the short human-readable string the UI shows;
// the wrapped cause stays available for diagnostics via Unwrap.
type Error struct {
	Kind       Kind
	StatusCode int
	msg        string
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error { return e.cause }

// Message returns the user-facing description. Never includes stack traces
// or internal type names.
func (e *Error) Message() string { return e.msg }

// NewDomainError reports a precondition violation detected before any
// network round trip.
func NewDomainError(msg string) *Error {
	return &Error{Kind: KindDomainInvalid, msg: msg}
}

// newSchemaError reports a response body that could not be decoded.
func newSchemaError(cause error) *Error {
	return &Error{Kind: KindSchema, msg: "invalid server response format", cause: cause}
}

// NewSchemaError reports data that decoded as JSON but does not match the
// expected shape. The detail stays in the wrapped cause; the user-facing
// message is deliberately generic.
func NewSchemaError(detail string) *Error {
	return &Error{Kind: KindSchema, msg: "invalid server response format", cause: errors.New(detail)}
}

// errorBody is the error envelope the API uses for non-2xx responses.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// classifyRejection builds a ServerRejected error from a non-2xx response
// body, extracting the body's message field when one is present.
func classifyRejection(status int, body []byte) *Error {
	msg := "validation error"
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			msg = eb.Message
		} else if eb.Error != "" {
			msg = eb.Error
		}
	}
	return &Error{Kind: KindServerRejected, StatusCode: status, msg: msg}
}

// classifyTransport maps a failed http.Client round trip onto the taxonomy.
func classifyTransport(err error) *Error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, msg: "request timed out", cause: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, msg: "request timed out", cause: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{Kind: KindConnectivity, msg: "cannot reach server", cause: err}
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &Error{Kind: KindConnectivity, msg: "cannot reach server", cause: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &Error{Kind: KindTransport, msg: fmt.Sprintf("request failed: %v", urlErr.Err), cause: err}
	}
	return &Error{Kind: KindUnknown, msg: err.Error(), cause: err}
}

// AsError extracts the typed error from err, wrapping foreign errors as
// KindUnknown so callers always observe the taxonomy.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{Kind: KindUnknown, msg: err.Error(), cause: err}
}
