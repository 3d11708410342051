package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrBadRequest is returned when the backend rejects a malformed request (HTTP 400).
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is returned when the backend rejects the credentials (HTTP 401).
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrForbidden is returned when the credentials lack access to the resource (HTTP 403).
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when the requested entity does not exist (HTTP 404).
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on HTTP 409.
	ErrConflict = errors.New("conflict")
	// ErrTooManyRequests is returned when the backend throttles the client (HTTP 429).
	ErrTooManyRequests = errors.New("too many requests")
	// ErrInternalServerError is returned on HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
	// ErrBadGateway is returned on HTTP 502.
	ErrBadGateway = errors.New("bad gateway")
	// ErrServiceUnavailable is returned on HTTP 503 and 504.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrTransport is returned when no HTTP response was received at all.
	ErrTransport = errors.New("transport failure")
	// ErrDecodingResponse is returned when a 2xx response body cannot be decoded.
	ErrDecodingResponse = errors.New("error decoding response")
	// ErrTokenExpired is returned by an [AuthProvider] whose token has expired.
	ErrTokenExpired = errors.New("token expired")
	// ErrNoRefresher is returned by Refresh when no refresh function was configured.
	ErrNoRefresher = errors.New("no token refresher configured")
	// ErrDeltaMarkerExpired is returned when the backend refuses a delta-set
	// request because the server marker is too old.
	ErrDeltaMarkerExpired = errors.New("delta marker expired")
	// ErrInvalidAddress is returned when the configured backend address cannot be used.
	ErrInvalidAddress = errors.New("invalid adapter http address")
)

// Kind classifies a network failure by what the caller should do about it.
type Kind int

const (
	// KindTransient failures may succeed when retried later.
	KindTransient Kind = iota
	// KindPermanent failures are rejections of the request itself.
	KindPermanent
	// KindAuthExpired failures succeed after the credentials are refreshed.
	KindAuthExpired
)

func (k Kind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindPermanent:
		return "permanent"
	case KindAuthExpired:
		return "auth-expired"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// NetworkError is the error type returned by [NetworkGateway] implementations.
type NetworkError struct {
	Kind Kind
	// StatusCode is zero when no response was received.
	StatusCode int
	Body       string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("network error (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("network error (%s): http %d: %v", e.Kind, e.StatusCode, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first [*NetworkError] in err's chain. Errors
// that did not come from the gateway are reported as not ok.
func KindOf(err error) (Kind, bool) {
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		return 0, false
	}
	return netErr.Kind, true
}

// IsTransient reports whether err is a transient network failure.
func IsTransient(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindTransient
}

// IsPermanent reports whether err is a permanent backend rejection.
func IsPermanent(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindPermanent
}

// IsAuthExpired reports whether err asks for a credentials refresh.
func IsAuthExpired(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindAuthExpired
}

// IsNotFound reports whether the backend answered HTTP 404.
func IsNotFound(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr) && netErr.StatusCode == http.StatusNotFound
}
