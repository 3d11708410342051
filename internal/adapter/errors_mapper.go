package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// deltaMarkerRejections are the backend error names sent with HTTP 400 when a
// delta-set "since" value is out of range.
var deltaMarkerRejections = []string{"ResultSetSizeExceeded", "ParameterValueOutOfRange"}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	detail := body
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	netErr := &NetworkError{Kind: KindPermanent, StatusCode: resp.StatusCode(), Body: body}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		netErr.Err = fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case http.StatusUnauthorized:
		netErr.Kind = KindAuthExpired
		netErr.Err = fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusForbidden:
		netErr.Err = fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusNotFound:
		netErr.Err = fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusConflict:
		netErr.Err = fmt.Errorf("%w: %s", ErrConflict, detail)
	case http.StatusRequestTimeout:
		netErr.Kind = KindTransient
		netErr.Err = fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	case http.StatusTooManyRequests:
		netErr.Kind = KindTransient
		netErr.Err = fmt.Errorf("%w: %s", ErrTooManyRequests, detail)
	case http.StatusInternalServerError:
		netErr.Kind = KindTransient
		netErr.Err = fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	case http.StatusBadGateway:
		netErr.Kind = KindTransient
		netErr.Err = fmt.Errorf("%w: %s", ErrBadGateway, detail)
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		netErr.Kind = KindTransient
		netErr.Err = fmt.Errorf("%w: %s", ErrServiceUnavailable, detail)
	default:
		if resp.StatusCode() >= http.StatusInternalServerError {
			netErr.Kind = KindTransient
		}
		netErr.Err = fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}

	return netErr
}

// mapDeltaError marks a rejected delta-set request so that callers can fall
// back to a full fetch.
func mapDeltaError(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if err == nil || resp.StatusCode() != http.StatusBadRequest {
		return err
	}

	body := string(resp.Body())
	for _, name := range deltaMarkerRejections {
		if strings.Contains(body, name) {
			netErr := err.(*NetworkError)
			netErr.Err = fmt.Errorf("%w: %w", ErrDeltaMarkerExpired, netErr.Err)
			return netErr
		}
	}
	return err
}

func mapTransportError(op string, err error) error {
	return &NetworkError{Kind: KindTransient, Err: fmt.Errorf("%s: %w: %w", op, ErrTransport, err)}
}

func mapDecodeError(op string, resp *resty.Response, err error) error {
	return &NetworkError{
		Kind:       KindPermanent,
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
		Err:        fmt.Errorf("%s: %w: %w", op, ErrDecodingResponse, err),
	}
}
