package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-offline-store/internal/adapter"
)

// withAuthRetry runs call and, when the backend reports expired credentials,
// refreshes them and runs call once more. A refresh that fails, or a second
// auth-expired answer, is reported as a transient failure so that the caller
// leaves its work for a later attempt.
func withAuthRetry[T any](ctx context.Context, auth adapter.AuthProvider, call func() (T, error)) (T, error) {
	result, err := call()
	if err == nil || !adapter.IsAuthExpired(err) {
		return result, err
	}

	if auth == nil {
		return result, asTransient(err)
	}
	if _, refreshErr := auth.Refresh(ctx); refreshErr != nil {
		return result, asTransient(fmt.Errorf("%w (refresh: %w)", err, refreshErr))
	}

	result, err = call()
	if err != nil && adapter.IsAuthExpired(err) {
		return result, asTransient(err)
	}
	return result, err
}

func asTransient(err error) error {
	netErr := &adapter.NetworkError{Kind: adapter.KindTransient, Err: err}

	var cause *adapter.NetworkError
	if errors.As(err, &cause) {
		netErr.StatusCode = cause.StatusCode
		netErr.Body = cause.Body
	}
	return netErr
}
