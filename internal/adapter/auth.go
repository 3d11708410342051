package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-offline-store/internal/utils"
)

// RefreshFunc obtains a fresh bearer token from an identity provider.
type RefreshFunc func(ctx context.Context) (string, error)

// defaultExpiryLeeway treats a token as expired slightly ahead of its exp
// claim so that it does not lapse while a request is in flight.
const defaultExpiryLeeway = 30 * time.Second

type tokenSource struct {
	mu    sync.RWMutex
	token string

	refresh RefreshFunc
	leeway  time.Duration
	now     func() time.Time
}

// NewTokenSource returns an [AuthProvider] that starts with token and calls
// refresh when a new one is needed. refresh may be nil, in which case Refresh
// fails with [ErrNoRefresher].
//
// JWT tokens are checked against their exp claim before use. Opaque tokens
// are passed through untouched until the backend rejects them.
func NewTokenSource(token string, refresh RefreshFunc) AuthProvider {
	return &tokenSource{
		token:   utils.StripBearer(token),
		refresh: refresh,
		leeway:  defaultExpiryLeeway,
		now:     time.Now,
	}
}

// Token implements [AuthProvider].
func (s *tokenSource) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return "", nil
	}

	expiry, err := utils.TokenExpiry(token)
	if err == nil && !s.now().Add(s.leeway).Before(expiry) {
		return "", fmt.Errorf("%w: expired at %s", ErrTokenExpired, expiry.Format(time.RFC3339))
	}
	return token, nil
}

// Refresh implements [AuthProvider]. Concurrent callers are serialised so the
// identity provider sees one refresh at a time.
func (s *tokenSource) Refresh(ctx context.Context) (string, error) {
	if s.refresh == nil {
		return "", ErrNoRefresher
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.refresh(ctx)
	if err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	token = strings.TrimSpace(utils.StripBearer(token))
	if token == "" {
		return "", fmt.Errorf("refresh token: %w", ErrUnauthorized)
	}

	s.token = token
	return token, nil
}
