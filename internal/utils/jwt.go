package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by [TokenExpiry] when the token carries no exp claim.
var ErrNoExpiry = errors.New("token has no expiration claim")

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// The client cannot verify tokens issued by the backend; it only uses the
// expiry to refresh ahead of time.
//
// Example usage:
//
//	exp, err := utils.TokenExpiry(rawToken)
//	if err == nil && time.Until(exp) < time.Minute {
//	    // refresh
//	}
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(StripBearer(tokenString), jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// StripBearer removes an optional "Bearer " scheme prefix from an
// Authorization header value.
func StripBearer(authorizationHeader string) string {
	value := strings.TrimSpace(authorizationHeader)
	if scheme, token, ok := strings.Cut(value, " "); ok && strings.EqualFold(scheme, "bearer") {
		return strings.TrimSpace(token)
	}
	return value
}
