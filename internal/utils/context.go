// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, query
// fingerprints, temporary ids, HTTP client initialization, JWT expiry
// inspection and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SyncIDCtxKey is the key used to store the identifier of the current
// push, pull or sync run in the context, so that every log line of one run
// can be correlated.
var SyncIDCtxKey = contextKey("syncID")

// WithSyncID returns a copy of ctx carrying syncID.
func WithSyncID(ctx context.Context, syncID string) context.Context {
	return context.WithValue(ctx, SyncIDCtxKey, syncID)
}

// GetSyncIDFromContext retrieves the sync run identifier from the context.
//
// Returns the id and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetSyncIDFromContext(ctx context.Context) (string, bool) {
	syncID, ok := ctx.Value(SyncIDCtxKey).(string)
	return syncID, ok
}
