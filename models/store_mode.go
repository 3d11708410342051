// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// StoreMode selects how a data store reaches its data.
type StoreMode string

const (
	// ModeNetwork sends every call to the backend and keeps no local state.
	ModeNetwork StoreMode = "NETWORK"
	// ModeCache queues mutations like ModeSync but reads from the network
	// first and backfills the cache.
	ModeCache StoreMode = "CACHE"
	// ModeSync reads and writes the local cache only; the network is used
	// by explicit Push, Pull and Sync calls.
	ModeSync StoreMode = "SYNC"
)

// ParseStoreMode converts a case-insensitive mode name.
func ParseStoreMode(s string) (StoreMode, error) {
	switch m := StoreMode(strings.ToUpper(strings.TrimSpace(s))); m {
	case ModeNetwork, ModeCache, ModeSync:
		return m, nil
	}
	return "", fmt.Errorf("unknown store mode %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler so the mode can be read
// from environment variables and JSON config files.
func (m *StoreMode) UnmarshalText(text []byte) error {
	parsed, err := ParseStoreMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Durable reports whether mutations are recorded in the local queue.
func (m StoreMode) Durable() bool {
	return m == ModeCache || m == ModeSync
}
