// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DeltaMarker remembers where the last successful pull of a query left off.
// ServerMarker is an opaque token issued by the backend; the client never
// derives it from its own clock.
type DeltaMarker struct {
	Collection       string    `json:"collection"`
	QueryFingerprint string    `json:"query_fingerprint"`
	ServerMarker     string    `json:"server_marker"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// QueryResponse is what the backend returns for a collection query.
// DeletedIDs is only filled by delta-set requests.
type QueryResponse struct {
	Entities     []Entity `json:"changed"`
	DeletedIDs   []string `json:"deleted,omitempty"`
	ServerMarker string   `json:"-"`
}
