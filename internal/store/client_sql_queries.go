// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	entitiesTable = "entities"

	upsertEntity = `
		INSERT INTO entities (
			collection,
			id,
			document,
			lmt,
			updated_at
		) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (collection, id) DO UPDATE SET
			document   = excluded.document,
			lmt        = excluded.lmt,
			updated_at = excluded.updated_at;`

	getEntity = `
		SELECT document
		FROM entities
		WHERE collection = ? AND id = ?;`

	deleteEntity = `
		DELETE FROM entities
		WHERE collection = ? AND id = ?;`

	countEntities = `
		SELECT COUNT(*)
		FROM entities
		WHERE collection = ?;`

	enqueueFindAction = `
		SELECT
			seq,
			collection,
			entity_id,
			verb,
			enqueued_at,
			sent,
			revision
		FROM pending_writes
		WHERE collection = ? AND entity_id = ?;`

	enqueueInsertAction = `
		INSERT INTO pending_writes (
			collection,
			entity_id,
			verb,
			enqueued_at,
			sent,
			revision
		) VALUES (?, ?, ?, ?, 0, 0);`

	enqueueCollapseAction = `
		UPDATE pending_writes SET
			verb     = ?,
			revision = revision + 1
		WHERE seq = ?;`

	deleteActionBySeq = `
		DELETE FROM pending_writes
		WHERE seq = ?;`

	peekAction = `
		SELECT
			seq,
			collection,
			entity_id,
			verb,
			enqueued_at,
			sent,
			revision
		FROM pending_writes
		WHERE collection = ?
		ORDER BY seq
		LIMIT 1;`

	listActions = `
		SELECT
			seq,
			collection,
			entity_id,
			verb,
			enqueued_at,
			sent,
			revision
		FROM pending_writes
		WHERE collection = ?
		ORDER BY seq;`

	getActionBySeq = `
		SELECT
			seq,
			collection,
			entity_id,
			verb,
			enqueued_at,
			sent,
			revision
		FROM pending_writes
		WHERE seq = ?;`

	dequeueAction = `
		DELETE FROM pending_writes
		WHERE seq = ? AND revision = ?;`

	markActionSent = `
		UPDATE pending_writes SET sent = 1
		WHERE seq = ? AND revision = ?;`

	rekeyAction = `
		UPDATE pending_writes SET
			entity_id = ?,
			verb      = ?,
			sent      = 0,
			revision  = revision + 1
		WHERE seq = ?;`

	countActions = `
		SELECT COUNT(*)
		FROM pending_writes
		WHERE collection = ?;`

	countAllActions = `
		SELECT COUNT(*)
		FROM pending_writes;`

	clearActions = `
		DELETE FROM pending_writes
		WHERE collection = ?;`

	clearAction = `
		DELETE FROM pending_writes
		WHERE collection = ? AND entity_id = ?;`

	getDeltaMarker = `
		SELECT
			collection,
			query_fingerprint,
			server_marker,
			updated_at
		FROM delta_markers
		WHERE collection = ? AND query_fingerprint = ?;`

	saveDeltaMarker = `
		INSERT INTO delta_markers (
			collection,
			query_fingerprint,
			server_marker,
			updated_at
		) VALUES (?, ?, ?, ?)
		ON CONFLICT (collection, query_fingerprint) DO UPDATE SET
			server_marker = excluded.server_marker,
			updated_at    = excluded.updated_at;`

	invalidateDeltaMarker = `
		DELETE FROM delta_markers
		WHERE collection = ? AND query_fingerprint = ?;`

	invalidateAllDeltaMarkers = `
		DELETE FROM delta_markers
		WHERE collection = ?;`

	wipeEntities      = `DELETE FROM entities;`
	wipePendingWrites = `DELETE FROM pending_writes;`
	wipeDeltaMarkers  = `DELETE FROM delta_markers;`
)
