// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Verb is the kind of mutation recorded in the pending-write queue.
type Verb string

const (
	VerbCreate Verb = "CREATE"
	VerbUpdate Verb = "UPDATE"
	VerbDelete Verb = "DELETE"
)

// Valid reports whether v is one of the known verbs.
func (v Verb) Valid() bool {
	switch v {
	case VerbCreate, VerbUpdate, VerbDelete:
		return true
	}
	return false
}

// PendingWriteAction is a mutation made on the device that the backend has
// not confirmed yet. There is at most one action per (Collection, EntityID).
type PendingWriteAction struct {
	// Seq is the FIFO position of the action inside its collection.
	// It is assigned by the queue and survives collapsing.
	Seq int64 `json:"seq"`
	// Collection is the remote collection the entity belongs to.
	Collection string `json:"collection"`
	// EntityID identifies the mutated entity.
	EntityID string `json:"entity_id"`
	// Verb is the mutation to replay.
	Verb Verb `json:"verb"`
	// EnqueuedAt is when the action (or the mutation it collapsed into)
	// was first queued.
	EnqueuedAt time.Time `json:"enqueued_at"`
	// Sent is set right before the action is transmitted. A CREATE that was
	// never sent is unknown to the backend.
	Sent bool `json:"sent"`
	// Revision grows every time a new mutation collapses into the action.
	// The push step only removes an action whose revision did not change
	// while the request was in flight.
	Revision int64 `json:"revision"`
}

// Collapse merges a new mutation into an action that is already queued for
// the same entity. It returns the verb the queued entry must carry from now
// on, or keep == false when the entry has to be dropped altogether.
//
// A CREATE stays a CREATE until the backend acknowledges it, since the
// payload is always read from the cache at push time. Deleting an entity
// whose CREATE was never sent cancels both mutations.
func Collapse(queued PendingWriteAction, next Verb) (verb Verb, keep bool) {
	switch queued.Verb {
	case VerbCreate:
		if next != VerbDelete {
			return VerbCreate, true
		}
		if !queued.Sent {
			return "", false
		}
		return VerbDelete, true
	case VerbDelete:
		if next == VerbCreate {
			return VerbUpdate, true
		}
		return next, true
	default:
		if next == VerbCreate {
			return VerbUpdate, true
		}
		return next, true
	}
}
