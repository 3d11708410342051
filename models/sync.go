// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// EntityError records why one entity failed to push or pull. It is carried
// inside reports instead of aborting the whole batch.
type EntityError struct {
	Collection string
	EntityID   string
	Verb       Verb
	Err        error
}

func (e *EntityError) Error() string {
	switch {
	case e.EntityID == "":
		return fmt.Sprintf("%s: %v", e.Collection, e.Err)
	case e.Verb == "":
		return fmt.Sprintf("%s/%s: %v", e.Collection, e.EntityID, e.Err)
	}
	return fmt.Sprintf("%s %s/%s: %v", e.Verb, e.Collection, e.EntityID, e.Err)
}

func (e *EntityError) Unwrap() error {
	return e.Err
}

// PushResult summarises one drain of the pending-write queue.
type PushResult struct {
	// PushCount is the number of actions the backend acknowledged.
	PushCount int
	// Errors holds per-entity failures. Permanent rejections were dropped
	// from the queue; a transient failure stopped the drain.
	Errors []*EntityError
}

// PullResult summarises one pull of a collection.
type PullResult struct {
	// PullCount is the number of cache rows changed by the pull: upserts
	// plus deletions.
	PullCount int
	// Entities are the entities received from the backend.
	Entities []Entity
	// Errors holds non-fatal failures of the pull.
	Errors []*EntityError
}

// SyncResult is the report of a Sync call. It is never nil.
type SyncResult struct {
	Push PushResult
	Pull PullResult
}

// HasErrors reports whether either phase recorded a failure.
func (r *SyncResult) HasErrors() bool {
	return len(r.Push.Errors) > 0 || len(r.Pull.Errors) > 0
}

// Err joins every recorded failure, or returns nil.
func (r *SyncResult) Err() error {
	errs := make([]error, 0, len(r.Push.Errors)+len(r.Pull.Errors))
	for _, e := range r.Push.Errors {
		errs = append(errs, e)
	}
	for _, e := range r.Pull.Errors {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}
