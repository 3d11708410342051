package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-offline-store/models"
)

var (
	// ErrInvalidOperation is returned when an operation does not apply to the
	// current state or mode of a data store.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrPullOnDirtyQueue is returned by Pull while the collection still has
	// mutations waiting to be pushed.
	ErrPullOnDirtyQueue = fmt.Errorf("%w: PULL_ONLY_ON_CLEAN_SYNC_QUEUE", ErrInvalidOperation)

	// ErrNetworkModeSync is returned by Push, Pull, Sync and Purge on a data
	// store that works in NETWORK mode and has no local state to reconcile.
	ErrNetworkModeSync = fmt.Errorf("%w: not available in %s mode", ErrInvalidOperation, models.ModeNetwork)

	// ErrEmptyCollection is returned when a data store is requested without a collection name.
	ErrEmptyCollection = errors.New("empty collection name")

	// ErrEmptyEntityID is returned when an operation needs an entity id and none was given.
	ErrEmptyEntityID = errors.New("empty entity id")

	// ErrInvalidStoreMode is returned when a data store is requested with an unknown mode.
	ErrInvalidStoreMode = errors.New("invalid store mode")

	// ErrInvalidEntity is returned by Save for an entity that cannot be stored.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidQuery is returned for a query that can be neither run on the
	// cache nor sent to the backend.
	ErrInvalidQuery = errors.New("invalid query")
)
