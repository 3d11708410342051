package service

import (
	"context"

	"github.com/MKhiriev/go-offline-store/internal/store"
	"github.com/MKhiriev/go-offline-store/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// LocalStorages hands out the SQLite-backed components of each collection.
// It is implemented by [store.ClientStorages].
type LocalStorages interface {
	EntityCache(collection string) store.EntityCache
	PendingWriteQueue(collection string) store.PendingWriteQueue
	DeltaTracker(collection string) store.DeltaTracker
	// Wipe drops the cached entities, pending writes and delta markers of
	// every collection.
	Wipe(ctx context.Context) error
}

// DataStore is the entry point for working with one collection. What each
// call does depends on the [models.StoreMode] the store was opened with.
type DataStore interface {
	// Collection returns the name of the remote collection.
	Collection() string

	// Mode returns the mode the store was opened with.
	Mode() models.StoreMode

	// Save stores entity. An entity without an id gets a temporary one and
	// is queued for creation; an entity with an id is queued as an update.
	// In NETWORK mode the backend is called directly and its copy returned.
	Save(ctx context.Context, entity models.Entity) (models.Entity, error)

	// Remove deletes the entity identified by id and returns how many
	// entities were removed.
	Remove(ctx context.Context, id string) (int, error)

	// FindByID returns the entity identified by id. Returns
	// [store.ErrEntityNotFound] when it does not exist.
	FindByID(ctx context.Context, id string) (models.Entity, error)

	// Find returns the entities matching query. A nil query returns the
	// whole collection.
	Find(ctx context.Context, query *models.Query) ([]models.Entity, error)

	// Push replays the pending writes against the backend.
	Push(ctx context.Context) (models.PushResult, error)

	// Pull fetches the entities matching query from the backend into the
	// local cache. Returns [ErrPullOnDirtyQueue] while writes are pending.
	Pull(ctx context.Context, query *models.Query) (models.PullResult, error)

	// Sync runs Push and then Pull. The returned report is never nil; a
	// failed phase is recorded in it. The error is reserved for local
	// storage failures and cancellation.
	Sync(ctx context.Context, query *models.Query) (*models.SyncResult, error)

	// Purge drops the pending writes of the entities matching query without
	// touching the cache. A nil query drops every pending write of the
	// collection. Returns the number of dropped writes.
	Purge(ctx context.Context, query *models.Query) (int, error)

	// ClearCache removes the cached entities matching query together with
	// their pending writes. A nil query clears the whole collection. Delta
	// markers of the collection are invalidated either way.
	ClearCache(ctx context.Context, query *models.Query) (int, error)

	// GetSyncCount returns the number of entities with a pending write, in
	// this collection or in all collections.
	GetSyncCount(ctx context.Context, allCollections bool) (int, error)

	// PendingActions returns the pending writes of the collection in the
	// order they will be pushed.
	PendingActions(ctx context.Context) ([]models.PendingWriteAction, error)
}

// PushCoordinator drains the pending-write queue of one collection. The
// caller holds the collection's sync lock.
type PushCoordinator interface {
	Push(ctx context.Context) (models.PushResult, error)
}

// PullCoordinator reconciles backend state into the cache of one
// collection. The caller holds the collection's sync lock.
type PullCoordinator interface {
	Pull(ctx context.Context, query *models.Query) (models.PullResult, error)
}
