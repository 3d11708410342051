package store

import (
	"context"

	"github.com/MKhiriev/go-offline-store/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// EntityCache is the durable local copy of one collection. Every write is
// applied atomically before the call returns.
type EntityCache interface {
	Get(ctx context.Context, id string) (models.Entity, error)
	FindAll(ctx context.Context) ([]models.Entity, error)
	FindByQuery(ctx context.Context, query *models.Query) ([]models.Entity, error)
	Upsert(ctx context.Context, entity models.Entity) error
	Delete(ctx context.Context, id string) (int, error)
	DeleteByQuery(ctx context.Context, query *models.Query) ([]string, error)
	CountAll(ctx context.Context) (int, error)
}

// PendingWriteQueue is the ordered log of mutations of one collection the
// backend has not confirmed yet. It holds at most one action per entity.
type PendingWriteQueue interface {
	// Enqueue records a mutation, collapsing it into an existing action for
	// the same entity (see models.Collapse).
	Enqueue(ctx context.Context, action models.PendingWriteAction) error
	// Peek returns the oldest action without removing it.
	Peek(ctx context.Context) (models.PendingWriteAction, bool, error)
	Get(ctx context.Context, entityID string) (models.PendingWriteAction, bool, error)
	List(ctx context.Context) ([]models.PendingWriteAction, error)
	// Dequeue removes the action unless it was re-mutated after it was read.
	// It reports whether the action was removed.
	Dequeue(ctx context.Context, action models.PendingWriteAction) (bool, error)
	// MarkSent flags the action as transmitted. It reports false, and
	// changes nothing, when the action was re-mutated or removed after it
	// was read.
	MarkSent(ctx context.Context, action models.PendingWriteAction) (bool, error)
	// Rekey moves a re-mutated action for a temporary id over to the id the
	// backend assigned, keeping its queue position.
	Rekey(ctx context.Context, action models.PendingWriteAction, newID string) error
	Count(ctx context.Context, allCollections bool) (int, error)
	// Clear removes the actions for the given entities, or every action of
	// the collection when no id is given.
	Clear(ctx context.Context, entityIDs ...string) (int, error)
}

// DeltaTracker keeps the server markers of incremental pulls per query.
type DeltaTracker interface {
	Get(ctx context.Context, fingerprint string) (models.DeltaMarker, bool, error)
	Save(ctx context.Context, marker models.DeltaMarker) error
	Invalidate(ctx context.Context, fingerprint string) error
	InvalidateAll(ctx context.Context) error
}
