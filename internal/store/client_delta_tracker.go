package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/models"
)

type deltaTracker struct {
	*DB
	collection string
}

// NewDeltaTracker returns the SQLite-backed delta marker bookkeeping of one
// collection.
func NewDeltaTracker(db *DB, collection string) DeltaTracker {
	return &deltaTracker{
		DB:         db,
		collection: collection,
	}
}

func (d *deltaTracker) Get(ctx context.Context, fingerprint string) (models.DeltaMarker, bool, error) {
	var marker models.DeltaMarker
	err := d.DB.QueryRowContext(ctx, getDeltaMarker, d.collection, fingerprint).Scan(
		&marker.Collection,
		&marker.QueryFingerprint,
		&marker.ServerMarker,
		&marker.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DeltaMarker{}, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deltaTracker.Get").
			Str("collection", d.collection).
			Str("fingerprint", fingerprint).
			Msg("failed to get delta marker")
		return models.DeltaMarker{}, false, d.storageError("deltaTracker.Get", d.collection, fmt.Errorf("%w: %w", ErrScanningRow, err))
	}
	return marker, true, nil
}

func (d *deltaTracker) Save(ctx context.Context, marker models.DeltaMarker) error {
	if marker.UpdatedAt.IsZero() {
		marker.UpdatedAt = time.Now().UTC()
	}

	_, err := d.DB.ExecContext(ctx, saveDeltaMarker,
		d.collection,
		marker.QueryFingerprint,
		marker.ServerMarker,
		marker.UpdatedAt,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deltaTracker.Save").
			Str("collection", d.collection).
			Str("fingerprint", marker.QueryFingerprint).
			Msg("failed to save delta marker")
		return d.storageError("deltaTracker.Save", d.collection, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}
	return nil
}

func (d *deltaTracker) Invalidate(ctx context.Context, fingerprint string) error {
	if _, err := d.DB.ExecContext(ctx, invalidateDeltaMarker, d.collection, fingerprint); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deltaTracker.Invalidate").
			Str("collection", d.collection).
			Str("fingerprint", fingerprint).
			Msg("failed to invalidate delta marker")
		return d.storageError("deltaTracker.Invalidate", d.collection, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}
	return nil
}

func (d *deltaTracker) InvalidateAll(ctx context.Context) error {
	if _, err := d.DB.ExecContext(ctx, invalidateAllDeltaMarkers, d.collection); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deltaTracker.InvalidateAll").
			Str("collection", d.collection).
			Msg("failed to invalidate delta markers")
		return d.storageError("deltaTracker.InvalidateAll", d.collection, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}
	return nil
}
