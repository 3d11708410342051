package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-offline-store/internal/config"
	"github.com/MKhiriev/go-offline-store/internal/logger"
)

// ClientStorages owns the local SQLite database and hands out the
// per-collection stores that live in it. All stores share one connection.
type ClientStorages struct {
	db     *DB
	logger *logger.Logger
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		db:     db,
		logger: logger,
	}, nil
}

// EntityCache returns the cache of collection.
func (s *ClientStorages) EntityCache(collection string) EntityCache {
	return NewEntityCache(s.db, collection)
}

// PendingWriteQueue returns the pending-write queue of collection.
func (s *ClientStorages) PendingWriteQueue(collection string) PendingWriteQueue {
	return NewPendingWriteQueue(s.db, collection)
}

// DeltaTracker returns the delta markers of collection.
func (s *ClientStorages) DeltaTracker(collection string) DeltaTracker {
	return NewDeltaTracker(s.db, collection)
}

// Wipe removes every cached entity, pending write and delta marker of every
// collection in one transaction.
func (s *ClientStorages) Wipe(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.db.storageError("ClientStorages.Wipe", "", fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer rollback(tx)

	for _, stmt := range []string{wipePendingWrites, wipeEntities, wipeDeltaMarkers} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			log.Err(err).Str("func", "ClientStorages.Wipe").Msg("failed to wipe local state")
			return s.db.storageError("ClientStorages.Wipe", "", fmt.Errorf("%w: %w", ErrExecutingStatement, err))
		}
	}

	if err = tx.Commit(); err != nil {
		return s.db.storageError("ClientStorages.Wipe", "", fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}
	return nil
}

// Close closes the underlying database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
