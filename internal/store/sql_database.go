package store

import (
	"database/sql"

	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/migrations"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened connection.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// storageError wraps err into a [StorageError] classified by the database's
// error classifier.
func (db *DB) storageError(op, collection string, err error) error {
	classification := NonRetryable
	if db.errorClassificator != nil {
		classification = db.errorClassificator.Classify(err)
	}

	return &StorageError{
		Op:             op,
		Collection:     collection,
		Err:            err,
		classification: classification,
	}
}

// rollback is deferred by every transactional method. After a successful
// commit it is a no-op.
func rollback(tx *sql.Tx) {
	_ = tx.Rollback()
}
