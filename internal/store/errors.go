package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the local stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntityNotFound is returned when the cache holds no entity with the
	// requested id.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrEmptyEntityID is returned when a write targets an entity without id.
	ErrEmptyEntityID = errors.New("entity id is empty")

	// ErrInvalidVerb is returned when an action with an unknown verb is
	// enqueued.
	ErrInvalidVerb = errors.New("invalid pending write verb")

	// ErrUnsupportedQuery is returned when a query cannot be compiled to SQL
	// (unknown operator, malformed field path or a value of unsupported type).
	ErrUnsupportedQuery = errors.New("unsupported query")
)

// Low-level database operation errors. These are wrapped by the store
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrDecodingDocument is returned when a cached document is not a valid
	// entity envelope.
	ErrDecodingDocument = errors.New("failed to decode cached document")
)

// StorageError is a local persistence failure. It is fatal to the call that
// hit it and never leaves a half-applied write behind.
type StorageError struct {
	// Op is the store operation that failed, e.g. "entityCache.Upsert".
	Op string
	// Collection is the collection the operation worked on, empty for
	// operations spanning all collections.
	Collection string
	// Err is the underlying error.
	Err error

	classification ErrorClassification
}

func (e *StorageError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage: %s [%s]: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure was transient (the database was
// busy or locked) and the operation may succeed if attempted again.
func (e *StorageError) Retryable() bool {
	return e.classification == Retryable
}
