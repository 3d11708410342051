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

type pendingWriteQueue struct {
	*DB
	collection string
}

// NewPendingWriteQueue returns the SQLite-backed pending-write queue of one
// collection.
func NewPendingWriteQueue(db *DB, collection string) PendingWriteQueue {
	return &pendingWriteQueue{
		DB:         db,
		collection: collection,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAction(row rowScanner) (models.PendingWriteAction, error) {
	var action models.PendingWriteAction
	err := row.Scan(
		&action.Seq,
		&action.Collection,
		&action.EntityID,
		&action.Verb,
		&action.EnqueuedAt,
		&action.Sent,
		&action.Revision,
	)
	return action, err
}

// Enqueue runs the collapse step as one transaction: read the action queued
// for the entity, then insert, replace or drop it.
func (q *pendingWriteQueue) Enqueue(ctx context.Context, action models.PendingWriteAction) error {
	log := logger.FromContext(ctx)

	if action.EntityID == "" {
		return q.storageError("pendingWriteQueue.Enqueue", q.collection, ErrEmptyEntityID)
	}
	if !action.Verb.Valid() {
		return q.storageError("pendingWriteQueue.Enqueue", q.collection, fmt.Errorf("%w: %q", ErrInvalidVerb, action.Verb))
	}
	if action.EnqueuedAt.IsZero() {
		action.EnqueuedAt = time.Now().UTC()
	}

	tx, err := q.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "pendingWriteQueue.Enqueue").
			Str("collection", q.collection).
			Msg("failed to begin transaction")
		return q.storageError("pendingWriteQueue.Enqueue", q.collection, fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer rollback(tx)

	queued, err := scanAction(tx.QueryRowContext(ctx, enqueueFindAction, q.collection, action.EntityID))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx, enqueueInsertAction,
			q.collection,
			action.EntityID,
			action.Verb,
			action.EnqueuedAt,
		)
	case err != nil:
		err = fmt.Errorf("%w: %w", ErrScanningRow, err)
	default:
		verb, keep := models.Collapse(queued, action.Verb)
		if keep {
			_, err = tx.ExecContext(ctx, enqueueCollapseAction, verb, queued.Seq)
		} else {
			_, err = tx.ExecContext(ctx, deleteActionBySeq, queued.Seq)
		}
	}
	if err != nil {
		log.Err(err).
			Str("func", "pendingWriteQueue.Enqueue").
			Str("collection", q.collection).
			Str("entity_id", action.EntityID).
			Str("verb", string(action.Verb)).
			Msg("failed to enqueue pending write")
		return q.storageError("pendingWriteQueue.Enqueue", q.collection, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "pendingWriteQueue.Enqueue").
			Str("collection", q.collection).
			Msg("failed to commit transaction")
		return q.storageError("pendingWriteQueue.Enqueue", q.collection, fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	return nil
}

func (q *pendingWriteQueue) Peek(ctx context.Context) (models.PendingWriteAction, bool, error) {
	action, err := scanAction(q.DB.QueryRowContext(ctx, peekAction, q.collection))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PendingWriteAction{}, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pendingWriteQueue.Peek").
			Str("collection", q.collection).
			Msg("failed to peek pending write")
		return models.PendingWriteAction{}, false, q.storageError("pendingWriteQueue.Peek", q.collection, fmt.Errorf("%w: %w", ErrScanningRow, err))
	}
	return action, true, nil
}

func (q *pendingWriteQueue) Get(ctx context.Context, entityID string) (models.PendingWriteAction, bool, error) {
	action, err := scanAction(q.DB.QueryRowContext(ctx, enqueueFindAction, q.collection, entityID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PendingWriteAction{}, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pendingWriteQueue.Get").
			Str("collection", q.collection).
			Str("entity_id", entityID).
			Msg("failed to get pending write")
		return models.PendingWriteAction{}, false, q.storageError("pendingWriteQueue.Get", q.collection, fmt.Errorf("%w: %w", ErrScanningRow, err))
	}
	return action, true, nil
}

func (q *pendingWriteQueue) List(ctx context.Context) ([]models.PendingWriteAction, error) {
	log := logger.FromContext(ctx)

	rows, err := q.DB.QueryContext(ctx, listActions, q.collection)
	if err != nil {
		log.Err(err).
			Str("func", "pendingWriteQueue.List").
			Str("collection", q.collection).
			Msg("failed to execute query for pending writes")
		return nil, q.storageError("pendingWriteQueue.List", q.collection, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	actions := make([]models.PendingWriteAction, 0)
	for rows.Next() {
		action, err := scanAction(rows)
		if err != nil {
			log.Err(err).
				Str("func", "pendingWriteQueue.List").
				Str("collection", q.collection).
				Msg("failed to scan pending write row")
			return nil, q.storageError("pendingWriteQueue.List", q.collection, fmt.Errorf("%w: %w", ErrScanningRow, err))
		}
		actions = append(actions, action)
	}

	if err = rows.Err(); err != nil {
		return nil, q.storageError("pendingWriteQueue.List", q.collection, fmt.Errorf("%w: %w", ErrScanningRow, err))
	}

	return actions, nil
}

func (q *pendingWriteQueue) Dequeue(ctx context.Context, action models.PendingWriteAction) (bool, error) {
	result, err := q.DB.ExecContext(ctx, dequeueAction, action.Seq, action.Revision)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pendingWriteQueue.Dequeue").
			Str("collection", q.collection).
			Str("entity_id", action.EntityID).
			Msg("failed to dequeue pending write")
		return false, q.storageError("pendingWriteQueue.Dequeue", q.collection, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, q.storageError("pendingWriteQueue.Dequeue", q.collection, err)
	}

	return affected > 0, nil
}

// MarkSent flags the action as transmitted unless it was re-mutated or
// removed after it was read. It reports whether the action was flagged; an
// action that was not must not be sent.
func (q *pendingWriteQueue) MarkSent(ctx context.Context, action models.PendingWriteAction) (bool, error) {
	result, err := q.DB.ExecContext(ctx, markActionSent, action.Seq, action.Revision)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pendingWriteQueue.MarkSent").
			Str("collection", q.collection).
			Str("entity_id", action.EntityID).
			Msg("failed to mark pending write as sent")
		return false, q.storageError("pendingWriteQueue.MarkSent", q.collection, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, q.storageError("pendingWriteQueue.MarkSent", q.collection, err)
	}

	return affected > 0, nil
}

// Rekey is used after the backend created an entity that was mutated again
// while the create was in flight. The follow-up mutation now targets the
// server id: a pending delete stays a delete, anything else becomes an
// update. Nothing happens when the action is gone.
func (q *pendingWriteQueue) Rekey(ctx context.Context, action models.PendingWriteAction, newID string) error {
	log := logger.FromContext(ctx)

	if newID == "" {
		return q.storageError("pendingWriteQueue.Rekey", q.collection, ErrEmptyEntityID)
	}

	tx, err := q.DB.BeginTx(ctx, nil)
	if err != nil {
		return q.storageError("pendingWriteQueue.Rekey", q.collection, fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer rollback(tx)

	current, err := scanAction(tx.QueryRowContext(ctx, getActionBySeq, action.Seq))
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return q.storageError("pendingWriteQueue.Rekey", q.collection, fmt.Errorf("%w: %w", ErrScanningRow, err))
	}

	verb := models.VerbUpdate
	if current.Verb == models.VerbDelete {
		verb = models.VerbDelete
	}

	if _, err = tx.ExecContext(ctx, rekeyAction, newID, verb, action.Seq); err != nil {
		log.Err(err).
			Str("func", "pendingWriteQueue.Rekey").
			Str("collection", q.collection).
			Str("entity_id", action.EntityID).
			Str("new_id", newID).
			Msg("failed to rekey pending write")
		return q.storageError("pendingWriteQueue.Rekey", q.collection, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	if err = tx.Commit(); err != nil {
		return q.storageError("pendingWriteQueue.Rekey", q.collection, fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	return nil
}

func (q *pendingWriteQueue) Count(ctx context.Context, allCollections bool) (int, error) {
	var (
		count int
		row   *sql.Row
	)
	if allCollections {
		row = q.DB.QueryRowContext(ctx, countAllActions)
	} else {
		row = q.DB.QueryRowContext(ctx, countActions, q.collection)
	}

	if err := row.Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pendingWriteQueue.Count").
			Str("collection", q.collection).
			Msg("failed to count pending writes")
		return 0, q.storageError("pendingWriteQueue.Count", q.collection, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	return count, nil
}

func (q *pendingWriteQueue) Clear(ctx context.Context, entityIDs ...string) (int, error) {
	log := logger.FromContext(ctx)

	if len(entityIDs) == 0 {
		result, err := q.DB.ExecContext(ctx, clearActions, q.collection)
		if err != nil {
			log.Err(err).
				Str("func", "pendingWriteQueue.Clear").
				Str("collection", q.collection).
				Msg("failed to clear pending writes")
			return 0, q.storageError("pendingWriteQueue.Clear", q.collection, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return 0, q.storageError("pendingWriteQueue.Clear", q.collection, err)
		}
		return int(affected), nil
	}

	tx, err := q.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, q.storageError("pendingWriteQueue.Clear", q.collection, fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer rollback(tx)

	total := 0
	for _, id := range entityIDs {
		result, err := tx.ExecContext(ctx, clearAction, q.collection, id)
		if err != nil {
			log.Err(err).
				Str("func", "pendingWriteQueue.Clear").
				Str("collection", q.collection).
				Str("entity_id", id).
				Msg("failed to clear pending write")
			return 0, q.storageError("pendingWriteQueue.Clear", q.collection, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return 0, q.storageError("pendingWriteQueue.Clear", q.collection, err)
		}
		total += int(affected)
	}

	if err = tx.Commit(); err != nil {
		return 0, q.storageError("pendingWriteQueue.Clear", q.collection, fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	return total, nil
}
