package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/models"
)

type entityCache struct {
	*DB
	collection string
	queries    entityQueryBuilder
}

// NewEntityCache returns the SQLite-backed cache of one collection.
func NewEntityCache(db *DB, collection string) EntityCache {
	return &entityCache{
		DB:         db,
		collection: collection,
		queries:    newEntityQueryBuilder(collection),
	}
}

func (c *entityCache) Get(ctx context.Context, id string) (models.Entity, error) {
	log := logger.FromContext(ctx)

	var document string
	err := c.DB.QueryRowContext(ctx, getEntity, c.collection, id).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entity{}, fmt.Errorf("entity %q: %w", id, ErrEntityNotFound)
	}
	if err != nil {
		log.Err(err).
			Str("func", "entityCache.Get").
			Str("collection", c.collection).
			Str("id", id).
			Msg("failed to query cached entity")
		return models.Entity{}, c.storageError("entityCache.Get", c.collection, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	entity, err := decodeDocument(document)
	if err != nil {
		log.Err(err).
			Str("func", "entityCache.Get").
			Str("collection", c.collection).
			Str("id", id).
			Msg("failed to decode cached entity")
		return models.Entity{}, c.storageError("entityCache.Get", c.collection, err)
	}

	return entity, nil
}

func (c *entityCache) FindAll(ctx context.Context) ([]models.Entity, error) {
	return c.FindByQuery(ctx, nil)
}

func (c *entityCache) FindByQuery(ctx context.Context, query *models.Query) ([]models.Entity, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := c.queries.build(query, "document")
	if err != nil {
		log.Err(err).
			Str("func", "entityCache.FindByQuery").
			Str("collection", c.collection).
			Msg("failed to build query")
		return nil, c.storageError("entityCache.FindByQuery", c.collection, err)
	}

	rows, err := c.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityCache.FindByQuery").
			Str("collection", c.collection).
			Msg("failed to execute query for cached entities")
		return nil, c.storageError("entityCache.FindByQuery", c.collection, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	entities := make([]models.Entity, 0)
	for rows.Next() {
		var document string
		if err = rows.Scan(&document); err != nil {
			log.Err(err).
				Str("func", "entityCache.FindByQuery").
				Str("collection", c.collection).
				Msg("failed to scan cached entity row")
			return nil, c.storageError("entityCache.FindByQuery", c.collection, fmt.Errorf("%w: %w", ErrScanningRow, err))
		}

		entity, err := decodeDocument(document)
		if err != nil {
			return nil, c.storageError("entityCache.FindByQuery", c.collection, err)
		}
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "entityCache.FindByQuery").
			Str("collection", c.collection).
			Msg("error occurred during rows iteration")
		return nil, c.storageError("entityCache.FindByQuery", c.collection, fmt.Errorf("%w: %w", ErrScanningRow, err))
	}

	return entities, nil
}

func (c *entityCache) Upsert(ctx context.Context, entity models.Entity) error {
	log := logger.FromContext(ctx)

	if entity.ID == "" {
		return c.storageError("entityCache.Upsert", c.collection, ErrEmptyEntityID)
	}

	document, err := json.Marshal(entity)
	if err != nil {
		return c.storageError("entityCache.Upsert", c.collection, fmt.Errorf("encode entity %q: %w", entity.ID, err))
	}

	_, err = c.DB.ExecContext(ctx, upsertEntity,
		c.collection,
		entity.ID,
		string(document),
		entity.Metadata.LastModified,
	)
	if err != nil {
		log.Err(err).
			Str("func", "entityCache.Upsert").
			Str("collection", c.collection).
			Str("id", entity.ID).
			Msg("failed to execute upsert for entity")
		return c.storageError("entityCache.Upsert", c.collection, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return nil
}

func (c *entityCache) Delete(ctx context.Context, id string) (int, error) {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, deleteEntity, c.collection, id)
	if err != nil {
		log.Err(err).
			Str("func", "entityCache.Delete").
			Str("collection", c.collection).
			Str("id", id).
			Msg("failed to delete entity")
		return 0, c.storageError("entityCache.Delete", c.collection, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, c.storageError("entityCache.Delete", c.collection, err)
	}

	return int(affected), nil
}

// DeleteByQuery removes every cached entity matching query in a single
// transaction and returns their ids.
func (c *entityCache) DeleteByQuery(ctx context.Context, query *models.Query) ([]string, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := c.queries.build(query, "id")
	if err != nil {
		return nil, c.storageError("entityCache.DeleteByQuery", c.collection, err)
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "entityCache.DeleteByQuery").
			Str("collection", c.collection).
			Msg("failed to begin transaction")
		return nil, c.storageError("entityCache.DeleteByQuery", c.collection, fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer rollback(tx)

	ids, err := scanIDs(ctx, tx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entityCache.DeleteByQuery").
			Str("collection", c.collection).
			Msg("failed to select entities to delete")
		return nil, c.storageError("entityCache.DeleteByQuery", c.collection, err)
	}

	for _, id := range ids {
		if _, err = tx.ExecContext(ctx, deleteEntity, c.collection, id); err != nil {
			log.Err(err).
				Str("func", "entityCache.DeleteByQuery").
				Str("collection", c.collection).
				Str("id", id).
				Msg("failed to delete entity")
			return nil, c.storageError("entityCache.DeleteByQuery", c.collection, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "entityCache.DeleteByQuery").
			Str("collection", c.collection).
			Msg("failed to commit transaction")
		return nil, c.storageError("entityCache.DeleteByQuery", c.collection, fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	return ids, nil
}

func (c *entityCache) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := c.DB.QueryRowContext(ctx, countEntities, c.collection).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityCache.CountAll").
			Str("collection", c.collection).
			Msg("failed to count entities")
		return 0, c.storageError("entityCache.CountAll", c.collection, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	return count, nil
}

func scanIDs(ctx context.Context, tx *sql.Tx, query string, args ...any) ([]string, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return ids, nil
}

func decodeDocument(document string) (models.Entity, error) {
	var entity models.Entity
	if err := json.Unmarshal([]byte(document), &entity); err != nil {
		return models.Entity{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	return entity, nil
}
