package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-offline-store/internal/adapter"
	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/internal/store"
	"github.com/MKhiriev/go-offline-store/internal/utils"
	"github.com/MKhiriev/go-offline-store/internal/validators"
	"github.com/MKhiriev/go-offline-store/models"
)

type dataStore struct {
	collection string
	mode       models.StoreMode

	cache     store.EntityCache
	queue     store.PendingWriteQueue
	tracker   store.DeltaTracker
	gateway   adapter.NetworkGateway
	ids       *utils.UUIDGenerator
	validator validators.Validator

	lock *collectionLock
	push PushCoordinator
	pull PullCoordinator

	logger *logger.Logger
}

func (d *dataStore) Collection() string {
	return d.collection
}

func (d *dataStore) Mode() models.StoreMode {
	return d.mode
}

func (d *dataStore) withLogger(ctx context.Context) context.Context {
	return logger.WithFallback(ctx, d.logger)
}

// withSyncID tags ctx and its logger with the id of the running sync. An id
// set by the caller is kept.
func (d *dataStore) withSyncID(ctx context.Context) context.Context {
	syncID, ok := utils.GetSyncIDFromContext(ctx)
	if !ok {
		syncID = d.ids.Generate()
		ctx = utils.WithSyncID(ctx, syncID)
	}
	l := logger.FromContext(ctx).With().Str("sync_id", syncID).Logger()
	return l.WithContext(ctx)
}

func (d *dataStore) validateQuery(ctx context.Context, query *models.Query) error {
	if err := d.validator.Validate(ctx, query); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return nil
}

// Save implements [DataStore].
func (d *dataStore) Save(ctx context.Context, entity models.Entity) (models.Entity, error) {
	ctx = d.withLogger(ctx)

	if err := d.validator.Validate(ctx, entity); err != nil {
		return models.Entity{}, fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}

	if d.mode == models.ModeNetwork {
		if entity.ID == "" {
			return d.gateway.Create(ctx, d.collection, entity)
		}
		return d.gateway.Update(ctx, d.collection, entity.ID, entity)
	}

	entity = entity.Clone()
	verb := models.VerbUpdate
	if entity.ID == "" {
		entity.ID = d.ids.TempID()
		verb = models.VerbCreate
	}
	if entity.Fields == nil {
		entity.Fields = make(map[string]any)
	}

	d.lock.write.Lock()
	defer d.lock.write.Unlock()

	if err := d.cache.Upsert(ctx, entity); err != nil {
		return models.Entity{}, fmt.Errorf("save entity: %w", err)
	}
	if err := d.queue.Enqueue(ctx, d.action(entity.ID, verb)); err != nil {
		return models.Entity{}, fmt.Errorf("queue %s: %w", strings.ToLower(string(verb)), err)
	}

	// hand back what a later read returns
	stored, err := d.cache.Get(ctx, entity.ID)
	if err != nil {
		return models.Entity{}, fmt.Errorf("read saved entity: %w", err)
	}
	return stored, nil
}

// Remove implements [DataStore].
func (d *dataStore) Remove(ctx context.Context, id string) (int, error) {
	ctx = d.withLogger(ctx)

	if id == "" {
		return 0, ErrEmptyEntityID
	}
	if d.mode == models.ModeNetwork {
		return d.gateway.Delete(ctx, d.collection, id)
	}

	d.lock.write.Lock()
	defer d.lock.write.Unlock()

	removed, err := d.cache.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("remove entity: %w", err)
	}
	if err = d.queue.Enqueue(ctx, d.action(id, models.VerbDelete)); err != nil {
		return 0, fmt.Errorf("queue delete: %w", err)
	}
	return removed, nil
}

// FindByID implements [DataStore].
func (d *dataStore) FindByID(ctx context.Context, id string) (models.Entity, error) {
	ctx = d.withLogger(ctx)

	if id == "" {
		return models.Entity{}, ErrEmptyEntityID
	}

	switch d.mode {
	case models.ModeNetwork:
		return d.findRemoteByID(ctx, id)
	case models.ModeCache:
		entity, err := d.findRemoteByID(ctx, id)
		if err == nil {
			local, found, backfillErr := d.backfillEntity(ctx, entity)
			if backfillErr != nil {
				return models.Entity{}, backfillErr
			}
			if !found {
				return models.Entity{}, fmt.Errorf("entity %q: %w", id, store.ErrEntityNotFound)
			}
			return local, nil
		}
		if !errors.Is(err, store.ErrEntityNotFound) {
			d.logNetworkFallback(ctx, "dataStore.FindByID", err)
		}
	}

	return d.cache.Get(ctx, id)
}

func (d *dataStore) findRemoteByID(ctx context.Context, id string) (models.Entity, error) {
	resp, err := d.gateway.Query(ctx, d.collection, models.NewQuery().Where(models.IDField, models.OpEqual, id))
	if err != nil {
		return models.Entity{}, err
	}
	for _, e := range resp.Entities {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Entity{}, fmt.Errorf("entity %q: %w", id, store.ErrEntityNotFound)
}

// Find implements [DataStore].
func (d *dataStore) Find(ctx context.Context, query *models.Query) ([]models.Entity, error) {
	ctx = d.withLogger(ctx)

	if err := d.validateQuery(ctx, query); err != nil {
		return nil, err
	}

	switch d.mode {
	case models.ModeNetwork:
		resp, err := d.gateway.Query(ctx, d.collection, query)
		if err != nil {
			return nil, err
		}
		return resp.Entities, nil
	case models.ModeCache:
		resp, err := d.gateway.Query(ctx, d.collection, query)
		if err == nil {
			return d.backfill(ctx, resp.Entities)
		}
		d.logNetworkFallback(ctx, "dataStore.Find", err)
	}

	return d.cache.FindByQuery(ctx, query)
}

// backfill writes entities fetched for a read to the cache and returns them
// as the application should see them: entities with a pending write are
// replaced by their local copy, or left out when they are pending deletion.
func (d *dataStore) backfill(ctx context.Context, entities []models.Entity) ([]models.Entity, error) {
	d.lock.write.Lock()
	defer d.lock.write.Unlock()

	actions, err := d.queue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending writes: %w", err)
	}
	pending := make(map[string]models.Verb, len(actions))
	for _, a := range actions {
		pending[a.EntityID] = a.Verb
	}

	out := make([]models.Entity, 0, len(entities))
	for _, e := range entities {
		verb, isPending := pending[e.ID]
		local, found, err := d.merge(ctx, e, verb, isPending)
		if err != nil {
			return nil, err
		}
		if found {
			out = append(out, local)
		}
	}
	return out, nil
}

// backfillEntity is backfill for one entity. Only its own pending write is
// looked up.
func (d *dataStore) backfillEntity(ctx context.Context, entity models.Entity) (models.Entity, bool, error) {
	d.lock.write.Lock()
	defer d.lock.write.Unlock()

	action, isPending, err := d.queue.Get(ctx, entity.ID)
	if err != nil {
		return models.Entity{}, false, fmt.Errorf("get pending write: %w", err)
	}
	return d.merge(ctx, entity, action.Verb, isPending)
}

// merge caches a remote entity that has no pending write. Otherwise the
// local state wins: a pending delete hides the entity, any other pending
// write answers with the cached copy.
func (d *dataStore) merge(ctx context.Context, remote models.Entity, verb models.Verb, isPending bool) (models.Entity, bool, error) {
	switch {
	case !isPending:
		if err := d.cache.Upsert(ctx, remote); err != nil {
			return models.Entity{}, false, fmt.Errorf("backfill cache: %w", err)
		}
		return remote, true, nil
	case verb == models.VerbDelete:
		return models.Entity{}, false, nil
	}

	local, err := d.cache.Get(ctx, remote.ID)
	if errors.Is(err, store.ErrEntityNotFound) {
		return models.Entity{}, false, nil
	}
	if err != nil {
		return models.Entity{}, false, fmt.Errorf("load pending entity: %w", err)
	}
	return local, true, nil
}

func (d *dataStore) logNetworkFallback(ctx context.Context, fn string, err error) {
	logger.FromContext(ctx).Info().Err(err).
		Str("func", fn).
		Str("collection", d.collection).
		Msg("backend unavailable, answering from local cache")
}

// Push implements [DataStore].
func (d *dataStore) Push(ctx context.Context) (models.PushResult, error) {
	if d.mode == models.ModeNetwork {
		return models.PushResult{}, ErrNetworkModeSync
	}
	ctx = d.withLogger(ctx)

	if err := d.lock.acquire(ctx); err != nil {
		return models.PushResult{}, err
	}
	defer d.lock.release()

	return d.push.Push(ctx)
}

// Pull implements [DataStore].
func (d *dataStore) Pull(ctx context.Context, query *models.Query) (models.PullResult, error) {
	if d.mode == models.ModeNetwork {
		return models.PullResult{}, ErrNetworkModeSync
	}
	ctx = d.withLogger(ctx)
	if err := d.validateQuery(ctx, query); err != nil {
		return models.PullResult{}, err
	}

	if err := d.lock.acquire(ctx); err != nil {
		return models.PullResult{}, err
	}
	defer d.lock.release()

	return d.pull.Pull(ctx, query)
}

// Sync implements [DataStore]. Pull always runs after Push, whatever Push
// reported. A queue left dirty by Push is recorded as a Pull error.
func (d *dataStore) Sync(ctx context.Context, query *models.Query) (*models.SyncResult, error) {
	result := &models.SyncResult{}
	if d.mode == models.ModeNetwork {
		return result, ErrNetworkModeSync
	}
	ctx = d.withSyncID(d.withLogger(ctx))
	log := logger.FromContext(ctx)
	if err := d.validateQuery(ctx, query); err != nil {
		return result, err
	}

	if err := d.lock.acquire(ctx); err != nil {
		return result, err
	}
	defer d.lock.release()

	started := time.Now()

	pushed, err := d.push.Push(ctx)
	result.Push = pushed
	if err != nil {
		return result, fmt.Errorf("sync push: %w", err)
	}

	pulled, err := d.pull.Pull(ctx, query)
	result.Pull = pulled
	switch {
	case errors.Is(err, ErrPullOnDirtyQueue):
		result.Pull.Errors = append(result.Pull.Errors, &models.EntityError{Collection: d.collection, Err: err})
	case err != nil:
		return result, fmt.Errorf("sync pull: %w", err)
	}

	log.Info().
		Str("func", "dataStore.Sync").
		Str("collection", d.collection).
		Int("pushed", result.Push.PushCount).
		Int("pulled", result.Pull.PullCount).
		Int("errors", len(result.Push.Errors)+len(result.Pull.Errors)).
		Dur("took", time.Since(started)).
		Msg("sync finished")

	return result, nil
}

// Purge implements [DataStore].
func (d *dataStore) Purge(ctx context.Context, query *models.Query) (int, error) {
	if d.mode == models.ModeNetwork {
		return 0, ErrNetworkModeSync
	}
	ctx = d.withLogger(ctx)
	if err := d.validateQuery(ctx, query); err != nil {
		return 0, err
	}

	if err := d.lock.acquire(ctx); err != nil {
		return 0, err
	}
	defer d.lock.release()

	d.lock.write.Lock()
	defer d.lock.write.Unlock()

	if query == nil {
		return d.queue.Clear(ctx)
	}

	entities, err := d.cache.FindByQuery(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("find entities to purge: %w", err)
	}
	if len(entities) == 0 {
		return 0, nil
	}
	ids := make([]string, 0, len(entities))
	for _, e := range entities {
		ids = append(ids, e.ID)
	}
	return d.queue.Clear(ctx, ids...)
}

// ClearCache implements [DataStore].
func (d *dataStore) ClearCache(ctx context.Context, query *models.Query) (int, error) {
	ctx = d.withLogger(ctx)
	if err := d.validateQuery(ctx, query); err != nil {
		return 0, err
	}

	if err := d.lock.acquire(ctx); err != nil {
		return 0, err
	}
	defer d.lock.release()

	d.lock.write.Lock()
	defer d.lock.write.Unlock()

	removed, err := d.cache.DeleteByQuery(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}

	if query == nil {
		_, err = d.queue.Clear(ctx)
	} else if len(removed) > 0 {
		_, err = d.queue.Clear(ctx, removed...)
	}
	if err != nil {
		return 0, fmt.Errorf("clear pending writes: %w", err)
	}

	if err = d.tracker.InvalidateAll(ctx); err != nil {
		return 0, fmt.Errorf("invalidate delta markers: %w", err)
	}
	return len(removed), nil
}

// GetSyncCount implements [DataStore].
func (d *dataStore) GetSyncCount(ctx context.Context, allCollections bool) (int, error) {
	return d.queue.Count(d.withLogger(ctx), allCollections)
}

// PendingActions implements [DataStore].
func (d *dataStore) PendingActions(ctx context.Context) ([]models.PendingWriteAction, error) {
	return d.queue.List(d.withLogger(ctx))
}

func (d *dataStore) action(id string, verb models.Verb) models.PendingWriteAction {
	return models.PendingWriteAction{
		Collection: d.collection,
		EntityID:   id,
		Verb:       verb,
		EnqueuedAt: time.Now().UTC(),
	}
}
