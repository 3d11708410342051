package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-offline-store/internal/adapter"
	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/internal/store"
	"github.com/MKhiriev/go-offline-store/internal/utils"
	"github.com/MKhiriev/go-offline-store/models"
)

type pullCoordinator struct {
	collection    string
	cache         store.EntityCache
	queue         store.PendingWriteQueue
	tracker       store.DeltaTracker
	gateway       adapter.NetworkGateway
	auth          adapter.AuthProvider
	lock          *collectionLock
	deltaFetching bool
}

func newPullCoordinator(
	collection string,
	cache store.EntityCache,
	queue store.PendingWriteQueue,
	tracker store.DeltaTracker,
	gateway adapter.NetworkGateway,
	auth adapter.AuthProvider,
	lock *collectionLock,
	deltaFetching bool,
) PullCoordinator {
	return &pullCoordinator{
		collection:    collection,
		cache:         cache,
		queue:         queue,
		tracker:       tracker,
		gateway:       gateway,
		auth:          auth,
		lock:          lock,
		deltaFetching: deltaFetching,
	}
}

// Pull fetches the entities matching query and writes them to the cache.
//
// A delta set is requested when delta fetching is enabled, a marker exists
// for the query and the query is neither paged nor sorted. Otherwise every
// matching entity is fetched; entities missing from such a response are left
// in the cache. A paged query invalidates its marker.
//
// Backend failures are recorded in the result. The returned error is
// reserved for a dirty queue, local storage failures and cancellation.
func (p *pullCoordinator) Pull(ctx context.Context, query *models.Query) (models.PullResult, error) {
	log := logger.FromContext(ctx)
	var result models.PullResult

	pending, err := p.queue.Count(ctx, false)
	if err != nil {
		return result, fmt.Errorf("count pending writes: %w", err)
	}
	if pending > 0 {
		return result, ErrPullOnDirtyQueue
	}

	fingerprint, err := utils.QueryFingerprint(query)
	if err != nil {
		return result, fmt.Errorf("%w: fingerprint query: %w", ErrInvalidOperation, err)
	}

	if query.IsPaged() {
		if err = p.tracker.Invalidate(ctx, fingerprint); err != nil {
			return result, fmt.Errorf("invalidate delta marker: %w", err)
		}
		return p.fullFetch(ctx, query, "", result)
	}

	if p.deltaFetching {
		marker, found, err := p.tracker.Get(ctx, fingerprint)
		if err != nil {
			return result, fmt.Errorf("load delta marker: %w", err)
		}
		if found {
			resp, netErr := withAuthRetry(ctx, p.auth, func() (models.QueryResponse, error) {
				return p.gateway.QueryDelta(ctx, p.collection, query, marker.ServerMarker)
			})
			switch {
			case errors.Is(netErr, adapter.ErrDeltaMarkerExpired):
				log.Info().
					Str("func", "pullCoordinator.Pull").
					Str("collection", p.collection).
					Msg("delta marker rejected by backend, falling back to full fetch")
				if err = p.tracker.Invalidate(ctx, fingerprint); err != nil {
					return result, fmt.Errorf("invalidate delta marker: %w", err)
				}
			case netErr != nil:
				result.Errors = append(result.Errors, p.entityError(netErr))
				return result, nil
			default:
				return p.applyDelta(ctx, fingerprint, resp, result)
			}
		}
	}

	return p.fullFetch(ctx, query, fingerprint, result)
}

// fullFetch queries the backend and upserts the response. fingerprint is
// empty when no marker may be kept for the query.
func (p *pullCoordinator) fullFetch(ctx context.Context, query *models.Query, fingerprint string, result models.PullResult) (models.PullResult, error) {
	resp, netErr := withAuthRetry(ctx, p.auth, func() (models.QueryResponse, error) {
		return p.gateway.Query(ctx, p.collection, query)
	})
	if netErr != nil {
		logger.FromContext(ctx).Info().Err(netErr).
			Str("func", "pullCoordinator.fullFetch").
			Str("collection", p.collection).
			Msg("pull failed")
		result.Errors = append(result.Errors, p.entityError(netErr))
		return result, nil
	}

	changed, err := p.commit(ctx, resp.Entities, nil)
	if err != nil {
		return result, err
	}
	result.PullCount = changed
	result.Entities = resp.Entities

	if fingerprint != "" && resp.ServerMarker != "" {
		if err = p.saveMarker(ctx, fingerprint, resp.ServerMarker); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (p *pullCoordinator) applyDelta(ctx context.Context, fingerprint string, resp models.QueryResponse, result models.PullResult) (models.PullResult, error) {
	changed, err := p.commit(ctx, resp.Entities, resp.DeletedIDs)
	if err != nil {
		return result, err
	}
	result.PullCount = changed
	result.Entities = resp.Entities

	if resp.ServerMarker != "" {
		if err = p.saveMarker(ctx, fingerprint, resp.ServerMarker); err != nil {
			return result, err
		}
	}
	return result, nil
}

// commit writes pulled state to the cache. Entities that were mutated
// locally after the queue was found clean keep their local state; their
// pending write will overwrite the backend copy on the next push.
func (p *pullCoordinator) commit(ctx context.Context, entities []models.Entity, deletedIDs []string) (int, error) {
	if len(entities) == 0 && len(deletedIDs) == 0 {
		return 0, nil
	}

	p.lock.write.Lock()
	defer p.lock.write.Unlock()

	pending, err := p.pendingIDs(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, e := range entities {
		if pending[e.ID] {
			continue
		}
		if err = p.cache.Upsert(ctx, e); err != nil {
			return changed, fmt.Errorf("store pulled entity: %w", err)
		}
		changed++
	}
	for _, id := range deletedIDs {
		if pending[id] {
			continue
		}
		removed, err := p.cache.Delete(ctx, id)
		if err != nil {
			return changed, fmt.Errorf("remove entity deleted on backend: %w", err)
		}
		changed += removed
	}
	return changed, nil
}

func (p *pullCoordinator) pendingIDs(ctx context.Context) (map[string]bool, error) {
	actions, err := p.queue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending writes: %w", err)
	}
	ids := make(map[string]bool, len(actions))
	for _, a := range actions {
		ids[a.EntityID] = true
	}
	return ids, nil
}

func (p *pullCoordinator) saveMarker(ctx context.Context, fingerprint, serverMarker string) error {
	err := p.tracker.Save(ctx, models.DeltaMarker{
		Collection:       p.collection,
		QueryFingerprint: fingerprint,
		ServerMarker:     serverMarker,
		UpdatedAt:        time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("save delta marker: %w", err)
	}
	return nil
}

func (p *pullCoordinator) entityError(err error) *models.EntityError {
	return &models.EntityError{Collection: p.collection, Err: err}
}
