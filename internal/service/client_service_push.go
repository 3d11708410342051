package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-offline-store/internal/adapter"
	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/internal/store"
	"github.com/MKhiriev/go-offline-store/models"
)

type pushCoordinator struct {
	collection string
	cache      store.EntityCache
	queue      store.PendingWriteQueue
	gateway    adapter.NetworkGateway
	auth       adapter.AuthProvider
	lock       *collectionLock
}

// pushOutcome is what happened to one replayed action.
type pushOutcome int

const (
	pushAcknowledged pushOutcome = iota
	pushSkipped
	pushRejected
	pushStopped
)

func newPushCoordinator(
	collection string,
	cache store.EntityCache,
	queue store.PendingWriteQueue,
	gateway adapter.NetworkGateway,
	auth adapter.AuthProvider,
	lock *collectionLock,
) PushCoordinator {
	return &pushCoordinator{
		collection: collection,
		cache:      cache,
		queue:      queue,
		gateway:    gateway,
		auth:       auth,
		lock:       lock,
	}
}

// Push replays the queue one action at a time, oldest first, until it is
// empty or a transient failure stops the drain. The payload of every action
// is read from the cache when the action is sent, so only the latest state
// of an entity is transmitted.
//
// Backend failures are recorded in the result. The returned error is
// reserved for local storage failures and cancellation; the queue is
// consistent in both cases.
func (p *pushCoordinator) Push(ctx context.Context) (models.PushResult, error) {
	log := logger.FromContext(ctx)
	var result models.PushResult

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		action, ok, err := p.queue.Peek(ctx)
		if err != nil {
			return result, fmt.Errorf("peek pending write: %w", err)
		}
		if !ok {
			return result, nil
		}

		outcome, netErr, err := p.replay(ctx, action)
		if err != nil {
			log.Err(err).
				Str("func", "pushCoordinator.Push").
				Str("collection", p.collection).
				Str("entity_id", action.EntityID).
				Str("verb", string(action.Verb)).
				Msg("push aborted by local storage failure")
			return result, err
		}

		switch outcome {
		case pushAcknowledged:
			result.PushCount++
		case pushRejected:
			log.Warn().Err(netErr).
				Str("func", "pushCoordinator.Push").
				Str("collection", p.collection).
				Str("entity_id", action.EntityID).
				Str("verb", string(action.Verb)).
				Msg("backend rejected pending write, dropped")
			result.Errors = append(result.Errors, p.entityError(action, netErr))
		case pushStopped:
			log.Info().Err(netErr).
				Str("func", "pushCoordinator.Push").
				Str("collection", p.collection).
				Str("entity_id", action.EntityID).
				Msg("push stopped, pending writes kept for the next attempt")
			result.Errors = append(result.Errors, p.entityError(action, netErr))
			return result, nil
		}
	}
}

// replay sends one action and commits its outcome locally. netErr carries the
// backend failure of rejected and stopped actions; err is a local failure.
func (p *pushCoordinator) replay(ctx context.Context, action models.PendingWriteAction) (outcome pushOutcome, netErr error, err error) {
	if !action.Verb.Valid() {
		return 0, nil, fmt.Errorf("%w: unknown verb %q", ErrInvalidOperation, action.Verb)
	}

	entity, claimed, err := p.claim(ctx, action)
	if err != nil {
		return 0, nil, err
	}
	if !claimed {
		return pushSkipped, nil, nil
	}

	if action.Verb == models.VerbDelete {
		_, sendErr := withAuthRetry(ctx, p.auth, func() (int, error) {
			return p.gateway.Delete(ctx, p.collection, action.EntityID)
		})
		if sendErr != nil && !adapter.IsNotFound(sendErr) {
			return p.failed(ctx, action, sendErr)
		}

		p.lock.write.Lock()
		defer p.lock.write.Unlock()
		if _, err = p.queue.Dequeue(ctx, action); err != nil {
			return 0, nil, fmt.Errorf("dequeue pushed delete: %w", err)
		}
		return pushAcknowledged, nil, nil
	}

	saved, sendErr := withAuthRetry(ctx, p.auth, func() (models.Entity, error) {
		if action.Verb == models.VerbCreate {
			return p.gateway.Create(ctx, p.collection, entity)
		}
		return p.gateway.Update(ctx, p.collection, entity.ID, entity)
	})
	if sendErr != nil {
		return p.failed(ctx, action, sendErr)
	}

	if action.Verb == models.VerbCreate {
		err = p.commitCreate(ctx, action, saved)
	} else {
		err = p.commitUpdate(ctx, action, saved)
	}
	if err != nil {
		return 0, nil, err
	}
	return pushAcknowledged, nil, nil
}

// claim reads the payload of action and flags the action as sent while
// holding the write lock, so no Save or Remove can land in between. It
// reports false when the action must not be sent: its entity is gone from
// the cache, or the action was re-mutated or removed since it was peeked.
// The drain then peeks again.
func (p *pushCoordinator) claim(ctx context.Context, action models.PendingWriteAction) (models.Entity, bool, error) {
	p.lock.write.Lock()
	defer p.lock.write.Unlock()

	var entity models.Entity
	if action.Verb != models.VerbDelete {
		var err error
		entity, err = p.cache.Get(ctx, action.EntityID)
		if errors.Is(err, store.ErrEntityNotFound) {
			// nothing left to send
			if _, err = p.queue.Dequeue(ctx, action); err != nil {
				return models.Entity{}, false, fmt.Errorf("dequeue orphaned pending write: %w", err)
			}
			return models.Entity{}, false, nil
		}
		if err != nil {
			return models.Entity{}, false, fmt.Errorf("load entity to push: %w", err)
		}
	}

	claimed, err := p.queue.MarkSent(ctx, action)
	if err != nil {
		return models.Entity{}, false, fmt.Errorf("mark pending write sent: %w", err)
	}
	return entity, claimed, nil
}

// failed turns a backend failure into an outcome. Anything that is not a
// permanent rejection keeps the action queued.
func (p *pushCoordinator) failed(ctx context.Context, action models.PendingWriteAction, sendErr error) (pushOutcome, error, error) {
	if !adapter.IsPermanent(sendErr) {
		return pushStopped, sendErr, nil
	}

	p.lock.write.Lock()
	defer p.lock.write.Unlock()
	if _, err := p.queue.Dequeue(ctx, action); err != nil {
		return 0, nil, fmt.Errorf("dequeue rejected pending write: %w", err)
	}
	return pushRejected, sendErr, nil
}

// commitCreate stores the backend copy of a created entity. When the entity
// was mutated again while the create was in flight, the local copy is kept
// and moved to the backend id together with its pending write.
func (p *pushCoordinator) commitCreate(ctx context.Context, action models.PendingWriteAction, saved models.Entity) error {
	p.lock.write.Lock()
	defer p.lock.write.Unlock()

	if saved.ID == "" {
		saved.ID = action.EntityID
	}
	renamed := saved.ID != action.EntityID

	removed, err := p.queue.Dequeue(ctx, action)
	if err != nil {
		return fmt.Errorf("dequeue pushed create: %w", err)
	}

	if removed {
		if err = p.cache.Upsert(ctx, saved); err != nil {
			return fmt.Errorf("store created entity: %w", err)
		}
		if renamed {
			if _, err = p.cache.Delete(ctx, action.EntityID); err != nil {
				return fmt.Errorf("drop temporary entity: %w", err)
			}
		}
		return nil
	}

	if renamed {
		local, err := p.cache.Get(ctx, action.EntityID)
		switch {
		case errors.Is(err, store.ErrEntityNotFound):
		case err != nil:
			return fmt.Errorf("load re-mutated entity: %w", err)
		default:
			local.ID = saved.ID
			local.Metadata = saved.Metadata
			if local.ACL == nil {
				local.ACL = saved.ACL
			}
			if err = p.cache.Upsert(ctx, local); err != nil {
				return fmt.Errorf("move re-mutated entity: %w", err)
			}
			if _, err = p.cache.Delete(ctx, action.EntityID); err != nil {
				return fmt.Errorf("drop temporary entity: %w", err)
			}
		}
	}

	if err = p.queue.Rekey(ctx, action, saved.ID); err != nil {
		return fmt.Errorf("rekey re-mutated pending write: %w", err)
	}
	return nil
}

// commitUpdate stores the backend copy unless the entity changed locally
// while the update was in flight.
func (p *pushCoordinator) commitUpdate(ctx context.Context, action models.PendingWriteAction, saved models.Entity) error {
	p.lock.write.Lock()
	defer p.lock.write.Unlock()

	removed, err := p.queue.Dequeue(ctx, action)
	if err != nil {
		return fmt.Errorf("dequeue pushed update: %w", err)
	}
	if !removed {
		return nil
	}

	if saved.ID == "" {
		saved.ID = action.EntityID
	}
	if err = p.cache.Upsert(ctx, saved); err != nil {
		return fmt.Errorf("store updated entity: %w", err)
	}
	return nil
}

func (p *pushCoordinator) entityError(action models.PendingWriteAction, err error) *models.EntityError {
	return &models.EntityError{
		Collection: p.collection,
		EntityID:   action.EntityID,
		Verb:       action.Verb,
		Err:        err,
	}
}
