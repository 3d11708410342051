// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-offline-store/internal/adapter"
	"github.com/MKhiriev/go-offline-store/internal/config"
	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/internal/mock"
	"github.com/MKhiriev/go-offline-store/internal/store"
	"github.com/MKhiriev/go-offline-store/models"
)

func saveN(t *testing.T, ds DataStore, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		saved, err := ds.Save(context.Background(), todo("", fmt.Sprintf("todo %d", i)))
		require.NoError(t, err)
		ids = append(ids, saved.ID)
	}
	return ids
}

func TestPush_TransientFailureStopsDrain(t *testing.T) {
	backend := newFakeBackend()
	backend.failNext("Create", nil, transient())
	svc, _ := newTestServices(t, backend, nil, false)
	ds := openStore(t, svc, todos, models.ModeSync)
	ctx := context.Background()

	ids := saveN(t, ds, 3)

	res, err := ds.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.PushCount)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, ids[1], res.Errors[0].EntityID)
	assert.True(t, adapter.IsTransient(res.Errors[0]))
	assert.Equal(t, 2, backend.callCount("Create"), "the third action is never sent")

	actions, err := ds.PendingActions(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, ids[1], actions[0].EntityID)
	assert.Equal(t, ids[2], actions[1].EntityID)

	// next attempt picks up where the last one stopped
	res, err = ds.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.PushCount)
	assert.Empty(t, res.Errors)
	assert.Equal(t, 3, backend.size(todos))
}

func TestPush_PermanentRejectionIsDroppedAndDrainContinues(t *testing.T) {
	backend := newFakeBackend()
	backend.failNext("Create", permanent())
	svc, _ := newTestServices(t, backend, nil, false)
	ds := openStore(t, svc, todos, models.ModeSync)
	ctx := context.Background()

	ids := saveN(t, ds, 3)

	res, err := ds.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.PushCount)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, ids[0], res.Errors[0].EntityID)
	assert.Equal(t, models.VerbCreate, res.Errors[0].Verb)
	assert.ErrorIs(t, res.Errors[0], adapter.ErrBadRequest)

	count, err := ds.GetSyncCount(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, count)

	rejected, err := ds.FindByID(ctx, ids[0])
	require.NoError(t, err, "the local copy of a rejected entity is kept")
	assert.Equal(t, "todo 0", rejected.Fields["title"])
}

func TestPush_RefreshesExpiredCredentialsOnce(t *testing.T) {
	backend := newFakeBackend()
	backend.failNext("Update", authExpired())
	auth := &countingAuth{}
	svc, _ := newTestServices(t, backend, auth, false)
	ds := openStore(t, svc, todos, models.ModeSync)
	ctx := context.Background()

	_, err := ds.Save(ctx, todo("a", "x"))
	require.NoError(t, err)

	res, err := ds.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.PushCount)
	assert.Empty(t, res.Errors)
	assert.Equal(t, 1, auth.refreshes)
	assert.Equal(t, 2, backend.callCount("Update"))
}

func TestPush_AuthFailuresBecomeTransient(t *testing.T) {
	tests := []struct {
		name          string
		failures      []error
		refreshErr    error
		wantRefreshes int
		wantUpdates   int
	}{
		{
			name:          "rejected again after refresh",
			failures:      []error{authExpired(), authExpired()},
			wantRefreshes: 1,
			wantUpdates:   2,
		},
		{
			name:          "refresh fails",
			failures:      []error{authExpired()},
			refreshErr:    errors.New("identity provider down"),
			wantRefreshes: 1,
			wantUpdates:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend()
			backend.failNext("Update", tt.failures...)
			auth := &countingAuth{refreshErr: tt.refreshErr}
			svc, _ := newTestServices(t, backend, auth, false)
			ds := openStore(t, svc, todos, models.ModeSync)
			ctx := context.Background()

			_, err := ds.Save(ctx, todo("a", "x"))
			require.NoError(t, err)

			res, err := ds.Push(ctx)
			require.NoError(t, err)
			assert.Zero(t, res.PushCount)
			require.Len(t, res.Errors, 1)
			assert.True(t, adapter.IsTransient(res.Errors[0]))
			assert.Equal(t, tt.wantRefreshes, auth.refreshes)
			assert.Equal(t, tt.wantUpdates, backend.callCount("Update"))

			count, err := ds.GetSyncCount(ctx, false)
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}

func TestPush_AuthExpiredWithoutProviderStopsDrain(t *testing.T) {
	backend := newFakeBackend()
	backend.failNext("Delete", authExpired())
	svc, _ := newTestServices(t, backend, nil, false)
	ds := openStore(t, svc, todos, models.ModeSync)
	ctx := context.Background()

	_, err := ds.Remove(ctx, "gone")
	require.NoError(t, err)

	res, err := ds.Push(ctx)
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.True(t, adapter.IsTransient(res.Errors[0]))
	assert.Equal(t, 1, backend.callCount("Delete"))
}

func TestPush_DeleteOfMissingEntityCountsAsDone(t *testing.T) {
	backend := newFakeBackend()
	backend.put(todos, todo("present", "x"))
	svc, _ := newTestServices(t, backend, nil, false)
	ds := openStore(t, svc, todos, models.ModeSync)
	ctx := context.Background()

	_, err := ds.Remove(ctx, "never-existed")
	require.NoError(t, err)
	_, err = ds.Remove(ctx, "present")
	require.NoError(t, err)

	res, err := ds.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.PushCount)
	assert.Empty(t, res.Errors)
	assert.Zero(t, backend.size(todos))

	count, err := ds.GetSyncCount(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPush_ReplaysInQueueOrder(t *testing.T) {
	backend := newFakeBackend()
	svc, _ := newTestServices(t, backend, nil, false)
	ds := openStore(t, svc, todos, models.ModeSync)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := ds.Save(ctx, todo(id, "v1"))
		require.NoError(t, err)
	}
	// collapsing keeps the original position
	_, err := ds.Save(ctx, todo("a", "v2"))
	require.NoError(t, err)
	_, err = ds.Remove(ctx, "b")
	require.NoError(t, err)

	res, err := ds.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.PushCount)
	assert.Equal(t, []string{"a", "b", "c"}, backend.writtenIDs())
	assert.Equal(t, 1, backend.callCount("Delete"))

	a, ok := backend.get(todos, "a")
	require.True(t, ok)
	assert.Equal(t, "v2", a.Fields["title"])
}

func TestPush_CreateMutatedWhileInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockNetworkGateway(ctrl)
	svc, storages := newTestServices(t, gateway, nil, false)
	ds := openStore(t, svc, todos, models.ModeSync)
	ctx := context.Background()

	draft, err := ds.Save(ctx, todo("", "draft"))
	require.NoError(t, err)

	gateway.EXPECT().
		Create(gomock.Any(), todos, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, e models.Entity) (models.Entity, error) {
			assert.Equal(t, draft.ID, e.ID)
			_, err := ds.Save(ctx, models.NewEntity(e.ID, map[string]any{"title": "edited"}))
			assert.NoError(t, err)

			created := e.Clone()
			created.ID = "srv-9"
			created.Metadata = models.Metadata{LastModified: "2026-01-01T00:00:01.000Z", EntityCreated: "2026-01-01T00:00:01.000Z"}
			return created, nil
		})
	gateway.EXPECT().
		Update(gomock.Any(), todos, "srv-9", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, e models.Entity) (models.Entity, error) {
			assert.Equal(t, "edited", e.Fields["title"])
			return e, nil
		})

	res, err := ds.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.PushCount)
	assert.Empty(t, res.Errors)

	_, err = storages.EntityCache(todos).Get(ctx, draft.ID)
	assert.ErrorIs(t, err, store.ErrEntityNotFound)

	moved, err := storages.EntityCache(todos).Get(ctx, "srv-9")
	require.NoError(t, err)
	assert.Equal(t, "edited", moved.Fields["title"])
	assert.Equal(t, "2026-01-01T00:00:01.000Z", moved.Metadata.EntityCreated)

	count, err := ds.GetSyncCount(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// peekHookStorages runs afterPeek once, right after the push loop has read
// the head of a queue and before it claims the action.
type peekHookStorages struct {
	*store.ClientStorages
	afterPeek func()
}

func (s *peekHookStorages) PendingWriteQueue(collection string) store.PendingWriteQueue {
	return &peekHookQueue{PendingWriteQueue: s.ClientStorages.PendingWriteQueue(collection), storages: s}
}

type peekHookQueue struct {
	store.PendingWriteQueue
	storages *peekHookStorages
}

func (q *peekHookQueue) Peek(ctx context.Context) (models.PendingWriteAction, bool, error) {
	action, ok, err := q.PendingWriteQueue.Peek(ctx)
	if hook := q.storages.afterPeek; ok && hook != nil {
		q.storages.afterPeek = nil
		hook()
	}
	return action, ok, err
}

func TestPush_CreateRemovedBeforeSendIsNotSent(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()

	storages, err := store.NewClientStorages(ctx,
		config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	hooked := &peekHookStorages{ClientStorages: storages}
	svc := NewClientServices(hooked, backend, nil, config.ClientStore{Mode: models.ModeSync}, logger.Nop())
	ds := openStore(t, svc, todos, models.ModeSync)

	draft, err := ds.Save(ctx, todo("", "draft"))
	require.NoError(t, err)

	// the user deletes the draft after the push loop picked it up
	hooked.afterPeek = func() {
		removed, err := ds.Remove(ctx, draft.ID)
		assert.NoError(t, err)
		assert.Equal(t, 1, removed)
	}

	res, err := ds.Push(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.PushCount)
	assert.Empty(t, res.Errors)
	assert.Zero(t, backend.callCount("Create"))
	assert.Zero(t, backend.size(todos))

	count, err := ds.GetSyncCount(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPush_CreateRemovedWhileInFlightIsDeletedOnBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockNetworkGateway(ctrl)
	svc, storages := newTestServices(t, gateway, nil, false)
	ds := openStore(t, svc, todos, models.ModeSync)
	ctx := context.Background()

	draft, err := ds.Save(ctx, todo("", "draft"))
	require.NoError(t, err)

	gomock.InOrder(
		gateway.EXPECT().
			Create(gomock.Any(), todos, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, e models.Entity) (models.Entity, error) {
				removed, err := ds.Remove(ctx, draft.ID)
				assert.NoError(t, err)
				assert.Equal(t, 1, removed)

				created := e.Clone()
				created.ID = "srv-7"
				return created, nil
			}),
		gateway.EXPECT().Delete(gomock.Any(), todos, "srv-7").Return(1, nil),
	)

	res, err := ds.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.PushCount)
	assert.Empty(t, res.Errors)

	for _, id := range []string{draft.ID, "srv-7"} {
		_, err = storages.EntityCache(todos).Get(ctx, id)
		assert.ErrorIs(t, err, store.ErrEntityNotFound)
	}

	count, err := ds.GetSyncCount(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPush_UpdateMutatedWhileInFlightKeepsLocalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockNetworkGateway(ctrl)
	svc, storages := newTestServices(t, gateway, nil, false)
	ds := openStore(t, svc, todos, models.ModeSync)
	ctx := context.Background()

	_, err := ds.Save(ctx, todo("u1", "first"))
	require.NoError(t, err)

	gomock.InOrder(
		gateway.EXPECT().
			Update(gomock.Any(), todos, "u1", gomock.Any()).
			DoAndReturn(func(ctx context.Context, _, id string, e models.Entity) (models.Entity, error) {
				_, err := ds.Save(ctx, todo(id, "newer"))
				assert.NoError(t, err)
				return e, nil
			}),
		gateway.EXPECT().
			Update(gomock.Any(), todos, "u1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, e models.Entity) (models.Entity, error) {
				assert.Equal(t, "newer", e.Fields["title"])
				return e, nil
			}),
	)

	res, err := ds.Push(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.PushCount)

	cached, err := storages.EntityCache(todos).Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "newer", cached.Fields["title"])
}

func TestPush_CancelledContext(t *testing.T) {
	backend := newFakeBackend()
	svc, _ := newTestServices(t, backend, nil, false)
	ds := openStore(t, svc, todos, models.ModeSync)

	saveN(t, ds, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ds.Push(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, backend.totalCalls())

	count, err := ds.GetSyncCount(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPush_LocalStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockEntityCache(ctrl)
	queue := mock.NewMockPendingWriteQueue(ctrl)
	gateway := mock.NewMockNetworkGateway(ctrl)

	diskErr := errors.New("disk I/O error")
	queue.EXPECT().Peek(gomock.Any()).Return(models.PendingWriteAction{}, false, diskErr)

	push := newPushCoordinator(todos, cache, queue, gateway, nil, newCollectionLock())
	_, err := push.Push(context.Background())
	assert.ErrorIs(t, err, diskErr)
}

func TestPush_OrphanedActionIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockEntityCache(ctrl)
	queue := mock.NewMockPendingWriteQueue(ctrl)
	gateway := mock.NewMockNetworkGateway(ctrl)

	orphan := models.PendingWriteAction{Seq: 1, Collection: todos, EntityID: "lost", Verb: models.VerbUpdate}
	gomock.InOrder(
		queue.EXPECT().Peek(gomock.Any()).Return(orphan, true, nil),
		cache.EXPECT().Get(gomock.Any(), "lost").Return(models.Entity{}, store.ErrEntityNotFound),
		queue.EXPECT().Dequeue(gomock.Any(), orphan).Return(true, nil),
		queue.EXPECT().Peek(gomock.Any()).Return(models.PendingWriteAction{}, false, nil),
	)

	push := newPushCoordinator(todos, cache, queue, gateway, nil, newCollectionLock())
	res, err := push.Push(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.PushCount)
	assert.Empty(t, res.Errors)
}

func TestPush_ChangedActionIsPeekedAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockEntityCache(ctrl)
	queue := mock.NewMockPendingWriteQueue(ctrl)
	gateway := mock.NewMockNetworkGateway(ctrl)

	stale := models.PendingWriteAction{Seq: 1, Collection: todos, EntityID: "a", Verb: models.VerbUpdate}
	fresh := stale
	fresh.Revision = 1
	entity := todo("a", "x")

	gomock.InOrder(
		queue.EXPECT().Peek(gomock.Any()).Return(stale, true, nil),
		cache.EXPECT().Get(gomock.Any(), "a").Return(entity, nil),
		queue.EXPECT().MarkSent(gomock.Any(), stale).Return(false, nil),
		queue.EXPECT().Peek(gomock.Any()).Return(fresh, true, nil),
		cache.EXPECT().Get(gomock.Any(), "a").Return(entity, nil),
		queue.EXPECT().MarkSent(gomock.Any(), fresh).Return(true, nil),
		gateway.EXPECT().Update(gomock.Any(), todos, "a", entity).Return(entity, nil),
		queue.EXPECT().Dequeue(gomock.Any(), fresh).Return(true, nil),
		cache.EXPECT().Upsert(gomock.Any(), entity).Return(nil),
		queue.EXPECT().Peek(gomock.Any()).Return(models.PendingWriteAction{}, false, nil),
	)

	push := newPushCoordinator(todos, cache, queue, gateway, nil, newCollectionLock())
	res, err := push.Push(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.PushCount)
	assert.Empty(t, res.Errors)
}

func TestPush_CommitFailureIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockEntityCache(ctrl)
	queue := mock.NewMockPendingWriteQueue(ctrl)
	gateway := mock.NewMockNetworkGateway(ctrl)

	action := models.PendingWriteAction{Seq: 1, Collection: todos, EntityID: "a", Verb: models.VerbUpdate}
	entity := todo("a", "x")
	writeErr := errors.New("database is locked")

	queue.EXPECT().Peek(gomock.Any()).Return(action, true, nil)
	cache.EXPECT().Get(gomock.Any(), "a").Return(entity, nil)
	queue.EXPECT().MarkSent(gomock.Any(), action).Return(true, nil)
	gateway.EXPECT().Update(gomock.Any(), todos, "a", entity).Return(entity, nil)
	queue.EXPECT().Dequeue(gomock.Any(), action).Return(false, writeErr)

	push := newPushCoordinator(todos, cache, queue, gateway, nil, newCollectionLock())
	_, err := push.Push(context.Background())
	assert.ErrorIs(t, err, writeErr)
}
