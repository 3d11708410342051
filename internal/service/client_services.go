package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-offline-store/internal/adapter"
	"github.com/MKhiriev/go-offline-store/internal/config"
	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/internal/utils"
	"github.com/MKhiriev/go-offline-store/internal/validators"
	"github.com/MKhiriev/go-offline-store/models"
)

// ClientServices is the client context: it owns the collaborators shared by
// every data store and the per-collection locks that keep them consistent.
// Create one per process and per signed-in user.
type ClientServices struct {
	storages  LocalStorages
	gateway   adapter.NetworkGateway
	auth      adapter.AuthProvider
	ids       *utils.UUIDGenerator
	validator validators.Validator

	defaultMode   models.StoreMode
	deltaFetching bool

	mu    sync.Mutex
	locks map[string]*collectionLock

	logger *logger.Logger
}

// collectionLock serialises the work done on one collection.
//
// sync is held for the whole of Push, Pull, Sync, Purge and ClearCache. It is
// a channel so that waiting for it honours context cancellation.
//
// write is held while the cache and the queue of the collection are changed
// together: by Save and Remove, and by the commit step of Push and Pull.
type collectionLock struct {
	sync  chan struct{}
	write sync.Mutex
}

func newCollectionLock() *collectionLock {
	return &collectionLock{sync: make(chan struct{}, 1)}
}

func (l *collectionLock) acquire(ctx context.Context) error {
	select {
	case l.sync <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *collectionLock) release() {
	<-l.sync
}

// NewClientServices builds the client context. auth may be nil when the
// backend needs no credentials.
func NewClientServices(
	storages LocalStorages,
	gateway adapter.NetworkGateway,
	auth adapter.AuthProvider,
	storeCfg config.ClientStore,
	logger *logger.Logger,
) *ClientServices {
	mode := storeCfg.Mode
	if mode == "" {
		mode = models.ModeSync
	}

	return &ClientServices{
		storages:      storages,
		gateway:       gateway,
		auth:          auth,
		ids:           utils.NewUUIDGenerator(),
		validator:     validators.NewEntityValidator(),
		defaultMode:   mode,
		deltaFetching: storeCfg.DeltaSetFetchingEnabled,
		locks:         make(map[string]*collectionLock),
		logger:        logger,
	}
}

// DataStore opens collection in mode. An empty mode selects the configured
// default. Data stores opened for the same collection share their locks, so
// any number of them may be used concurrently.
func (s *ClientServices) DataStore(collection string, mode models.StoreMode) (DataStore, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return nil, ErrEmptyCollection
	}
	if mode == "" {
		mode = s.defaultMode
	}
	if _, err := models.ParseStoreMode(string(mode)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStoreMode, err)
	}

	lock := s.lockFor(collection)
	log := s.logger.WithCollection(collection)

	cache := s.storages.EntityCache(collection)
	queue := s.storages.PendingWriteQueue(collection)
	tracker := s.storages.DeltaTracker(collection)

	return &dataStore{
		collection: collection,
		mode:       mode,
		cache:      cache,
		queue:      queue,
		tracker:    tracker,
		gateway:    s.gateway,
		ids:        s.ids,
		validator:  s.validator,
		lock:       lock,
		push:       newPushCoordinator(collection, cache, queue, s.gateway, s.auth, lock),
		pull:       newPullCoordinator(collection, cache, queue, tracker, s.gateway, s.auth, lock, s.deltaFetching),
		logger:     log,
	}, nil
}

// Logout drops all local state: cached entities, pending writes and delta
// markers of every collection. It waits for running syncs of the
// collections opened so far.
func (s *ClientServices) Logout(ctx context.Context) error {
	s.mu.Lock()
	names := slices.Sorted(maps.Keys(s.locks))
	locks := make([]*collectionLock, 0, len(names))
	for _, name := range names {
		locks = append(locks, s.locks[name])
	}
	s.mu.Unlock()

	acquired := make([]*collectionLock, 0, len(locks))
	defer func() {
		for _, l := range acquired {
			l.write.Unlock()
			l.release()
		}
	}()
	for _, l := range locks {
		if err := l.acquire(ctx); err != nil {
			return err
		}
		l.write.Lock()
		acquired = append(acquired, l)
	}

	if err := s.storages.Wipe(ctx); err != nil {
		s.logger.Err(err).Str("func", "ClientServices.Logout").Msg("failed to wipe local state")
		return fmt.Errorf("wipe local state: %w", err)
	}

	s.logger.Info().Str("func", "ClientServices.Logout").Msg("local state wiped")
	return nil
}

func (s *ClientServices) lockFor(collection string) *collectionLock {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[collection]
	if !ok {
		l = newCollectionLock()
		s.locks[collection] = l
	}
	return l
}
