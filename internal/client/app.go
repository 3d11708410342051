package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-offline-store/internal/config"
	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/internal/service"
	"github.com/MKhiriev/go-offline-store/internal/workers"
	"github.com/MKhiriev/go-offline-store/models"
)

// ErrNoCollections is returned when there is nothing to keep in sync.
var ErrNoCollections = errors.New("no collections configured")

type App struct {
	stores    []service.DataStore
	workers   *workers.Workers
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// NewApp opens a data store in the configured mode for every configured
// collection. Stores opened in NETWORK mode keep no local state and are left
// out of background syncing.
func NewApp(
	services *service.ClientServices,
	storeCfg config.ClientStore,
	workersCfg config.ClientWorkers,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) (*App, error) {
	if len(storeCfg.Collections) == 0 {
		return nil, ErrNoCollections
	}

	stores := make([]service.DataStore, 0, len(storeCfg.Collections))
	syncers := make([]workers.Syncer, 0, len(storeCfg.Collections))
	for _, collection := range storeCfg.Collections {
		ds, err := services.DataStore(collection, storeCfg.Mode)
		if err != nil {
			return nil, fmt.Errorf("open collection %q: %w", collection, err)
		}
		stores = append(stores, ds)
		if ds.Mode().Durable() {
			syncers = append(syncers, ds)
		}
	}

	if len(syncers) == 0 {
		log.Warn().
			Str("func", "client.NewApp").
			Str("mode", string(storeCfg.Mode)).
			Msg("no collection keeps local state, background sync disabled")
	}

	return &App{
		stores:    stores,
		workers:   workers.NewWorkers(workers.NewSyncWorker(syncers, workersCfg.SyncInterval, log)),
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run syncs every durable collection once, starts the background workers and
// blocks until ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	a.logger.Info().
		Str("build_version", a.buildInfo.BuildVersion()).
		Str("build_date", a.buildInfo.BuildDate()).
		Str("build_commit", a.buildInfo.BuildCommit()).
		Int("collections", len(a.stores)).
		Msg("offline store started")

	for _, ds := range a.stores {
		if err := a.initialSync(ctx, ds); err != nil {
			return err
		}
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	<-ctx.Done()

	pending, err := a.pendingWrites(context.WithoutCancel(ctx))
	if err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("failed to count pending writes")
	}
	a.logger.Info().Int("pending_writes", pending).Msg("offline store stopped")
	return nil
}

// initialSync reports backend failures and keeps going; only local failures
// stop the start-up.
func (a *App) initialSync(ctx context.Context, ds service.DataStore) error {
	if !ds.Mode().Durable() {
		return nil
	}

	result, err := ds.Sync(ctx, nil)
	switch {
	case ctx.Err() != nil:
		return nil
	case err != nil:
		return fmt.Errorf("initial sync of %q: %w", ds.Collection(), err)
	}

	if result.HasErrors() {
		a.logger.Warn().Err(result.Err()).
			Str("func", "App.initialSync").
			Str("collection", ds.Collection()).
			Msg("initial sync finished with errors")
	}
	return nil
}

func (a *App) pendingWrites(ctx context.Context) (int, error) {
	if len(a.stores) == 0 {
		return 0, nil
	}
	return a.stores[0].GetSyncCount(ctx, true)
}
