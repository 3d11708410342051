// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/internal/utils"
)

const defaultSyncInterval = 5 * time.Minute

type syncWorker struct {
	stores   []Syncer
	interval time.Duration
	ids      *utils.UUIDGenerator
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates a worker that syncs every store on a ticker. If
// interval is zero or negative it defaults to 5 minutes. The worker is idle
// until Run is called.
func NewSyncWorker(stores []Syncer, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	return &syncWorker{
		stores:   stores,
		interval: interval,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Run implements Worker. It stops any previously running loop, then
// launches a goroutine that syncs every store each interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (w *syncWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(w.logger.WithContext(ctx))
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.syncAll(jobCtx)
			}
		}
	}()
}

// Stop implements Worker.
func (w *syncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// syncAll syncs the stores one after another. A failing store does not
// keep the others from syncing. All syncs of one round share a sync id.
func (w *syncWorker) syncAll(ctx context.Context) {
	syncID := w.ids.Generate()
	ctx = utils.WithSyncID(ctx, syncID)

	for _, store := range w.stores {
		if ctx.Err() != nil {
			return
		}

		result, err := store.Sync(ctx, nil)
		if err != nil {
			w.logger.Err(err).
				Str("func", "syncWorker.syncAll").
				Str("sync_id", syncID).
				Str("collection", store.Collection()).
				Msg("scheduled sync failed")
			continue
		}
		if result != nil && result.HasErrors() {
			w.logger.Warn().Err(result.Err()).
				Str("func", "syncWorker.syncAll").
				Str("sync_id", syncID).
				Str("collection", store.Collection()).
				Int("pushed", result.Push.PushCount).
				Int("pulled", result.Pull.PullCount).
				Msg("scheduled sync finished with errors")
		}
	}
}
