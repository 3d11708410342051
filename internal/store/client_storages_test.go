package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-offline-store/internal/config"
	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/models"
)

func TestClientStorages_PersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "nested", "store.db")}}

	storages, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, storages.EntityCache("todos").Upsert(ctx, models.NewEntity("a", map[string]any{"x": 1})))
	require.NoError(t, storages.PendingWriteQueue("todos").Enqueue(ctx, models.PendingWriteAction{EntityID: "a", Verb: models.VerbUpdate}))
	require.NoError(t, storages.Close())

	reopened, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	entity, err := reopened.EntityCache("todos").Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), entity.Fields["x"])

	count, err := reopened.PendingWriteQueue("todos").Count(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestClientStorages_Wipe(t *testing.T) {
	ctx := context.Background()
	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	for _, collection := range []string{"todos", "notes"} {
		require.NoError(t, storages.EntityCache(collection).Upsert(ctx, models.NewEntity("a", nil)))
		require.NoError(t, storages.PendingWriteQueue(collection).Enqueue(ctx, models.PendingWriteAction{EntityID: "a", Verb: models.VerbDelete}))
		require.NoError(t, storages.DeltaTracker(collection).Save(ctx, models.DeltaMarker{QueryFingerprint: "fp", ServerMarker: "m"}))
	}

	require.NoError(t, storages.Wipe(ctx))

	count, err := storages.PendingWriteQueue("todos").Count(ctx, true)
	require.NoError(t, err)
	assert.Zero(t, count)

	for _, collection := range []string{"todos", "notes"} {
		n, err := storages.EntityCache(collection).CountAll(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		_, ok, err := storages.DeltaTracker(collection).Get(ctx, "fp")
		require.NoError(t, err)
		assert.False(t, ok)
	}
}
