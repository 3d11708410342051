package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-offline-store/internal/adapter"
	"github.com/MKhiriev/go-offline-store/internal/config"
	"github.com/MKhiriev/go-offline-store/internal/logger"
	"github.com/MKhiriev/go-offline-store/internal/store"
	"github.com/MKhiriev/go-offline-store/models"
)

const todos = "todos"

// newTestServices wires a client context over an in-memory SQLite database.
func newTestServices(t *testing.T, gateway adapter.NetworkGateway, auth adapter.AuthProvider, deltaFetching bool) (*ClientServices, *store.ClientStorages) {
	t.Helper()

	storages, err := store.NewClientStorages(context.Background(),
		config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	svc := NewClientServices(storages, gateway, auth,
		config.ClientStore{Mode: models.ModeSync, DeltaSetFetchingEnabled: deltaFetching}, logger.Nop())
	return svc, storages
}

func openStore(t *testing.T, svc *ClientServices, collection string, mode models.StoreMode) DataStore {
	t.Helper()
	ds, err := svc.DataStore(collection, mode)
	require.NoError(t, err)
	return ds
}

// mockStorages serves the same mocks for every collection.
type mockStorages struct {
	cache   store.EntityCache
	queue   store.PendingWriteQueue
	tracker store.DeltaTracker
	wipeErr error
	wiped   int
}

func (m *mockStorages) EntityCache(string) store.EntityCache             { return m.cache }
func (m *mockStorages) PendingWriteQueue(string) store.PendingWriteQueue { return m.queue }
func (m *mockStorages) DeltaTracker(string) store.DeltaTracker           { return m.tracker }

func (m *mockStorages) Wipe(context.Context) error {
	m.wiped++
	return m.wipeErr
}

func todo(id, title string) models.Entity {
	return models.NewEntity(id, map[string]any{"title": title, "done": false})
}
