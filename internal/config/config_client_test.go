package config

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-offline-store/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "file:store.db"}},
		Adapter: Adapter{
			HTTPAddress:    "https://baas.example.com",
			AppKey:         "kid_123",
			RequestTimeout: 10 * time.Second,
		},
		Store: Store{
			Mode:        models.ModeSync,
			Collections: []string{"todos"},
		},
		Workers: Workers{SyncInterval: time.Minute},
	}
}

func TestNewClientConfig_DefaultsModeToSync(t *testing.T) {
	cfg := validStructuredConfig()
	cfg.Store.Mode = ""

	clientCfg := NewClientConfig(cfg)
	assert.Equal(t, models.ModeSync, clientCfg.Store.Mode)
	require.NoError(t, clientCfg.validate())
}

func TestNewClientConfig_CopiesCollections(t *testing.T) {
	cfg := validStructuredConfig()

	clientCfg := NewClientConfig(cfg)
	cfg.Store.Collections[0] = "changed"

	assert.Equal(t, []string{"todos"}, clientCfg.Store.Collections)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "missing app key",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.AppKey = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unknown mode",
			mutate:  func(cfg *StructuredConfig) { cfg.Store.Mode = "OFFLINE" },
			wantErr: ErrInvalidStoreConfigs,
		},
		{
			name:    "durable mode without collections",
			mutate:  func(cfg *StructuredConfig) { cfg.Store.Collections = nil },
			wantErr: ErrInvalidStoreConfigs,
		},
		{
			name: "network mode without collections",
			mutate: func(cfg *StructuredConfig) {
				cfg.Store.Mode = models.ModeNetwork
				cfg.Store.Collections = nil
			},
		},
		{
			name:    "zero sync interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.SyncInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)

			err := NewClientConfig(cfg).validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
