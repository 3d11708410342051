package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-offline-store/models"
)

// ClientApp holds client-side process settings.
type ClientApp struct {
	// AuthToken is the initial bearer token.
	AuthToken string
	// LogFile is the path of the client log file.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// AppKey is the backend application key.
	AppKey string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientStore holds data-store behaviour.
type ClientStore struct {
	Mode                    models.StoreMode
	DeltaSetFetchingEnabled bool
	Collections             []string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync worker runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Store   ClientStore
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime. A missing
// store mode defaults to SYNC.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	mode := cfg.Store.Mode
	if mode == "" {
		mode = models.ModeSync
	}

	return &ClientConfig{
		App: ClientApp{
			AuthToken: cfg.App.AuthToken,
			LogFile:   cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			AppKey:         cfg.Adapter.AppKey,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Store: ClientStore{
			Mode:                    mode,
			DeltaSetFetchingEnabled: cfg.Store.DeltaSetFetchingEnabled,
			Collections:             append([]string(nil), cfg.Store.Collections...),
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}
}
