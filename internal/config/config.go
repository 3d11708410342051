// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-offline-store/models"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the initial bearer token
	// and the log file location.
	App App `envPrefix:"APP_"`
	// Storage holds the local SQLite settings.
	Storage Storage `envPrefix:"STORAGE_"`
	// Adapter holds the backend address and request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`
	// Store holds the data-store behaviour: mode, delta-set fetching and
	// the collections to keep in sync.
	Store Store `envPrefix:"STORE_"`
	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`
	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// AuthToken is the bearer token used until the first refresh.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`
	// LogFile is where the client writes its JSON logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path or URI (e.g. "file:store.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the settings of the backend transport.
type Adapter struct {
	// HTTPAddress is the backend base URL (e.g. "https://baas.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// AppKey identifies the application on the backend; collection
	// endpoints live under /appdata/<AppKey>/.
	// Env: ADAPTER_APP_KEY
	AppKey string `env:"APP_KEY"`
	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Store holds the externally configurable behaviour of the data stores.
type Store struct {
	// Mode is one of NETWORK, CACHE or SYNC.
	// Env: STORE_MODE
	Mode models.StoreMode `env:"MODE"`
	// DeltaSetFetchingEnabled turns on incremental pulls.
	// Env: STORE_DELTA_SET_FETCHING
	DeltaSetFetchingEnabled bool `env:"DELTA_SET_FETCHING"`
	// Collections lists the collections the sync worker keeps in sync.
	// Env: STORE_COLLECTIONS (comma separated)
	Collections []string `env:"COLLECTIONS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is how often the sync worker runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
