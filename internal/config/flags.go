package config

import (
	"flag"
	"strings"
	"time"

	"github.com/MKhiriev/go-offline-store/models"
)

// CollectionList is a comma-separated list of collection names.
// It implements the flag.Value interface.
type CollectionList []string

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend base URL
//	-app-key backend application key
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mode store mode (NETWORK, CACHE or SYNC)
//	-delta enable delta-set fetching
//	-collections comma-separated collections to sync
//	-sync-interval sync worker interval (e.g., "1m")
//	-token initial bearer token
//	-log-file log file path
func ParseFlags() *StructuredConfig {
	var httpAddress string
	var appKey string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var mode string
	var deltaSetFetching bool
	var collections CollectionList
	var syncInterval time.Duration
	var authToken string
	var logFile string

	flag.StringVar(&httpAddress, "a", "", "Backend base URL")
	flag.StringVar(&appKey, "app-key", "", "Backend application key")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&mode, "mode", "", "Store mode: NETWORK, CACHE or SYNC")
	flag.BoolVar(&deltaSetFetching, "delta", false, "Enable delta-set fetching")
	flag.Var(&collections, "collections", "Comma-separated collections to sync")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Sync worker interval (e.g., 1m)")
	flag.StringVar(&authToken, "token", "", "Initial bearer token")
	flag.StringVar(&logFile, "log-file", "", "Log file path")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AuthToken: authToken,
			LogFile:   logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddress,
			AppKey:         appKey,
			RequestTimeout: requestTimeout,
		},
		Store: Store{
			Mode:                    models.StoreMode(strings.ToUpper(mode)),
			DeltaSetFetchingEnabled: deltaSetFetching,
			Collections:             collections,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the collections joined by commas.
func (c *CollectionList) String() string {
	if c == nil {
		return ""
	}
	return strings.Join(*c, ",")
}

// Set splits s by commas and appends the non-empty trimmed names.
// Repeated flags accumulate.
func (c *CollectionList) Set(s string) error {
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			*c = append(*c, name)
		}
	}
	return nil
}
