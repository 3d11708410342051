// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/MKhiriev/go-offline-store/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Only the store mode
// can be checked here; the rest depends on which runtime consumes it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Store.Mode != "" {
		if _, err := models.ParseStoreMode(string(cfg.Store.Mode)); err != nil {
			return ErrInvalidStoreConfigs
		}
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.AppKey == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, err := models.ParseStoreMode(string(cfg.Store.Mode)); err != nil {
		return ErrInvalidStoreConfigs
	}
	if cfg.Store.Mode.Durable() && len(cfg.Store.Collections) == 0 {
		return ErrInvalidStoreConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
