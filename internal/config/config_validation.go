// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config serves both binaries, so only universally required
// fields are checked here; binary-specific checks live in the derived views
// (see [ClientConfig.validate]).
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.Interval <= 0 || cfg.Sync.MinTableInterval <= 0 {
		return ErrInvalidSyncConfigs
	}
	if cfg.Sync.MinTableInterval > cfg.Sync.Interval {
		return ErrInvalidSyncConfigs
	}

	return nil
}
