// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for splitbill.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - UIConfig: Theme, currency symbol and layout settings
//   - LogConfig: Log level and log file location
//   - SeedConfig: Friends shown when the app starts
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (SPLITBILL_*)
//   - ~/.splitbill/config.toml
//   - ~/.splitbill/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	friends, err := cfg.SeedFriends(friend.NewUUID)
//
// Watch re-reads a config file whenever it changes on disk.
package config
