// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/splitbill-tui/internal/cli"
	"github.com/jeranaias/splitbill-tui/internal/config"
)

func TestApplyArgs_Overrides(t *testing.T) {
	cfg := config.Default()
	err := applyArgs(cfg, cli.Args{
		Theme:       "LIGHT",
		LogFile:     "/tmp/x.log",
		LogLevel:    "debug",
		NoAltScreen: true,
		NoSeed:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "/tmp/x.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.UI.AltScreen)
	assert.False(t, cfg.Seed.Enabled)
}

func TestApplyArgs_RejectsBadTheme(t *testing.T) {
	err := applyArgs(config.Default(), cli.Args{Theme: "neon"})
	require.Error(t, err)
}

func TestLoadConfig_FromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ncurrency = \"€\"\n"), 0600))

	cfg, err := loadConfig(cli.Args{ConfigPath: path, NoSeed: true})
	require.NoError(t, err)
	assert.Equal(t, "€", cfg.UI.Currency)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, path, configPath(cfg, cli.Args{}))
}

func TestRunSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runSummary(&buf, config.Default(), 80))

	out := buf.String()
	assert.Contains(t, out, "Clark")
	assert.Contains(t, out, "Sarah")
	assert.Contains(t, out, "Anthony")
}

func TestRunSummary_NoSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Seed.Enabled = false

	var buf bytes.Buffer
	require.NoError(t, runSummary(&buf, cfg, 80))
	assert.Contains(t, buf.String(), "No friends yet")
}

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.toml")

	var buf bytes.Buffer
	require.NoError(t, runInit(&buf, cli.Args{ConfigPath: path, Theme: "dark"}))
	assert.Contains(t, buf.String(), path)

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.UI.Theme)

	// never overwrites
	require.Error(t, runInit(&buf, cli.Args{ConfigPath: path}))
}
