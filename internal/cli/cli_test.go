// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ARG PARSER TESTS
// =============================================================================

func TestArgParser_Forms(t *testing.T) {
	p, err := NewArgParser([]string{"summary", "--theme", "dark", "--log-level=debug", "--no-seed"}, "no-seed")
	require.NoError(t, err)

	assert.Equal(t, "summary", p.Subcommand())
	assert.Equal(t, "dark", p.Flag("theme"))
	assert.Equal(t, "debug", p.Flag("--log-level"))
	assert.True(t, p.BoolFlag("no-seed"))
	assert.True(t, p.HasFlag("theme"))
	assert.False(t, p.HasFlag("config"))
	assert.Equal(t, 1, p.PositionalCount())
}

func TestArgParser_BoolFlagDoesNotConsumeNext(t *testing.T) {
	p, err := NewArgParser([]string{"--no-seed", "summary"}, "no-seed")
	require.NoError(t, err)

	assert.True(t, p.BoolFlag("no-seed"))
	assert.Equal(t, "summary", p.Subcommand())
}

func TestArgParser_ExplicitBool(t *testing.T) {
	p, err := NewArgParser([]string{"--no-seed=false"}, "no-seed")
	require.NoError(t, err)
	assert.False(t, p.BoolFlag("no-seed"))
	assert.True(t, p.HasFlag("no-seed"))

	_, err = NewArgParser([]string{"--no-seed=maybe"}, "no-seed")
	assert.Error(t, err)
}

func TestArgParser_MissingValue(t *testing.T) {
	_, err := NewArgParser([]string{"--theme"})
	assert.Error(t, err)

	_, err = NewArgParser([]string{"--theme", "--no-seed"}, "no-seed")
	assert.Error(t, err)
}

func TestArgParser_DoubleDash(t *testing.T) {
	p, err := NewArgParser([]string{"--", "--theme"})
	require.NoError(t, err)
	assert.Equal(t, "--theme", p.Subcommand())
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"YES", true, false},
		{"on", true, false},
		{"0", false, false},
		{"off", false, false},
		{"maybe", false, true},
	}
	for _, tc := range tests {
		got, err := ParseBoolString(tc.input)
		if tc.wantErr {
			assert.Error(t, err, tc.input)
			continue
		}
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

// =============================================================================
// PARSE TESTS
// =============================================================================

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		args []string
		want Command
	}{
		{nil, CmdTUI},
		{[]string{"tui"}, CmdTUI},
		{[]string{"summary"}, CmdSummary},
		{[]string{"SUM"}, CmdSummary},
		{[]string{"init"}, CmdInit},
		{[]string{"version"}, CmdVersion},
		{[]string{"-v"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"-h"}, CmdHelp},
		{[]string{"summary", "--help"}, CmdHelp},
	}
	for _, tc := range tests {
		cmd, _, err := Parse(tc.args)
		require.NoError(t, err, "%v", tc.args)
		assert.Equal(t, tc.want, cmd, "%v", tc.args)
	}
}

func TestParse_Flags(t *testing.T) {
	cmd, args, err := Parse([]string{
		"--config", "/tmp/c.toml",
		"--theme=light",
		"--log-file", "/tmp/s.log",
		"--log-level", "debug",
		"--no-alt-screen",
		"--no-seed",
		"summary",
	})
	require.NoError(t, err)

	assert.Equal(t, CmdSummary, cmd)
	assert.Equal(t, Args{
		ConfigPath:  "/tmp/c.toml",
		Theme:       "light",
		LogFile:     "/tmp/s.log",
		LogLevel:    "debug",
		NoAltScreen: true,
		NoSeed:      true,
	}, args)
}

func TestParse_Errors(t *testing.T) {
	tests := [][]string{
		{"frobnicate"},
		{"--bogus"},
		{"summary", "extra"},
		{"--theme"},
	}
	for _, args := range tests {
		_, _, err := Parse(args)
		require.Error(t, err, "%v", args)
		assert.True(t, errors.Is(err, ErrUsage), "%v: %v", args, err)
	}
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "tui", CmdTUI.String())
	assert.Equal(t, "summary", CmdSummary.String())
	assert.Equal(t, "init", CmdInit.String())
	assert.Equal(t, "unknown", Command(99).String())
}

// =============================================================================
// OUTPUT TESTS
// =============================================================================

func TestShowUsage(t *testing.T) {
	var buf bytes.Buffer
	ShowUsage(&buf)
	out := buf.String()
	for _, want := range []string{"summary", "--no-seed", "--theme", "add friend"} {
		assert.True(t, strings.Contains(out, want), "usage missing %q", want)
	}
}

func TestShowVersion(t *testing.T) {
	var buf bytes.Buffer
	ShowVersion(&buf)
	assert.Contains(t, buf.String(), "splitbill "+Version)
}
