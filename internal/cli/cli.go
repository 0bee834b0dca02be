// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command selection, usage text and version output for splitbill.
package cli

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ErrUsage wraps every argument error; main prints usage for it.
var ErrUsage = errors.New("usage error")

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdSummary
	CmdInit
	CmdVersion
	CmdHelp
)

// String returns the subcommand name.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdSummary:
		return "summary"
	case CmdInit:
		return "init"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments. Empty strings mean "not given"; the
// config file and environment decide then.
type Args struct {
	ConfigPath  string
	Theme       string
	LogFile     string
	LogLevel    string
	NoAltScreen bool
	NoSeed      bool
}

var (
	stringFlags = []string{"config", "theme", "log-file", "log-level"}
	boolFlags   = []string{"no-alt-screen", "no-seed", "version", "help", "h", "v"}
)

const usageText = `splitbill - split bills with friends from the terminal

Usage:
  splitbill [flags] [command]

Commands:
  tui        Start the interactive interface (default)
  summary    Print the balance summary and exit
  init       Write a default config file (refuses to overwrite)
  version    Print version information

Flags:
  --config PATH       Config file (default ~/.splitbill/config.toml)
  --theme NAME        auto, dark or light
  --log-file PATH     Log file (default ~/.splitbill/splitbill.log)
  --log-level LEVEL   debug, info, warn or error
  --no-alt-screen     Render inline instead of the alternate screen
  --no-seed           Start with an empty friend list
  -v, --version       Print version information
  -h, --help          Show this help

Keys:
  up/down, k/j   move         enter   select / close
  a              add friend   s       summary
  tab            go to form   ?       help
  q, ctrl+c      quit

When stdout is not a terminal, splitbill prints the summary instead of
starting the interactive interface.
`

// Parse parses command-line arguments (without the program name).
func Parse(raw []string) (Command, Args, error) {
	p, err := NewArgParser(raw, boolFlags...)
	if err != nil {
		return CmdHelp, Args{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if unknown := unknownFlags(p); len(unknown) > 0 {
		return CmdHelp, Args{}, fmt.Errorf("%w: unknown flag --%s", ErrUsage, strings.Join(unknown, ", --"))
	}

	args := Args{
		ConfigPath:  p.Flag("config"),
		Theme:       p.Flag("theme"),
		LogFile:     p.Flag("log-file"),
		LogLevel:    p.Flag("log-level"),
		NoAltScreen: p.BoolFlag("no-alt-screen"),
		NoSeed:      p.BoolFlag("no-seed"),
	}

	switch {
	case p.BoolFlag("help") || p.BoolFlag("h"):
		return CmdHelp, args, nil
	case p.BoolFlag("version") || p.BoolFlag("v"):
		return CmdVersion, args, nil
	}

	if p.PositionalCount() > 1 {
		return CmdHelp, args, fmt.Errorf("%w: unexpected argument %q", ErrUsage, p.Positional(1))
	}

	switch strings.ToLower(p.Subcommand()) {
	case "", "tui":
		return CmdTUI, args, nil
	case "summary", "sum":
		return CmdSummary, args, nil
	case "init":
		return CmdInit, args, nil
	case "version":
		return CmdVersion, args, nil
	case "help":
		return CmdHelp, args, nil
	default:
		return CmdHelp, args, fmt.Errorf("%w: unknown command %q", ErrUsage, p.Subcommand())
	}
}

func unknownFlags(p *ArgParser) []string {
	known := make(map[string]bool)
	for _, n := range stringFlags {
		known[n] = true
	}
	for _, n := range boolFlags {
		known[n] = true
	}
	var unknown []string
	for _, n := range p.Names() {
		if !known[n] {
			unknown = append(unknown, n)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// ShowUsage writes the help text.
func ShowUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// ShowVersion writes version and build information.
func ShowVersion(w io.Writer) {
	fmt.Fprintf(w, "splitbill %s\n", Version)
	fmt.Fprintf(w, "  commit:  %s\n", GitCommit)
	fmt.Fprintf(w, "  built:   %s\n", BuildDate)
	fmt.Fprintf(w, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
