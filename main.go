// splitbill - Split bills with friends from the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jeranaias/splitbill-tui/internal/cli"
	"github.com/jeranaias/splitbill-tui/internal/config"
	"github.com/jeranaias/splitbill-tui/internal/friend"
	"github.com/jeranaias/splitbill-tui/internal/ledger"
	"github.com/jeranaias/splitbill-tui/internal/logging"
	"github.com/jeranaias/splitbill-tui/internal/ui/app"
	"github.com/jeranaias/splitbill-tui/internal/ui/components"
	"github.com/jeranaias/splitbill-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		cli.ShowUsage(os.Stderr)
		os.Exit(2)
	}

	switch cmd {
	case cli.CmdHelp:
		cli.ShowUsage(os.Stdout)
		return
	case cli.CmdVersion:
		cli.ShowVersion(os.Stdout)
		return
	case cli.CmdInit:
		if err := runInit(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Piped output gets the summary; there is no terminal to draw on.
	if cmd == cli.CmdSummary || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runSummary(os.Stdout, cfg, terminalWidth()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(cfg, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error running splitbill: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// loadConfig loads the config file (--config or the default location) and
// applies command-line overrides on top.
func loadConfig(args cli.Args) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := applyArgs(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyArgs overrides config values with flags given on the command line.
func applyArgs(cfg *config.Config, args cli.Args) error {
	if args.Theme != "" {
		cfg.UI.Theme = args.Theme
	}
	if args.LogFile != "" {
		cfg.Log.File = args.LogFile
	}
	if args.LogLevel != "" {
		cfg.Log.Level = args.LogLevel
	}
	if args.NoAltScreen {
		cfg.UI.AltScreen = false
	}
	if args.NoSeed {
		cfg.Seed.Enabled = false
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// configPath is the file to watch for live reloads.
func configPath(cfg *config.Config, args cli.Args) string {
	if cfg.Source != "" {
		return cfg.Source
	}
	if args.ConfigPath != "" {
		return args.ConfigPath
	}
	path, err := config.ConfigPathTOML()
	if err != nil {
		return ""
	}
	return path
}

// =============================================================================
// COMMANDS
// =============================================================================

// runInit writes a default config file unless one already exists.
func runInit(w io.Writer, args cli.Args) error {
	path := args.ConfigPath
	if path == "" {
		p, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		path = p
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	cfg := config.Default()
	if err := applyArgs(cfg, args); err != nil {
		return err
	}
	if err := config.SaveTOML(cfg, path); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

// runSummary prints the balances of a fresh session.
func runSummary(w io.Writer, cfg *config.Config, width int) error {
	state := ledger.New(cfg.SeedFriends(friend.NewUUID))
	theme := styles.NewTheme(cfg.UI.Theme)

	out, err := components.RenderSummary(state, cfg.UI.Currency, theme.GlamourStyle(), width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func runTUI(cfg *config.Config, args cli.Args) error {
	logger, closeLog := openLogger(cfg)
	defer closeLog()

	m := app.New(app.Options{
		Friends:       cfg.SeedFriends(friend.NewUUID),
		Currency:      cfg.UI.Currency,
		DefaultAvatar: cfg.UI.DefaultAvatar,
		NewID:         friend.NewUUID,
		Theme:         styles.NewTheme(cfg.UI.Theme),
		Logger:        logger,
		ShowHelp:      cfg.UI.ShowHelp,
		ToastDuration: components.DefaultToastDuration,
	})

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watchConfig(ctx, p, configPath(cfg, args), args, logger)

	_, err := p.Run()
	return err
}

// watchConfig forwards config file changes into the running program.
func watchConfig(ctx context.Context, p *tea.Program, path string, args cli.Args, logger *slog.Logger) {
	if path == "" {
		return
	}
	err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
		if err == nil {
			err = applyArgs(cfg, args)
		}
		if err != nil {
			cfg = nil
		}
		p.Send(app.ConfigReloadedMsg{Config: cfg, Err: err})
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("config watch disabled", "path", path, "error", err)
	}
}

// openLogger opens the log file. The TUI owns the terminal, so when the
// file cannot be opened logs are dropped rather than printed.
func openLogger(cfg *config.Config) (*slog.Logger, func()) {
	path, err := cfg.LogPath()
	if err != nil {
		return logging.Discard(), func() {}
	}
	logger, f, err := logging.OpenFile(path, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), func() {}
	}
	return logger, func() { f.Close() }
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
