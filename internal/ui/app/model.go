// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/splitbill-tui/internal/friend"
	"github.com/jeranaias/splitbill-tui/internal/logging"
	"github.com/jeranaias/splitbill-tui/internal/ledger"
	"github.com/jeranaias/splitbill-tui/internal/ui/components"
	"github.com/jeranaias/splitbill-tui/internal/ui/styles"
)

// =============================================================================
// FOCUS
// =============================================================================

// Focus is the area receiving key input.
type Focus int

const (
	FocusList Focus = iota
	FocusAddFriend
	FocusSplitBill
)

// String returns the log name of the focus.
func (f Focus) String() string {
	switch f {
	case FocusList:
		return "list"
	case FocusAddFriend:
		return "addFriend"
	case FocusSplitBill:
		return "splitBill"
	default:
		return "unknown"
	}
}

// =============================================================================
// MODEL
// =============================================================================

// Options configures a new Model.
type Options struct {
	Friends       []friend.Friend
	Currency      string
	DefaultAvatar string
	NewID         friend.IDGenerator
	Theme         *styles.Theme
	Logger        *slog.Logger
	ShowHelp      bool

	// ToastDuration is how long notices stay visible; <= 0 keeps them
	// until newer ones push them out.
	ToastDuration time.Duration
}

// Model is the root model. It is the only owner of the ledger state.
type Model struct {
	state  ledger.State
	cursor int
	focus  Focus

	addForm   *components.FormAddFriend
	splitForm *components.FormSplitBill // nil while nothing is selected
	header    *components.Header
	toasts    *components.Toasts

	help        help.Model
	keys        KeyMap
	formKeys    components.FormKeyMap
	showHelp    bool
	showSummary bool
	summary     string

	currency string
	theme    *styles.Theme
	logger   *slog.Logger

	width  int
	height int
}

// New creates the root model.
func New(opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme("auto")
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Currency == "" {
		opts.Currency = "$"
	}
	if opts.NewID == nil {
		opts.NewID = friend.NewUUID
	}

	header := components.NewHeader(opts.Theme)
	header.Currency = opts.Currency

	m := Model{
		state:    ledger.New(opts.Friends),
		focus:    FocusList,
		addForm:  components.NewFormAddFriend(opts.Theme, opts.DefaultAvatar, opts.NewID, opts.Logger),
		header:   header,
		toasts:   components.NewToasts(opts.ToastDuration),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		formKeys: components.DefaultFormKeyMap(),
		showHelp: opts.ShowHelp,
		currency: opts.Currency,
		theme:    opts.Theme,
		logger:   opts.Logger,
		width:    80,
		height:   24,
	}
	m.theme.SetSize(m.width, m.height)
	m.header.SetWidth(m.width - 2)
	m.header.SetSummary(m.state.Summary())
	m.help.Width = m.width - 2
	return m
}

// =============================================================================
// ACCESSORS
// =============================================================================

// State returns the current ledger state.
func (m Model) State() ledger.State {
	return m.state
}

// Focus returns the area receiving key input.
func (m Model) Focus() Focus {
	return m.focus
}

// Cursor returns the highlighted list index.
func (m Model) Cursor() int {
	return m.cursor
}

// Currency returns the currency symbol in use.
func (m Model) Currency() string {
	return m.currency
}

// SplitForm returns the mounted split-bill form, or nil.
func (m Model) SplitForm() *components.FormSplitBill {
	return m.splitForm
}

// Toasts returns the visible notices.
func (m Model) Toasts() []components.Toast {
	return m.toasts.Items()
}

// AddForm returns the add-friend form.
func (m Model) AddForm() *components.FormAddFriend {
	return m.addForm
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "friends", m.state.Len())
	return nil
}
