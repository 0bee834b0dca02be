// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/splitbill-tui/internal/friend"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// LAYOUT
	// ==========================================================================

	App          lipgloss.Style
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	Title        lipgloss.Style

	// ==========================================================================
	// FRIEND LIST
	// ==========================================================================

	FriendRow         lipgloss.Style
	FriendRowSelected lipgloss.Style
	Cursor            lipgloss.Style
	FriendName        lipgloss.Style
	Avatar            lipgloss.Style
	BalanceOwesYou    lipgloss.Style
	BalanceYouOwe     lipgloss.Style
	BalanceEven       lipgloss.Style

	// ==========================================================================
	// FORMS AND BUTTONS
	// ==========================================================================

	Label         lipgloss.Style
	Derived       lipgloss.Style
	Option        lipgloss.Style
	OptionActive  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// ==========================================================================
	// FOOTER
	// ==========================================================================

	Hint   lipgloss.Style
	Status lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
// mode is "dark", "light" or "auto"; auto asks the terminal.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(mode) {
	case "dark":
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case "light":
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle().Padding(0, 1)

	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.PanelFocused = t.Panel.
		BorderForeground(FocusRing)

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	// Friend list
	t.FriendRow = lipgloss.NewStyle().
		PaddingLeft(1)

	t.FriendRowSelected = t.FriendRow.
		Background(SelectionBg)

	t.Cursor = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.FriendName = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.Avatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Padding(0, 1)

	t.BalanceOwesYou = lipgloss.NewStyle().Foreground(Emerald)
	t.BalanceYouOwe = lipgloss.NewStyle().Foreground(Rose)
	t.BalanceEven = lipgloss.NewStyle().Foreground(TextSecondary)

	// Forms
	t.Label = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.Derived = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Option = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.OptionActive = t.Option.
		Bold(true).
		Foreground(TextInverse).
		Background(Amber)

	t.Button = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay).
		Padding(0, 2)

	t.ButtonFocused = t.Button.
		Bold(true).
		Foreground(TextInverse).
		Background(Purple)

	// Footer
	t.Hint = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Status = lipgloss.NewStyle().
		Foreground(Amber)
}

// BalanceStyle returns the style used for a balance message.
func (t *Theme) BalanceStyle(s friend.Standing) lipgloss.Style {
	switch s {
	case friend.OwesYou:
		return t.BalanceOwesYou
	case friend.YouOwe:
		return t.BalanceYouOwe
	default:
		return t.BalanceEven
	}
}

// GlamourStyle names the glamour standard style matching the theme.
func (t *Theme) GlamourStyle() string {
	if t.ColorProfile == termenv.Ascii {
		return "notty"
	}
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 80 {
		return LayoutNarrow
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 80 columns: forms below the list
	LayoutWide                     // list and split form side by side
)
