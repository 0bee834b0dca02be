// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/splitbill-tui/internal/friend"
	"github.com/jeranaias/splitbill-tui/internal/ledger"
	"github.com/jeranaias/splitbill-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Title bar with the running net balance
// =============================================================================

// Header represents the title bar component
type Header struct {
	Title    string // Main title (default: "splitbill")
	Summary  ledger.Summary
	Currency string
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a new Header component with default values
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    "splitbill",
		Currency: "$",
		Width:    80,
		theme:    theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetSummary updates the balances shown in the subtitle
func (h *Header) SetSummary(s ledger.Summary) {
	h.Summary = s
}

// View renders the header component
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		return h.ViewCompact()
	}
	innerWidth := width - 6

	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Cyan)

	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Purple)

	brand := accentStyle.Render("< ") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(" >")

	brandLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(brand)

	subtitleLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Foreground(styles.TextMuted).
		Render(h.subtitle())

	content := lipgloss.JoinVertical(lipgloss.Center, brandLine, subtitleLine)

	headerBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Purple).
		Padding(0, 2).
		Width(width - 2)

	return headerBox.Render(content)
}

// ViewCompact renders a single-line header for narrow terminals
func (h *Header) ViewCompact() string {
	brand := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Cyan).
		Render(h.Title)

	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	return brand + separator + h.netView()
}

func (h *Header) subtitle() string {
	parts := []string{
		pluralize(h.Summary.Friends, "friend", "friends"),
		h.netView(),
	}
	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")
	return strings.Join(parts, separator)
}

// netView shows the net balance coloured by who is ahead.
func (h *Header) netView() string {
	net := h.Summary.Net()
	label := "net " + friend.FormatAmount(net, h.Currency)
	switch net.Sign() {
	case 1:
		return lipgloss.NewStyle().Foreground(styles.Emerald).Render(label)
	case -1:
		return lipgloss.NewStyle().Foreground(styles.Rose).Render(label)
	default:
		return label
	}
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
