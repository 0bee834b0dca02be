// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/splitbill-tui/internal/ui/styles"
)

// =============================================================================
// BUTTON COMPONENT
// =============================================================================

// Button is a stateless labelled action. Pressing it returns the
// caller-supplied command; the button itself knows nothing about what
// happens next.
type Button struct {
	Label   string
	OnClick tea.Cmd
	theme   *styles.Theme
}

// NewButton creates a button.
func NewButton(theme *styles.Theme, label string, onClick tea.Cmd) Button {
	return Button{Label: label, OnClick: onClick, theme: theme}
}

// Press returns the OnClick command. A button without one does nothing.
func (b Button) Press() tea.Cmd {
	return b.OnClick
}

// View renders the button, highlighted when focused.
func (b Button) View(focused bool) string {
	if b.theme == nil {
		return "[ " + b.Label + " ]"
	}
	if focused {
		return b.theme.ButtonFocused.Render(b.Label)
	}
	return b.theme.Button.Render(b.Label)
}
