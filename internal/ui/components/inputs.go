// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/splitbill-tui/internal/ui/styles"
	"github.com/jeranaias/splitbill-tui/internal/util"
)

// newField creates a styled single-line input. The cursor does not blink so
// form updates never schedule timers.
func newField(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = width
	ti.CharLimit = 256

	ti.TextStyle = lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	ti.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	ti.Cursor.Style = lipgloss.NewStyle().
		Foreground(styles.Cyan)
	ti.Cursor.SetMode(cursor.CursorStatic)

	return ti
}

// FormKeyMap holds the keys shared by both forms.
type FormKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Toggle key.Binding
	Self   key.Binding
	Friend key.Binding
	Leave  key.Binding
}

// DefaultFormKeyMap returns the form bindings.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "switch payer"),
		),
		Self: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "you pay"),
		),
		Friend: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "friend pays"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// fieldRow renders "label  value" with the label padded to labelWidth.
func fieldRow(t *styles.Theme, label string, labelWidth int, value string, focused bool) string {
	l := t.Label.Width(labelWidth)
	if focused {
		l = l.Foreground(styles.Cyan).Bold(true)
	}
	label = util.TruncateWidth(label, labelWidth-1)
	return lipgloss.JoinHorizontal(lipgloss.Top, l.Render(label), value)
}
