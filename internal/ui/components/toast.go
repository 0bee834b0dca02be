// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/splitbill-tui/internal/ui/styles"
	"github.com/jeranaias/splitbill-tui/internal/util"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	ToastStatus  ToastKind = iota // cyan
	ToastSuccess                  // emerald
	ToastError                    // rose
)

// DefaultToastDuration is how long a toast stays before it expires.
const DefaultToastDuration = 4 * time.Second

// maxToasts is the number of toasts kept; older ones are dropped.
const maxToasts = 3

// Toast is a short non-blocking notice.
type Toast struct {
	ID      int
	Message string
	Kind    ToastKind
}

// ToastExpiredMsg removes the toast with ID.
type ToastExpiredMsg struct {
	ID int
}

// =============================================================================
// TOAST STACK
// =============================================================================

// Toasts holds the visible toasts, newest last. It is only touched from the
// Bubble Tea update loop.
type Toasts struct {
	items  []Toast
	nextID int
	ttl    time.Duration
}

// NewToasts creates an empty stack. A ttl <= 0 disables expiry; toasts then
// leave only when pushed out by newer ones.
func NewToasts(ttl time.Duration) *Toasts {
	return &Toasts{ttl: ttl}
}

// Push adds a toast and returns the command that expires it.
func (t *Toasts) Push(kind ToastKind, message string) tea.Cmd {
	t.nextID++
	id := t.nextID
	t.items = append(t.items, Toast{ID: id, Message: message, Kind: kind})
	if len(t.items) > maxToasts {
		t.items = t.items[len(t.items)-maxToasts:]
	}

	if t.ttl <= 0 {
		return nil
	}
	return tea.Tick(t.ttl, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Expire removes the toast with id. Unknown ids are ignored.
func (t *Toasts) Expire(id int) {
	for i, item := range t.items {
		if item.ID == id {
			t.items = append(t.items[:i:i], t.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the visible toasts.
func (t *Toasts) Items() []Toast {
	return append([]Toast(nil), t.items...)
}

// View renders the toasts one per line, truncated to width.
func (t *Toasts) View(width int) string {
	if len(t.items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(t.items))
	for _, item := range t.items {
		lines = append(lines, t.render(item, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (t *Toasts) render(item Toast, width int) string {
	var color lipgloss.AdaptiveColor
	var icon string

	switch item.Kind {
	case ToastError:
		color, icon = styles.Rose, styles.StatusIndicators.Error
	case ToastSuccess:
		color, icon = styles.Emerald, styles.StatusIndicators.Success
	default:
		color, icon = styles.Cyan, styles.StatusIndicators.Info
	}

	iconStyle := lipgloss.NewStyle().
		Foreground(color).
		Bold(true)

	message := item.Message
	if width > 0 {
		message = util.TruncateWidth(message, width-lipgloss.Width(icon)-1)
	}
	return iconStyle.Render(icon) + " " + lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(message)
}
