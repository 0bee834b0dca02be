// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/splitbill-tui/internal/friend"
	"github.com/jeranaias/splitbill-tui/internal/ui/components"
	"github.com/jeranaias/splitbill-tui/internal/ui/styles"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.ToggleAddFriendMsg:
		return m.handleToggleAddFriend()

	case components.AddFriendMsg:
		return m.handleAddFriend(msg)

	case components.SelectFriendMsg:
		return m.handleSelectFriend(msg)

	case components.SplitBillMsg:
		return m.handleSplitBill(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case components.ToastExpiredMsg:
		m.toasts.Expire(msg.ID)
		return m, nil
	}
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showSummary {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Summary), msg.Type == tea.KeyEsc:
			m.showSummary = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case FocusAddFriend:
		m.addForm, cmd = m.addForm.Update(msg)
		return m, cmd
	case FocusSplitBill:
		if m.splitForm != nil {
			m.splitForm, cmd = m.splitForm.Update(msg)
			return m, cmd
		}
		m.focus = FocusList
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.state.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if _, ok := m.state.At(m.cursor); !ok {
			return m, nil
		}
		return m, m.friendsList().Item(m.cursor).Button().Press()

	case key.Matches(msg, m.keys.AddFriend):
		return m, m.addFriendButton().Press()

	case key.Matches(msg, m.keys.Forms):
		return m, m.focusForms()

	case key.Matches(msg, m.keys.Summary):
		return m.openSummary()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// focusForms moves focus from the list to an open form, split form first.
func (m *Model) focusForms() tea.Cmd {
	switch {
	case m.splitForm != nil:
		m.focus = FocusSplitBill
		return m.splitForm.Focus()
	case m.state.ShowAddFriend():
		m.focus = FocusAddFriend
		return m.addForm.Focus()
	}
	return nil
}

func (m Model) openSummary() (tea.Model, tea.Cmd) {
	out, err := components.RenderSummary(m.state, m.currency, m.theme.GlamourStyle(), m.width)
	if err != nil {
		m.logger.Error("summary render failed", "error", err)
		out = components.SummaryMarkdown(m.state, m.currency)
	}
	m.summary = out
	m.showSummary = true
	return m, nil
}

// =============================================================================
// LEDGER EVENTS
// =============================================================================

func (m Model) handleToggleAddFriend() (tea.Model, tea.Cmd) {
	m.state = m.state.ToggleAddFriend()
	m.logger.Info("add friend form toggled", "open", m.state.ShowAddFriend())

	if m.state.ShowAddFriend() {
		m.blurForms()
		m.focus = FocusAddFriend
		return m, m.addForm.Focus()
	}
	m.addForm.Reset()
	m.addForm.Blur()
	m.focus = FocusList
	return m, nil
}

func (m Model) handleAddFriend(msg components.AddFriendMsg) (tea.Model, tea.Cmd) {
	next, err := m.state.AddFriend(msg.Friend)
	if err != nil {
		m.logger.Warn("add friend failed", "id", msg.Friend.ID, "error", err)
		return m, m.toasts.Push(components.ToastError, "Could not add "+msg.Friend.Name+": "+err.Error())
	}
	m.state = next
	m.header.SetSummary(m.state.Summary())
	m.addForm.Reset()
	m.addForm.Blur()
	m.focus = FocusList
	m.cursor = m.state.Len() - 1
	m.logger.Info("friend added", "id", msg.Friend.ID, "name", msg.Friend.Name)
	return m, m.toasts.Push(components.ToastSuccess, "Added "+msg.Friend.Name)
}

func (m Model) handleSelectFriend(msg components.SelectFriendMsg) (tea.Model, tea.Cmd) {
	wasOpen := m.state.ShowAddFriend()
	m.state = m.state.SelectFriend(msg.ID)
	if wasOpen {
		m.addForm.Reset()
		m.addForm.Blur()
	}

	selected, ok := m.state.Selected()
	if !ok {
		m.logger.Info("friend deselected", "id", msg.ID)
		m.splitForm = nil
		m.focus = FocusList
		return m, nil
	}

	m.logger.Info("friend selected", "id", selected.ID)
	if i := m.indexOf(selected.ID); i >= 0 {
		m.cursor = i
	}
	m.splitForm = components.NewFormSplitBill(m.theme, selected, m.logger)
	m.focus = FocusSplitBill
	return m, m.splitForm.Focus()
}

// handleSplitBill applies a split only while its friend is still the
// selection. A message from a form that has since been unmounted is dropped.
func (m Model) handleSplitBill(msg components.SplitBillMsg) (tea.Model, tea.Cmd) {
	if !m.state.IsSelected(msg.FriendID) {
		m.logger.Warn("split bill dropped, friend not selected", "id", msg.FriendID)
		return m, nil
	}
	next, err := m.state.ApplySplit(msg.Delta)
	if err != nil {
		m.logger.Warn("split bill failed", "error", err)
		return m, nil
	}
	m.state = next
	m.header.SetSummary(m.state.Summary())
	m.splitForm = nil
	m.focus = FocusList

	f, ok := m.state.Find(msg.FriendID)
	if !ok {
		return m, nil
	}
	m.logger.Info("bill split",
		"id", f.ID,
		"delta", msg.Delta.String(),
		"balance", f.Balance.String())
	return m, m.toasts.Push(components.ToastSuccess, f.BalanceMessage(m.currency))
}

// =============================================================================
// CONFIG AND LAYOUT
// =============================================================================

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil || msg.Config == nil {
		m.logger.Warn("config reload rejected", "error", msg.Err)
		text := "Config reload failed"
		if msg.Err != nil {
			text += ": " + msg.Err.Error()
		}
		return m, m.toasts.Push(components.ToastError, text)
	}
	cfg := msg.Config

	m.currency = cfg.UI.Currency
	m.header.Currency = cfg.UI.Currency

	// Components share the theme pointer, so replacing it in place restyles
	// everything at once.
	width, height := m.theme.Width, m.theme.Height
	*m.theme = *styles.NewTheme(cfg.UI.Theme)
	m.theme.SetSize(width, height)

	m.addForm.SetDefaultImage(cfg.UI.DefaultAvatar)
	m.logger.Info("config reloaded", "source", cfg.Source, "theme", cfg.UI.Theme, "currency", cfg.UI.Currency)
	toast := m.toasts.Push(components.ToastStatus, "Config reloaded")

	if m.showSummary {
		next, cmd := m.openSummary()
		return next, tea.Batch(toast, cmd)
	}
	return m, toast
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.header.SetWidth(msg.Width - 2)
	m.help.Width = msg.Width - 2

	if m.showSummary {
		return m.openSummary()
	}
	return m, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func (m *Model) blurForms() {
	m.addForm.Blur()
	if m.splitForm != nil {
		m.splitForm.Blur()
	}
}

func (m Model) indexOf(id friend.ID) int {
	for i, f := range m.state.Friends() {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func (m Model) addFriendButton() components.Button {
	label := "Add friend"
	if m.state.ShowAddFriend() {
		label = "Close"
	}
	return components.NewButton(m.theme, label, components.ToggleAddFriend)
}

func (m Model) friendsList() components.FriendsList {
	l := components.NewFriendsList(m.theme)
	l.Friends = m.state.Friends()
	if f, ok := m.state.Selected(); ok {
		l.Selected = f.ID
	}
	l.Cursor = m.cursor
	l.Focused = m.focus == FocusList
	l.Currency = m.currency
	l.Width = m.listWidth() - 1 // row style pads one column
	return l
}
