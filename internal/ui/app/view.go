// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/splitbill-tui/internal/ui/styles"
)

// panel chrome: border (2) + horizontal padding (2)
const panelChrome = 4

// View renders the whole screen.
func (m Model) View() string {
	if m.showSummary {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.header.View(),
			m.summary,
			m.theme.Hint.Render("s/esc back | q quit"),
		)
	}

	h := m.help
	h.ShowAll = m.showHelp
	sections := []string{m.header.View(), m.renderBody()}
	if toasts := m.toasts.View(m.width - 2); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, h.View(helpFor(m.focus, m.keys, m.formKeys)))
	return m.theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderBody lays out the list and the open forms: side by side on wide
// terminals, stacked on narrow ones.
func (m Model) renderBody() string {
	left := []string{m.renderListPanel()}
	var right []string

	if m.state.ShowAddFriend() {
		left = append(left, m.renderPanel(m.addForm.View(), m.focus == FocusAddFriend, m.listWidth()))
	}
	if m.splitForm != nil {
		right = append(right, m.renderPanel(m.splitForm.View(), m.focus == FocusSplitBill, m.formWidth()))
	}

	leftCol := lipgloss.JoinVertical(lipgloss.Left, left...)
	if len(right) == 0 {
		return leftCol
	}
	rightCol := lipgloss.JoinVertical(lipgloss.Left, right...)

	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		return lipgloss.JoinVertical(lipgloss.Left, leftCol, rightCol)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " ", rightCol)
}

func (m Model) renderListPanel() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Friends"),
		"",
		m.friendsList().View(),
		"",
		m.addFriendButton().View(m.focus == FocusList && m.state.Len() == 0),
	)
	return m.renderPanel(content, m.focus == FocusList, m.listWidth())
}

func (m Model) renderPanel(content string, focused bool, width int) string {
	style := m.theme.Panel
	if focused {
		style = m.theme.PanelFocused
	}
	return style.Width(width + 2).Render(content)
}

// listWidth is the content width of the list column.
func (m Model) listWidth() int {
	w := m.width - 2 - panelChrome
	if m.theme.GetLayoutMode() == styles.LayoutWide {
		w = m.width/2 - panelChrome
	}
	if w < 20 {
		w = 20
	}
	return w
}

// formWidth is the content width of the split form column.
func (m Model) formWidth() int {
	if m.theme.GetLayoutMode() == styles.LayoutNarrow {
		return m.listWidth()
	}
	w := m.width - m.width/2 - panelChrome - 3
	if w < 20 {
		w = 20
	}
	return w
}
