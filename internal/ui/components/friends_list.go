// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/splitbill-tui/internal/friend"
	"github.com/jeranaias/splitbill-tui/internal/ui/styles"
	"github.com/jeranaias/splitbill-tui/internal/util"
)

// =============================================================================
// FRIEND ITEM
// =============================================================================

const (
	cursorMarker = "▸ "
	avatarWidth  = 3 // " X "
	minNameWidth = 6
)

// FriendItem renders one friend row. It holds no state of its own.
type FriendItem struct {
	Friend   friend.Friend
	Selected bool
	Cursor   bool
	Currency string
	Width    int
	theme    *styles.Theme
}

// Button returns the row's Select/Close button wired to a SelectFriendMsg.
func (i FriendItem) Button() Button {
	label := "Select"
	if i.Selected {
		label = "Close"
	}
	return NewButton(i.theme, label, SelectFriend(i.Friend.ID))
}

// View renders the row as two lines: avatar, name and button, then the
// balance message.
func (i FriendItem) View() string {
	t := i.theme
	button := i.Button()

	marker := strings.Repeat(" ", lipgloss.Width(cursorMarker))
	if i.Cursor {
		marker = t.Cursor.Render(cursorMarker)
	}

	avatar := t.Avatar.
		Background(styles.AvatarColor(string(i.Friend.ID))).
		Render(i.Friend.Initial())

	buttonView := button.View(i.Cursor)
	nameWidth := i.Width - lipgloss.Width(marker) - avatarWidth - 1 - lipgloss.Width(buttonView) - 2
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}
	name := t.FriendName.Render(util.PadWidth(i.Friend.Name, nameWidth))

	top := lipgloss.JoinHorizontal(lipgloss.Top, marker, avatar, " ", name, "  ", buttonView)

	indent := strings.Repeat(" ", lipgloss.Width(marker)+avatarWidth+1)
	message := i.Friend.BalanceMessage(i.Currency)
	msgWidth := i.Width - lipgloss.Width(indent)
	if msgWidth > 0 {
		message = util.TruncateWidth(message, msgWidth)
	}
	bottom := indent + t.BalanceStyle(i.Friend.Standing()).Render(message)

	row := lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	if i.Selected {
		return t.FriendRowSelected.Render(row)
	}
	return t.FriendRow.Render(row)
}

// =============================================================================
// FRIENDS LIST
// =============================================================================

// FriendsList is a pure projection of the friend list, the selection and
// the cursor. Insertion order is preserved.
type FriendsList struct {
	Friends  []friend.Friend
	Selected friend.ID
	Cursor   int
	Focused  bool
	Currency string
	Width    int
	theme    *styles.Theme
}

// NewFriendsList creates an empty list.
func NewFriendsList(theme *styles.Theme) FriendsList {
	return FriendsList{Currency: "$", Width: 40, theme: theme}
}

// Item returns the row for index i.
func (l FriendsList) Item(i int) FriendItem {
	f := l.Friends[i]
	return FriendItem{
		Friend:   f,
		Selected: l.Selected != "" && f.ID == l.Selected,
		Cursor:   l.Focused && i == l.Cursor,
		Currency: l.Currency,
		Width:    l.Width,
		theme:    l.theme,
	}
}

// View renders every row, or a hint when the list is empty.
func (l FriendsList) View() string {
	if len(l.Friends) == 0 {
		return l.theme.Hint.Render("No friends yet. Press a to add one.")
	}
	rows := make([]string, 0, len(l.Friends))
	for i := range l.Friends {
		rows = append(rows, l.Item(i).View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
