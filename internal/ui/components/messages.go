// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/jeranaias/splitbill-tui/internal/friend"
)

// =============================================================================
// LEDGER EVENTS
// =============================================================================

// Components never touch the ledger. They emit these messages and the root
// model applies them.

// ToggleAddFriendMsg opens or closes the add-friend form.
type ToggleAddFriendMsg struct{}

// AddFriendMsg carries a validated new friend.
type AddFriendMsg struct {
	Friend friend.Friend
}

// SelectFriendMsg selects a friend, or deselects when ID is already selected.
type SelectFriendMsg struct {
	ID friend.ID
}

// SplitBillMsg carries the signed balance delta for the selected friend.
type SplitBillMsg struct {
	FriendID friend.ID
	Delta    decimal.Decimal
}

// =============================================================================
// COMMAND CONSTRUCTORS
// =============================================================================

// ToggleAddFriend is a command emitting ToggleAddFriendMsg.
func ToggleAddFriend() tea.Msg {
	return ToggleAddFriendMsg{}
}

// SelectFriend returns a command emitting SelectFriendMsg for id.
func SelectFriend(id friend.ID) tea.Cmd {
	return func() tea.Msg {
		return SelectFriendMsg{ID: id}
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
