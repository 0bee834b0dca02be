// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package app provides the root Bubble Tea model of the splitbill TUI.

The Model owns the ledger state, the list cursor, keyboard focus and the
mounted forms. Child components report intent with messages
(components.AddFriendMsg, components.SelectFriendMsg, ...); Update applies
each one to the ledger by replacing the state, then remounts whatever the
new state calls for.

# Event Flow

	key "a"          -> ToggleAddFriendMsg -> ledger.ToggleAddFriend
	add form enter   -> AddFriendMsg       -> ledger.AddFriend
	list enter       -> SelectFriendMsg    -> ledger.SelectFriend
	split form esc   -> SelectFriendMsg    -> ledger.SelectFriend (deselect)
	split form enter -> SplitBillMsg       -> ledger.ApplySplit

ConfigReloadedMsg arrives from the config watcher goroutine through
tea.Program.Send and re-applies the currency, theme and default avatar.
*/
package app
