// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the UI building blocks of the splitbill TUI.

Components render state they are given and report user intent upward as
Bubble Tea messages (messages.go). None of them mutates the ledger.

# Components

Button (button.go) - Stateless labelled action; Press returns its command.
FriendsList and FriendItem (friends_list.go) - Friend rows with avatar,
balance message and a Select/Close button.
FormAddFriend (form_add_friend.go) - Name and image URL inputs.
FormSplitBill (form_split_bill.go) - Bill, your expense, derived friend
expense and payer toggle. The expense clamp is enforced per keystroke.
Header (header.go) - Title bar with friend count and net balance.
Summary (summary.go) - Markdown balance table rendered with glamour.

# Usage

	theme := styles.NewTheme("auto")
	list := components.NewFriendsList(theme)
	list.Friends = state.Friends()
	view := list.View()

	f := components.NewFormSplitBill(theme, selected, logger)
	f, cmd := f.Update(keyMsg) // cmd emits SplitBillMsg on a valid submit
*/
package components
