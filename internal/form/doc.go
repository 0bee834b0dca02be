// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package form holds the transient drafts behind the add-friend and
// split-bill forms.
//
// Drafts keep typed values: amounts are parsed on input into an Amount, which
// distinguishes "not entered" from zero. Submission returns either a result
// or a *ValidationError naming the offending field.
//
// # Split-bill rules
//
//   - FriendExpense = BillTotal - UserExpense, absent while BillTotal is absent
//   - a UserExpense greater than BillTotal is rejected as it is typed
//   - PayerSelf yields +FriendExpense, PayerFriend yields -UserExpense
package form
