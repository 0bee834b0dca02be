// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package friend contains the Friend record and the helpers that derive
// display state from it.
//
// # Key Types
//
//   - Friend: one tracked friend with a signed running balance
//   - Standing: OwesYou, YouOwe or Even, derived from the balance sign
//   - IDGenerator: source of session-unique identifiers
//
// # Sign Convention
//
// A positive balance means the friend owes the user, a negative balance
// means the user owes the friend.
//
//	f := friend.Seed()[0]            // Clark, -7
//	f = f.Apply(decimal.NewFromInt(15))
//	f.BalanceMessage("$")            // "Clark owes you $8"
package friend
