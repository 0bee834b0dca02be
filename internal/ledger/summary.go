// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ledger

import (
	"github.com/jeranaias/splitbill-tui/internal/friend"
	"github.com/shopspring/decimal"
)

// Summary aggregates all balances.
type Summary struct {
	OwedToYou decimal.Decimal // sum of positive balances
	YouOwe    decimal.Decimal // sum of |negative balances|
	Friends   int
	Owing     int // friends who owe the user
	Owed      int // friends the user owes
	Settled   int
}

// Net is OwedToYou minus YouOwe.
func (s Summary) Net() decimal.Decimal {
	return s.OwedToYou.Sub(s.YouOwe)
}

// Summary computes totals across every friend.
func (s State) Summary() Summary {
	sum := Summary{
		OwedToYou: decimal.Zero,
		YouOwe:    decimal.Zero,
		Friends:   len(s.friends),
	}
	for _, f := range s.friends {
		switch f.Standing() {
		case friend.OwesYou:
			sum.OwedToYou = sum.OwedToYou.Add(f.Balance)
			sum.Owing++
		case friend.YouOwe:
			sum.YouOwe = sum.YouOwe.Add(f.Balance.Abs())
			sum.Owed++
		default:
			sum.Settled++
		}
	}
	return sum
}
