// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package friend

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// FRIEND RECORD
// =============================================================================

// ID identifies a friend. It is opaque and immutable once assigned.
type ID string

// Friend is a single tracked friend.
// Only Balance ever changes, and only through Apply.
type Friend struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`

	// Balance > 0: the friend owes the user. Balance < 0: the user owes the friend.
	Balance decimal.Decimal `json:"balance"`
}

// New creates a settled friend.
func New(id ID, name, image string) Friend {
	return Friend{
		ID:      id,
		Name:    name,
		Image:   image,
		Balance: decimal.Zero,
	}
}

// Valid reports whether every identifying field is populated.
func (f Friend) Valid() bool {
	return f.ID != "" && strings.TrimSpace(f.Name) != "" && strings.TrimSpace(f.Image) != ""
}

// Apply returns a copy of f with delta added to the balance.
func (f Friend) Apply(delta decimal.Decimal) Friend {
	f.Balance = f.Balance.Add(delta)
	return f
}

// Initial returns the first letter of the name, upper-cased, for avatar badges.
func (f Friend) Initial() string {
	for _, r := range strings.TrimSpace(f.Name) {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// =============================================================================
// STANDING
// =============================================================================

// Standing is the three-way reading of a balance.
type Standing int

const (
	Even    Standing = iota // settled
	OwesYou                 // friend owes the user
	YouOwe                  // user owes the friend
)

// String returns the display string for the standing.
func (s Standing) String() string {
	switch s {
	case Even:
		return "even"
	case OwesYou:
		return "owes you"
	case YouOwe:
		return "you owe"
	default:
		return "unknown"
	}
}

// Standing derives the standing purely from the sign of the balance.
func (f Friend) Standing() Standing {
	switch f.Balance.Sign() {
	case 1:
		return OwesYou
	case -1:
		return YouOwe
	default:
		return Even
	}
}

// BalanceMessage renders the balance as a sentence, e.g. "Sarah owes you $20".
func (f Friend) BalanceMessage(currency string) string {
	amount := FormatAmount(f.Balance.Abs(), currency)
	switch f.Standing() {
	case OwesYou:
		return fmt.Sprintf("%s owes you %s", f.Name, amount)
	case YouOwe:
		return fmt.Sprintf("You owe %s %s", f.Name, amount)
	default:
		return fmt.Sprintf("You and %s are even.", f.Name)
	}
}

// FormatAmount renders d with the currency symbol prefixed. Trailing zero
// decimals are dropped, so 8.00 renders as "$8" and 7.5 as "$7.5".
func FormatAmount(d decimal.Decimal, currency string) string {
	if d.IsNegative() {
		return "-" + currency + d.Neg().String()
	}
	return currency + d.String()
}
