// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package form

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is an optional decimal. The zero Amount is absent.
type Amount struct {
	value decimal.Decimal
	set   bool
}

// Some returns a present Amount.
func Some(d decimal.Decimal) Amount {
	return Amount{value: d, set: true}
}

// None returns an absent Amount.
func None() Amount {
	return Amount{}
}

// IsSet reports whether a value was entered.
func (a Amount) IsSet() bool {
	return a.set
}

// Value returns the amount, or zero when absent.
func (a Amount) Value() decimal.Decimal {
	if !a.set {
		return decimal.Zero
	}
	return a.value
}

// String renders the amount, or "" when absent.
func (a Amount) String() string {
	if !a.set {
		return ""
	}
	return a.value.String()
}

// partial inputs a user passes through while typing a number
var partialAmounts = map[string]bool{"-": true, ".": true, "-.": true}

// ParseAmount parses user input. Empty text and incomplete number prefixes
// ("-", ".") are absent; anything else must be a decimal number.
func ParseAmount(text string) (Amount, error) {
	text = strings.TrimSpace(text)
	if text == "" || partialAmounts[text] {
		return None(), nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return None(), fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return Some(d), nil
}
