// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package form

import (
	"github.com/shopspring/decimal"
)

// Payer is who paid the bill.
type Payer int

const (
	PayerSelf Payer = iota
	PayerFriend
)

// String returns the config/log name of the payer.
func (p Payer) String() string {
	switch p {
	case PayerSelf:
		return "self"
	case PayerFriend:
		return "friend"
	default:
		return "unknown"
	}
}

// SplitBillDraft is the unsaved input of the split-bill form.
type SplitBillDraft struct {
	billTotal   Amount
	userExpense Amount
	payer       Payer
}

// NewSplitBillDraft returns an empty draft paid by the user.
func NewSplitBillDraft() SplitBillDraft {
	return SplitBillDraft{payer: PayerSelf}
}

// BillTotal returns the entered bill total.
func (d SplitBillDraft) BillTotal() Amount { return d.billTotal }

// UserExpense returns the entered user expense.
func (d SplitBillDraft) UserExpense() Amount { return d.userExpense }

// Payer returns who paid.
func (d SplitBillDraft) Payer() Payer { return d.payer }

// SetBillTotal parses text into the bill total. Unparsable text is rejected
// and the previous value kept.
func (d *SplitBillDraft) SetBillTotal(text string) error {
	a, err := ParseAmount(text)
	if err != nil {
		return err
	}
	d.billTotal = a
	return nil
}

// SetUserExpense parses text into the user expense. The value is rejected,
// keeping the previous one, when it is unparsable or greater than the bill
// total. An absent bill total counts as zero.
func (d *SplitBillDraft) SetUserExpense(text string) error {
	a, err := ParseAmount(text)
	if err != nil {
		return err
	}
	if a.IsSet() && a.Value().GreaterThan(d.billTotal.Value()) {
		return ErrExpenseExceedsBill
	}
	d.userExpense = a
	return nil
}

// SetPayer sets who paid.
func (d *SplitBillDraft) SetPayer(p Payer) {
	d.payer = p
}

// TogglePayer switches between the user and the friend.
func (d *SplitBillDraft) TogglePayer() {
	if d.payer == PayerSelf {
		d.payer = PayerFriend
	} else {
		d.payer = PayerSelf
	}
}

// FriendExpense is the bill total minus the user's expense. It is absent
// while no bill total has been entered.
func (d SplitBillDraft) FriendExpense() Amount {
	if !d.billTotal.IsSet() {
		return None()
	}
	return Some(d.billTotal.Value().Sub(d.userExpense.Value()))
}

// Submit returns the signed delta for the selected friend's balance.
// Zero is a valid amount; only missing fields are rejected.
func (d SplitBillDraft) Submit() (decimal.Decimal, error) {
	if !d.billTotal.IsSet() {
		return decimal.Zero, ErrMissingBillTotal
	}
	if !d.userExpense.IsSet() {
		return decimal.Zero, ErrMissingUserExpense
	}

	if d.payer == PayerFriend {
		return d.userExpense.Value().Neg(), nil
	}
	return d.FriendExpense().Value(), nil
}
