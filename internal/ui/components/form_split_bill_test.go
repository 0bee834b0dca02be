// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/splitbill-tui/internal/form"
	"github.com/jeranaias/splitbill-tui/internal/friend"
)

var clark = friend.Friend{ID: "118836", Name: "Clark", Image: "img", Balance: decimal.NewFromInt(-7)}

func newSplitForm() *FormSplitBill {
	f := NewFormSplitBill(testTheme(), clark, nil)
	f.Focus()
	return f
}

// fill types bill and expense into their fields, leaving focus on the payer.
func fill(f *FormSplitBill, bill, expense string) *FormSplitBill {
	f = typeInto(f, bill)
	f, _ = f.Update(keyOf(tea.KeyTab))
	f = typeInto(f, expense)
	f, _ = f.Update(keyOf(tea.KeyTab))
	return f
}

func TestFormSplitBill_UserPays(t *testing.T) {
	f := fill(newSplitForm(), "20", "5")
	assert.Equal(t, "15", f.Draft().FriendExpense().String())

	_, cmd := f.Update(keyOf(tea.KeyEnter))
	msg, ok := msgOf(t, cmd).(SplitBillMsg)
	require.True(t, ok)
	assert.Equal(t, clark.ID, msg.FriendID)
	assert.Equal(t, "15", msg.Delta.String())
}

func TestFormSplitBill_FriendPays(t *testing.T) {
	f := fill(newSplitForm(), "50", "10")
	f, _ = f.Update(space())
	require.Equal(t, form.PayerFriend, f.Draft().Payer())

	_, cmd := f.Update(keyOf(tea.KeyEnter))
	msg := msgOf(t, cmd).(SplitBillMsg)
	assert.Equal(t, "-10", msg.Delta.String())
}

func TestFormSplitBill_ClampKeepsPreviousExpense(t *testing.T) {
	f := newSplitForm()
	f = typeInto(f, "30")
	f, _ = f.Update(keyOf(tea.KeyTab))
	f = typeInto(f, "40")

	// "4" is accepted, "40" exceeds the bill and is undone
	assert.Equal(t, "4", f.expense.Value())
	assert.Equal(t, "4", f.Draft().UserExpense().String())
	assert.Equal(t, "26", f.Draft().FriendExpense().String())
}

func TestFormSplitBill_RejectsNonNumericKeystrokes(t *testing.T) {
	f := newSplitForm()
	f = typeInto(f, "1a2")

	assert.Equal(t, "12", f.bill.Value())
	assert.Equal(t, "12", f.Draft().BillTotal().String())
}

func TestFormSplitBill_ExpenseWithoutBillIsRejected(t *testing.T) {
	f := newSplitForm()
	f, _ = f.Update(keyOf(tea.KeyTab))
	f = typeInto(f, "5")

	assert.Equal(t, "", f.expense.Value())
	assert.False(t, f.Draft().UserExpense().IsSet())
}

func TestFormSplitBill_MissingFieldsAreSilentNoOp(t *testing.T) {
	f := newSplitForm()
	f = typeInto(f, "20")

	_, cmd := f.Update(keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
}

func TestFormSplitBill_EscDeselects(t *testing.T) {
	_, cmd := newSplitForm().Update(keyOf(tea.KeyEsc))
	assert.Equal(t, SelectFriendMsg{ID: clark.ID}, msgOf(t, cmd))
}

func TestFormSplitBill_PayerToggleOnlyOnPayerField(t *testing.T) {
	f := newSplitForm()
	f, _ = f.Update(keyOf(tea.KeyRight))
	assert.Equal(t, form.PayerSelf, f.Draft().Payer())

	f, _ = f.Update(keyOf(tea.KeyTab))
	f, _ = f.Update(keyOf(tea.KeyTab))
	f, _ = f.Update(keyOf(tea.KeyRight))
	assert.Equal(t, form.PayerFriend, f.Draft().Payer())
	f, _ = f.Update(keyOf(tea.KeyLeft))
	assert.Equal(t, form.PayerSelf, f.Draft().Payer())
}

func TestFormSplitBill_ArrowsPickPayer(t *testing.T) {
	f := fill(newSplitForm(), "20", "5")

	tests := []struct {
		key  tea.KeyMsg
		want form.Payer
	}{
		{keyOf(tea.KeyRight), form.PayerFriend},
		{keyOf(tea.KeyRight), form.PayerFriend},
		{keyOf(tea.KeyLeft), form.PayerSelf},
		{keyOf(tea.KeyLeft), form.PayerSelf},
		{space(), form.PayerFriend},
		{space(), form.PayerSelf},
	}
	for _, tc := range tests {
		f, _ = f.Update(tc.key)
		assert.Equal(t, tc.want, f.Draft().Payer())
	}
}

func TestFormSplitBill_FriendExpenseEmptyWithoutBill(t *testing.T) {
	f := newSplitForm()
	row := lineContaining(t, f.View(), "Clark's expense")
	assert.NotContains(t, row, "-")

	f = fill(f, "20", "5")
	assert.Contains(t, lineContaining(t, f.View(), "Clark's expense"), "15")
}

func lineContaining(t *testing.T, view, substr string) string {
	t.Helper()
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	t.Fatalf("no line contains %q", substr)
	return ""
}

func TestFormSplitBill_View(t *testing.T) {
	f := fill(newSplitForm(), "20", "5")
	view := f.View()

	assert.Contains(t, view, "Split a bill with Clark")
	assert.Contains(t, view, "Clark's expense")
	assert.Contains(t, view, "15")
	assert.Contains(t, view, "Who is paying?")
}
