// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/splitbill-tui/internal/form"
	"github.com/jeranaias/splitbill-tui/internal/friend"
	"github.com/jeranaias/splitbill-tui/internal/logging"
	"github.com/jeranaias/splitbill-tui/internal/ui/styles"
)

// =============================================================================
// SPLIT BILL FORM
// =============================================================================

const (
	splitFieldBill = iota
	splitFieldExpense
	splitFieldPayer
	splitFieldSubmit
	splitFieldCount
)

const splitLabelWidth = 18

// FormSplitBill splits one bill with the selected friend. It is mounted
// fresh for every selection, so the draft never leaks between friends.
type FormSplitBill struct {
	friend  friend.Friend
	bill    textinput.Model
	expense textinput.Model
	submit  Button
	focus   int

	draft  form.SplitBillDraft
	keys   FormKeyMap
	theme  *styles.Theme
	logger *slog.Logger
}

// NewFormSplitBill mounts the form for f with an empty draft.
func NewFormSplitBill(theme *styles.Theme, f friend.Friend, logger *slog.Logger) *FormSplitBill {
	if logger == nil {
		logger = logging.Discard()
	}
	return &FormSplitBill{
		friend:  f,
		bill:    newField("0.00", 10),
		expense: newField("0.00", 10),
		submit:  NewButton(theme, "Split bill", nil),
		draft:   form.NewSplitBillDraft(),
		keys:    DefaultFormKeyMap(),
		theme:   theme,
		logger:  logger,
	}
}

// Friend returns the friend the form is mounted for.
func (f *FormSplitBill) Friend() friend.Friend {
	return f.friend
}

// Draft returns the current unsaved input.
func (f *FormSplitBill) Draft() form.SplitBillDraft {
	return f.draft
}

// Focus focuses the bill field.
func (f *FormSplitBill) Focus() tea.Cmd {
	f.focus = splitFieldBill
	return f.applyFocus()
}

// Blur removes focus from every field.
func (f *FormSplitBill) Blur() {
	f.bill.Blur()
	f.expense.Blur()
}

func (f *FormSplitBill) applyFocus() tea.Cmd {
	f.Blur()
	switch f.focus {
	case splitFieldBill:
		return f.bill.Focus()
	case splitFieldExpense:
		return f.expense.Focus()
	}
	return nil
}

// Update handles key input while the form has focus.
func (f *FormSplitBill) Update(msg tea.Msg) (*FormSplitBill, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch {
	case key.Matches(keyMsg, f.keys.Leave):
		return f, SelectFriend(f.friend.ID)
	case key.Matches(keyMsg, f.keys.Submit):
		return f, f.Submit()
	case key.Matches(keyMsg, f.keys.Next):
		f.focus = (f.focus + 1) % splitFieldCount
		return f, f.applyFocus()
	case key.Matches(keyMsg, f.keys.Prev):
		f.focus = (f.focus + splitFieldCount - 1) % splitFieldCount
		return f, f.applyFocus()
	}

	switch f.focus {
	case splitFieldBill:
		return f, f.edit(&f.bill, msg, f.draft.SetBillTotal)
	case splitFieldExpense:
		return f, f.edit(&f.expense, msg, f.draft.SetUserExpense)
	case splitFieldPayer:
		switch {
		case key.Matches(keyMsg, f.keys.Toggle):
			f.draft.TogglePayer()
		case key.Matches(keyMsg, f.keys.Self):
			f.draft.SetPayer(form.PayerSelf)
		case key.Matches(keyMsg, f.keys.Friend):
			f.draft.SetPayer(form.PayerFriend)
		default:
			return f, nil
		}
		f.logger.Debug("payer switched", "payer", f.draft.Payer().String())
	}
	return f, nil
}

// edit applies a keystroke to input and pushes the result through set.
// When set rejects the new text the keystroke is undone, which is how the
// expense clamp and the number-only rule hold while typing.
func (f *FormSplitBill) edit(input *textinput.Model, msg tea.Msg, set func(string) error) tea.Cmd {
	prev := input.Value()
	prevPos := input.Position()

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if input.Value() == prev {
		return cmd
	}

	if err := set(input.Value()); err != nil {
		f.logger.Debug("keystroke rejected", "value", input.Value(), "error", err)
		input.SetValue(prev)
		input.SetCursor(prevPos)
	}
	return cmd
}

// Submit computes the balance delta. On success the returned command emits
// SplitBillMsg; a missing field returns nil and keeps the form as is.
func (f *FormSplitBill) Submit() tea.Cmd {
	delta, err := f.draft.Submit()
	if err != nil {
		f.logger.Debug("split rejected", "friend", f.friend.ID, "error", err)
		return nil
	}
	return emit(SplitBillMsg{FriendID: f.friend.ID, Delta: delta})
}

// View renders the form.
func (f *FormSplitBill) View() string {
	t := f.theme
	name := f.friend.Name

	// empty until a bill total is entered
	derived := t.Derived.Render(f.draft.FriendExpense().String())

	rows := []string{
		t.Title.Render("Split a bill with " + name),
		"",
		fieldRow(t, "Bill value", splitLabelWidth, f.bill.View(), f.focus == splitFieldBill),
		fieldRow(t, "Your expense", splitLabelWidth, f.expense.View(), f.focus == splitFieldExpense),
		fieldRow(t, name+"'s expense", splitLabelWidth, derived, false),
		fieldRow(t, "Who is paying?", splitLabelWidth, f.payerView(), f.focus == splitFieldPayer),
		"",
		f.submit.View(f.focus == splitFieldSubmit),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (f *FormSplitBill) payerView() string {
	t := f.theme
	self, other := t.Option, t.Option
	if f.draft.Payer() == form.PayerSelf {
		self = t.OptionActive
	} else {
		other = t.OptionActive
	}
	return self.Render("You") + " " + other.Render(f.friend.Name)
}
