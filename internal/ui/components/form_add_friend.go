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
// ADD FRIEND FORM
// =============================================================================

const (
	addFieldName = iota
	addFieldImage
	addFieldSubmit
	addFieldCount
)

const addLabelWidth = 13

// FormAddFriend collects a name and an avatar URL. A valid submission emits
// AddFriendMsg; an invalid one does nothing. The draft is kept until the
// owner accepts the friend and calls Reset.
type FormAddFriend struct {
	name   textinput.Model
	image  textinput.Model
	submit Button
	focus  int

	draft  form.AddFriendDraft
	newID  friend.IDGenerator
	keys   FormKeyMap
	theme  *styles.Theme
	logger *slog.Logger
}

// NewFormAddFriend creates the form. defaultImage presets the image field;
// newID assigns ids to submitted friends.
func NewFormAddFriend(theme *styles.Theme, defaultImage string, newID friend.IDGenerator, logger *slog.Logger) *FormAddFriend {
	if logger == nil {
		logger = logging.Discard()
	}
	f := &FormAddFriend{
		name:   newField("Friend name", 20),
		image:  newField(form.DefaultImage, 20),
		draft:  form.NewAddFriendDraft(defaultImage),
		newID:  newID,
		keys:   DefaultFormKeyMap(),
		theme:  theme,
		logger: logger,
	}
	f.submit = NewButton(theme, "Add", nil)
	f.syncInputs()
	return f
}

// Draft returns the current unsaved input.
func (f *FormAddFriend) Draft() form.AddFriendDraft {
	return f.draft
}

// Focus focuses the name field.
func (f *FormAddFriend) Focus() tea.Cmd {
	f.focus = addFieldName
	return f.applyFocus()
}

// Blur removes focus from every field.
func (f *FormAddFriend) Blur() {
	f.name.Blur()
	f.image.Blur()
}

// Reset clears the draft back to its defaults and moves focus back to the
// name field.
func (f *FormAddFriend) Reset() {
	f.draft.Reset()
	f.syncInputs()
	f.focus = addFieldName
}

// SetDefaultImage replaces the preset image URL. An untouched image field
// follows the new default.
func (f *FormAddFriend) SetDefaultImage(image string) {
	f.draft.SetDefaultImage(image)
	f.image.SetValue(f.draft.Image)
}

func (f *FormAddFriend) syncInputs() {
	f.name.SetValue(f.draft.Name)
	f.image.SetValue(f.draft.Image)
}

func (f *FormAddFriend) applyFocus() tea.Cmd {
	f.Blur()
	switch f.focus {
	case addFieldName:
		return f.name.Focus()
	case addFieldImage:
		return f.image.Focus()
	}
	return nil
}

// Update handles key input while the form has focus.
func (f *FormAddFriend) Update(msg tea.Msg) (*FormAddFriend, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch {
	case key.Matches(keyMsg, f.keys.Leave):
		return f, ToggleAddFriend
	case key.Matches(keyMsg, f.keys.Submit):
		return f, f.Submit()
	case key.Matches(keyMsg, f.keys.Next):
		f.focus = (f.focus + 1) % addFieldCount
		return f, f.applyFocus()
	case key.Matches(keyMsg, f.keys.Prev):
		f.focus = (f.focus + addFieldCount - 1) % addFieldCount
		return f, f.applyFocus()
	}

	var cmd tea.Cmd
	switch f.focus {
	case addFieldName:
		f.name, cmd = f.name.Update(msg)
		f.draft.Name = f.name.Value()
	case addFieldImage:
		f.image, cmd = f.image.Update(msg)
		f.draft.Image = f.image.Value()
	}
	return f, cmd
}

// Submit validates the draft. On success the returned command emits
// AddFriendMsg; on failure it returns nil.
func (f *FormAddFriend) Submit() tea.Cmd {
	fr, err := f.draft.Submit(f.newID)
	if err != nil {
		f.logger.Debug("add friend rejected", "error", err)
		return nil
	}
	return emit(AddFriendMsg{Friend: fr})
}

// View renders the form.
func (f *FormAddFriend) View() string {
	t := f.theme
	rows := []string{
		t.Title.Render("Add a friend"),
		"",
		fieldRow(t, "Friend name", addLabelWidth, f.name.View(), f.focus == addFieldName),
		fieldRow(t, "Image URL", addLabelWidth, f.image.View(), f.focus == addFieldImage),
		"",
		f.submit.View(f.focus == addFieldSubmit),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
