// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ledger owns the authoritative friend list, the current selection
// and the add-friend form visibility.
//
// State is a value type. Every operation returns a new State and never
// mutates a friends slice that an earlier State may still reference, so views
// can hold on to snapshots safely.
//
// Transition rules:
//
//	ToggleAddFriend   flips the add-friend form
//	AddFriend         appends, closes the add-friend form
//	SelectFriend      selects, or deselects the same friend; always closes the add-friend form
//	ApplySplit        adjusts the selected friend's balance, clears the selection
//
// Selection and form visibility are tracked independently.
package ledger

import (
	"errors"
	"fmt"

	"github.com/jeranaias/splitbill-tui/internal/friend"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoSelection is returned by ApplySplit when no friend is selected.
	ErrNoSelection = errors.New("no friend selected")

	// ErrDuplicateFriend is returned by AddFriend when the id is already in use.
	ErrDuplicateFriend = errors.New("friend id already exists")

	// ErrInvalidFriend is returned by AddFriend for a record with missing fields.
	ErrInvalidFriend = errors.New("friend record is incomplete")
)

// State is the application state.
type State struct {
	friends       []friend.Friend
	selected      friend.ID // empty when nothing is selected
	showAddFriend bool
}

// New creates a State holding a copy of friends in the given order.
func New(friends []friend.Friend) State {
	return State{friends: append([]friend.Friend(nil), friends...)}
}

// =============================================================================
// READ ACCESSORS
// =============================================================================

// Friends returns a copy of the friends in insertion order.
func (s State) Friends() []friend.Friend {
	return append([]friend.Friend(nil), s.friends...)
}

// Len returns the number of friends.
func (s State) Len() int {
	return len(s.friends)
}

// At returns the friend at index i.
func (s State) At(i int) (friend.Friend, bool) {
	if i < 0 || i >= len(s.friends) {
		return friend.Friend{}, false
	}
	return s.friends[i], true
}

// Find returns the friend with the given id.
func (s State) Find(id friend.ID) (friend.Friend, bool) {
	if i := s.index(id); i >= 0 {
		return s.friends[i], true
	}
	return friend.Friend{}, false
}

// Selected returns the currently selected friend, if any.
func (s State) Selected() (friend.Friend, bool) {
	if s.selected == "" {
		return friend.Friend{}, false
	}
	return s.Find(s.selected)
}

// IsSelected reports whether id is the current selection.
func (s State) IsSelected(id friend.ID) bool {
	return s.selected != "" && s.selected == id
}

// ShowAddFriend reports whether the add-friend form is open.
func (s State) ShowAddFriend() bool {
	return s.showAddFriend
}

func (s State) index(id friend.ID) int {
	for i, f := range s.friends {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// ToggleAddFriend flips the add-friend form visibility.
func (s State) ToggleAddFriend() State {
	s.showAddFriend = !s.showAddFriend
	return s
}

// AddFriend appends f and closes the add-friend form.
func (s State) AddFriend(f friend.Friend) (State, error) {
	if !f.Valid() {
		return s, ErrInvalidFriend
	}
	if s.index(f.ID) >= 0 {
		return s, fmt.Errorf("%w: %s", ErrDuplicateFriend, f.ID)
	}

	next := make([]friend.Friend, len(s.friends), len(s.friends)+1)
	copy(next, s.friends)
	s.friends = append(next, f)
	s.showAddFriend = false
	return s, nil
}

// SelectFriend selects id, or clears the selection when id is already
// selected. The add-friend form is closed either way.
func (s State) SelectFriend(id friend.ID) State {
	if s.selected == id {
		s.selected = ""
	} else {
		s.selected = id
	}
	s.showAddFriend = false
	return s
}

// ApplySplit adds delta to the selected friend's balance and clears the
// selection. Every other entry is left untouched.
func (s State) ApplySplit(delta decimal.Decimal) (State, error) {
	i := s.index(s.selected)
	if s.selected == "" || i < 0 {
		return s, ErrNoSelection
	}

	next := make([]friend.Friend, len(s.friends))
	copy(next, s.friends)
	next[i] = next[i].Apply(delta)

	s.friends = next
	s.selected = ""
	return s, nil
}
