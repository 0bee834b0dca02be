// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ledger

import (
	"errors"
	"testing"

	"github.com/jeranaias/splitbill-tui/internal/friend"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func balances(s State) map[friend.ID]string {
	out := make(map[friend.ID]string)
	for _, f := range s.Friends() {
		out[f.ID] = f.Balance.String()
	}
	return out
}

// =============================================================================
// ADD FRIEND
// =============================================================================

func TestAddFriend_AppendsInOrder(t *testing.T) {
	s := New(friend.Seed())
	next := friend.Sequence("new-")

	for i := 0; i < 5; i++ {
		var err error
		s, err = s.AddFriend(friend.New(next(), "Friend", "https://i.pravatar.cc/48"))
		require.NoError(t, err)
	}

	require.Equal(t, 8, s.Len())
	for i, f := range s.Friends()[3:] {
		assert.Equal(t, friend.ID("new-"+string(rune('1'+i))), f.ID)
		assert.True(t, f.Balance.IsZero(), "new friend must start settled")
	}
	assert.Equal(t, "Clark", s.Friends()[0].Name, "insertion order is preserved")
}

func TestAddFriend_ClosesForm(t *testing.T) {
	s := New(nil).ToggleAddFriend()
	require.True(t, s.ShowAddFriend())

	s, err := s.AddFriend(friend.New("1", "Ann", "img"))
	require.NoError(t, err)
	assert.False(t, s.ShowAddFriend())
}

func TestAddFriend_RejectsDuplicateID(t *testing.T) {
	s := New(friend.Seed()).ToggleAddFriend()

	got, err := s.AddFriend(friend.New("118836", "Clone", "img"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateFriend))
	assert.Equal(t, 3, got.Len())
	assert.True(t, got.ShowAddFriend(), "state must be unchanged on error")
}

func TestAddFriend_RejectsIncomplete(t *testing.T) {
	_, err := New(nil).AddFriend(friend.Friend{ID: "1"})
	assert.ErrorIs(t, err, ErrInvalidFriend)
}

func TestAddFriend_DoesNotMutatePreviousState(t *testing.T) {
	before := New(friend.Seed())
	after, err := before.AddFriend(friend.New("x", "Xavier", "img"))
	require.NoError(t, err)

	assert.Equal(t, 3, before.Len())
	assert.Equal(t, 4, after.Len())
}

// =============================================================================
// SELECTION
// =============================================================================

func TestSelectFriend_Toggle(t *testing.T) {
	s := New(friend.Seed())

	s = s.SelectFriend("118836")
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Clark", sel.Name)
	assert.True(t, s.IsSelected("118836"))

	s = s.SelectFriend("118836")
	_, ok = s.Selected()
	assert.False(t, ok, "selecting the selected friend deselects")
}

func TestSelectFriend_SwitchesSelection(t *testing.T) {
	s := New(friend.Seed()).SelectFriend("118836").SelectFriend("933372")
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Sarah", sel.Name)
	assert.False(t, s.IsSelected("118836"))
}

func TestSelectFriend_AlwaysClosesAddForm(t *testing.T) {
	s := New(friend.Seed()).ToggleAddFriend()
	s = s.SelectFriend("499476")
	assert.False(t, s.ShowAddFriend())

	// deselecting closes it too
	s = s.ToggleAddFriend().SelectFriend("499476")
	assert.False(t, s.ShowAddFriend())
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestToggleAddFriend_KeepsSelection(t *testing.T) {
	s := New(friend.Seed()).SelectFriend("933372").ToggleAddFriend()
	assert.True(t, s.ShowAddFriend())
	assert.True(t, s.IsSelected("933372"), "selection and form visibility are independent")

	s = s.ToggleAddFriend()
	assert.False(t, s.ShowAddFriend())
	assert.True(t, s.IsSelected("933372"))
}

// =============================================================================
// APPLY SPLIT
// =============================================================================

func TestApplySplit_ChangesOnlySelected(t *testing.T) {
	s := New(friend.Seed()).SelectFriend("118836")
	before := balances(s)

	s, err := s.ApplySplit(dec("15"))
	require.NoError(t, err)

	after := balances(s)
	assert.Equal(t, "8", after["118836"])
	for id, b := range before {
		if id != "118836" {
			assert.Equal(t, b, after[id], "friend %s must be unchanged", id)
		}
	}
	_, ok := s.Selected()
	assert.False(t, ok, "selection is cleared after a split")

	clark, _ := s.Find("118836")
	assert.Equal(t, "Clark owes you $8", clark.BalanceMessage("$"))
}

func TestApplySplit_FriendPays(t *testing.T) {
	s := New(friend.Seed()).SelectFriend("933372")
	s, err := s.ApplySplit(dec("-10"))
	require.NoError(t, err)

	sarah, _ := s.Find("933372")
	assert.True(t, dec("10").Equal(sarah.Balance))
}

func TestApplySplit_NoSelection(t *testing.T) {
	s := New(friend.Seed())
	got, err := s.ApplySplit(dec("5"))
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, balances(s), balances(got))
}

func TestApplySplit_DoesNotMutatePreviousState(t *testing.T) {
	before := New(friend.Seed()).SelectFriend("499476")
	_, err := before.ApplySplit(dec("3.25"))
	require.NoError(t, err)

	anthony, _ := before.Find("499476")
	assert.True(t, anthony.Balance.IsZero())
	assert.True(t, before.IsSelected("499476"))
}

func TestAt(t *testing.T) {
	s := New(friend.Seed())
	f, ok := s.At(1)
	require.True(t, ok)
	assert.Equal(t, "Sarah", f.Name)

	_, ok = s.At(-1)
	assert.False(t, ok)
	_, ok = s.At(3)
	assert.False(t, ok)
}

// =============================================================================
// SUMMARY
// =============================================================================

func TestSummary(t *testing.T) {
	sum := New(friend.Seed()).Summary()

	assert.Equal(t, 3, sum.Friends)
	assert.Equal(t, 1, sum.Owing)
	assert.Equal(t, 1, sum.Owed)
	assert.Equal(t, 1, sum.Settled)
	assert.True(t, dec("20").Equal(sum.OwedToYou))
	assert.True(t, dec("7").Equal(sum.YouOwe))
	assert.True(t, dec("13").Equal(sum.Net()))
}

func TestSummary_Empty(t *testing.T) {
	sum := New(nil).Summary()
	assert.Equal(t, 0, sum.Friends)
	assert.True(t, sum.Net().IsZero())
}
