// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToasts_PushAndExpire(t *testing.T) {
	ts := NewToasts(0)

	assert.Nil(t, ts.Push(ToastSuccess, "Added Dana"))
	ts.Push(ToastError, "config reload failed")

	items := ts.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Added Dana", items[0].Message)

	ts.Expire(items[0].ID)
	items = ts.Items()
	require.Len(t, items, 1)
	assert.Equal(t, ToastError, items[0].Kind)

	ts.Expire(999)
	assert.Len(t, ts.Items(), 1)
}

func TestToasts_KeepsNewest(t *testing.T) {
	ts := NewToasts(0)
	for _, m := range []string{"one", "two", "three", "four"} {
		ts.Push(ToastStatus, m)
	}

	items := ts.Items()
	require.Len(t, items, maxToasts)
	assert.Equal(t, "two", items[0].Message)
	assert.Equal(t, "four", items[2].Message)
}

func TestToasts_ExpiryCommand(t *testing.T) {
	ts := NewToasts(time.Millisecond)
	cmd := ts.Push(ToastStatus, "config reloaded")

	msg := msgOf(t, cmd)
	assert.Equal(t, ToastExpiredMsg{ID: ts.Items()[0].ID}, msg)
}

func TestToasts_View(t *testing.T) {
	ts := NewToasts(0)
	assert.Equal(t, "", ts.View(80))

	ts.Push(ToastSuccess, "Clark owes you $8")
	ts.Push(ToastError, strings.Repeat("x", 100))

	view := ts.View(40)
	assert.Contains(t, view, "[OK] Clark owes you $8")
	assert.Contains(t, view, "[X]")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}
