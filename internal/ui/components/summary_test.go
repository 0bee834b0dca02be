// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/splitbill-tui/internal/friend"
	"github.com/jeranaias/splitbill-tui/internal/ledger"
)

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(ledger.New(friend.Seed()), "$")

	assert.Contains(t, md, "| Clark | -$7 | you owe |")
	assert.Contains(t, md, "| Sarah | $20 | owes you |")
	assert.Contains(t, md, "| Anthony | $0 | even |")
	assert.Contains(t, md, "**Owed to you:** $20 (1 friend)")
	assert.Contains(t, md, "**You owe:** $7 (1 friend)")
	assert.Contains(t, md, "**Net:** $13")
	assert.Less(t, strings.Index(md, "Clark"), strings.Index(md, "Sarah"))
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	md := SummaryMarkdown(ledger.New(nil), "$")
	assert.Contains(t, md, "No friends yet")
	assert.NotContains(t, md, "| Friend |")
}

func TestSummaryMarkdown_EscapesPipes(t *testing.T) {
	state := ledger.New([]friend.Friend{friend.New("p", "A|B", "img")})
	assert.Contains(t, SummaryMarkdown(state, "€"), `| A\|B | €0 | even |`)
}

func TestRenderSummary(t *testing.T) {
	out, err := RenderSummary(ledger.New(friend.Seed()), "$", "notty", 80)
	require.NoError(t, err)
	assert.Contains(t, out, "Balances")
	assert.Contains(t, out, "Clark")
	assert.Contains(t, out, "Sarah")
}
