// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/splitbill-tui/internal/friend"
	"github.com/jeranaias/splitbill-tui/internal/ledger"
)

// =============================================================================
// BALANCE SUMMARY
// =============================================================================

// SummaryMarkdown renders the ledger as a markdown document: one table row
// per friend in list order, followed by the totals.
func SummaryMarkdown(state ledger.State, currency string) string {
	var b strings.Builder

	b.WriteString("# Balances\n\n")

	friends := state.Friends()
	if len(friends) == 0 {
		b.WriteString("_No friends yet._\n")
		return b.String()
	}

	b.WriteString("| Friend | Balance | Standing |\n")
	b.WriteString("| :--- | ---: | :--- |\n")
	for _, f := range friends {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			escapeCell(f.Name),
			friend.FormatAmount(f.Balance, currency),
			f.Standing())
	}

	sum := state.Summary()
	b.WriteString("\n")
	fmt.Fprintf(&b, "- **Owed to you:** %s (%s)\n",
		friend.FormatAmount(sum.OwedToYou, currency), pluralize(sum.Owing, "friend", "friends"))
	fmt.Fprintf(&b, "- **You owe:** %s (%s)\n",
		friend.FormatAmount(sum.YouOwe, currency), pluralize(sum.Owed, "friend", "friends"))
	fmt.Fprintf(&b, "- **Settled:** %s\n", pluralize(sum.Settled, "friend", "friends"))
	fmt.Fprintf(&b, "- **Net:** %s\n", friend.FormatAmount(sum.Net(), currency))

	return b.String()
}

// RenderSummary renders SummaryMarkdown through glamour. style is a glamour
// standard style name ("dark", "light", "notty").
func RenderSummary(state ledger.State, currency, style string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create summary renderer: %w", err)
	}
	out, err := r.Render(SummaryMarkdown(state, currency))
	if err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return out, nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
