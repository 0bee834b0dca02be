// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the splitbill TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

  - Purple - Primary accent, focused buttons and borders
  - Cyan - Brand color, titles and the list cursor
  - Emerald - A friend owes you
  - Rose - You owe a friend
  - Amber - Hints and the payer toggle

# Theme System (theme.go)

	theme := styles.NewTheme("auto")
	if theme.IsDark {
		// Dark terminal detected (or forced with "dark")
	}
	style := theme.BalanceStyle(f.Standing())
*/
package styles
