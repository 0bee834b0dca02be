// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Purple - Primary accent, focused elements
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Cyan - Brand color, titles, list cursor
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Friend owes you
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - You owe a friend
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Hints, payer toggle
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders, separators, subtle backgrounds
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// SelectionBg - Selected friend row
var SelectionBg = lipgloss.AdaptiveColor{Light: "#FFF4E6", Dark: "#3B3655"}

// FocusRing - Border of the focused panel
var FocusRing = Cyan

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, disabled fields
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// =============================================================================
// AVATAR COLORS
// =============================================================================

// AvatarPalette colors avatar badges; a friend's color is picked from their id.
var AvatarPalette = []lipgloss.AdaptiveColor{
	{Light: "#7C3AED", Dark: "#A78BFA"},
	{Light: "#0891B2", Dark: "#22D3EE"},
	{Light: "#059669", Dark: "#34D399"},
	{Light: "#D97706", Dark: "#FBBF24"},
	{Light: "#DB2777", Dark: "#F472B6"},
	{Light: "#2563EB", Dark: "#60A5FA"},
}

// AvatarColor returns a stable palette color for key.
func AvatarColor(key string) lipgloss.AdaptiveColor {
	h := fnv.New32a()
	h.Write([]byte(key))
	return AvatarPalette[h.Sum32()%uint32(len(AvatarPalette))]
}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicatorSet holds shape indicators shown next to colored text.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Info    string
}

// StatusIndicators keeps status readable without color.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Info:    "[i]",
}
