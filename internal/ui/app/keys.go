// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jeranaias/splitbill-tui/internal/ui/components"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the list-level key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	AddFriend key.Binding
	Forms     key.Binding
	Summary   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select/close"),
		),
		AddFriend: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add friend"),
		),
		Forms: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "go to form"),
		),
		Summary: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "summary"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// =============================================================================
// CONTEXT-AWARE HELP
// =============================================================================

// helpKeys adapts a fixed set of bindings to help.KeyMap.
type helpKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding  { return h.short }
func (h helpKeys) FullHelp() [][]key.Binding { return h.full }

// helpFor returns the bindings that apply to the focused area.
func helpFor(focus Focus, k KeyMap, f components.FormKeyMap) helpKeys {
	switch focus {
	case FocusAddFriend:
		return helpKeys{
			short: []key.Binding{f.Next, f.Submit, f.Leave, k.ForceQuit},
			full:  [][]key.Binding{{f.Next, f.Prev}, {f.Submit, f.Leave, k.ForceQuit}},
		}
	case FocusSplitBill:
		return helpKeys{
			short: []key.Binding{f.Next, f.Toggle, f.Submit, f.Leave},
			full:  [][]key.Binding{{f.Next, f.Prev, f.Toggle}, {f.Self, f.Friend}, {f.Submit, f.Leave, k.ForceQuit}},
		}
	default:
		return helpKeys{
			short: []key.Binding{k.Select, k.AddFriend, k.Summary, k.Help, k.Quit},
			full: [][]key.Binding{
				{k.Up, k.Down, k.Select},
				{k.AddFriend, k.Forms, k.Summary},
				{k.Help, k.Quit},
			},
		}
	}
}
