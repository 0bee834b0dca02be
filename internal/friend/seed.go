// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package friend

import "github.com/shopspring/decimal"

// AvatarBase is the avatar service used by the default seed.
const AvatarBase = "https://i.pravatar.cc/48"

// Seed returns the default friends shown on first start.
func Seed() []Friend {
	return []Friend{
		{ID: "118836", Name: "Clark", Image: AvatarURL(AvatarBase, "118836"), Balance: decimal.NewFromInt(-7)},
		{ID: "933372", Name: "Sarah", Image: AvatarURL(AvatarBase, "933372"), Balance: decimal.NewFromInt(20)},
		{ID: "499476", Name: "Anthony", Image: AvatarURL(AvatarBase, "499476"), Balance: decimal.Zero},
	}
}
