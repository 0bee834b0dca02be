// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package friend

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator returns a fresh identifier on every call.
type IDGenerator func() ID

// NewUUID returns a random 128-bit identifier.
func NewUUID() ID {
	return ID(uuid.NewString())
}

// Sequence returns a generator producing prefix1, prefix2, ...
// Safe for concurrent use.
func Sequence(prefix string) IDGenerator {
	var n atomic.Int64
	return func() ID {
		return ID(prefix + strconv.FormatInt(n.Add(1), 10))
	}
}

// AvatarURL appends id to base as a query suffix so that friends sharing the
// same base URL still get distinct avatars.
func AvatarURL(base string, id ID) string {
	base = strings.TrimSpace(base)
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "u=" + string(id)
}
