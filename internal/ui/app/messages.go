// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import "github.com/jeranaias/splitbill-tui/internal/config"

// ConfigReloadedMsg is sent when the config file changed on disk. Err is set
// when the new file could not be loaded; the running settings are kept then.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}
