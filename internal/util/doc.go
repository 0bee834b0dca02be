// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package util provides small helpers shared by the splitbill packages.

# Atomic File Writes (atomic.go)

AtomicWriteFile writes through a temporary file, fsyncs it and renames it
over the target, so a crash leaves either the old or the new config file.

	err := util.AtomicWriteFile(path, data, 0600)

# Display Width (string.go)

Terminal columns are not runes. Friend names may contain wide characters
(CJK, emoji), so truncation and padding go through go-runewidth:

	name := util.TruncateWidth(f.Name, 20)
	cell := util.PadWidth(name, 20)
*/
package util
