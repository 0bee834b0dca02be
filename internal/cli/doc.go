// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cli parses the splitbill command line.

	cmd, args, err := cli.Parse(os.Args[1:])
	if errors.Is(err, cli.ErrUsage) {
		cli.ShowUsage(os.Stderr)
	}

Flags given on the command line override the config file and SPLITBILL_*
environment variables.
*/
package cli
