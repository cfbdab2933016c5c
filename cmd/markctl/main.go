// markctl - DoD/CAPCO security marking parser and validator CLI.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"github.com/jeranaias/markings/internal/cli"
)

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdParse:
		cli.HandleParse(args)
	case cli.CmdPortion:
		cli.HandlePortion(args)
	case cli.CmdBanner:
		cli.HandleBanner(args)
	case cli.CmdRenderAea:
		cli.HandleRenderAea(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}
}
