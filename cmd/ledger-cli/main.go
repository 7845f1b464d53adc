// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "ledger-cli" manages keys and sends payments on a ledger network.
package main

import (
	"os"

	"github.com/rentacar/ledgersdk/cmd/ledger-cli/cmd"
	"github.com/rentacar/ledgersdk/utils"
)

func main() {
	if err := cmd.Execute(); err != nil {
		utils.Outf("{{red}}ledger-cli failed:{{/}} %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
