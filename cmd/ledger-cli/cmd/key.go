// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rentacar/ledgersdk/cli"
	"github.com/rentacar/ledgersdk/utils"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manages stored keys",
	RunE: func(*cobra.Command, []string) error {
		return cli.ErrMissingSubcommand
	},
}

var genKeyCmd = &cobra.Command{
	Use:   "generate",
	Short: "Creates a new key and makes it the default",
	RunE: func(*cobra.Command, []string) error {
		_, err := handler.GenerateKey()
		return err
	},
}

var importKeyCmd = &cobra.Command{
	Use:   "import [secret]",
	Short: "Stores an existing secret (seed1...) and makes it the default",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		_, err := handler.ImportKey(args[0])
		return err
	},
}

var setKeyCmd = &cobra.Command{
	Use:   "set",
	Short: "Selects the default key",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return handler.SetKey(cmd.Context())
	},
}

var showKeyCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the default key",
	RunE: func(*cobra.Command, []string) error {
		k, err := handler.GetDefaultKey()
		if err != nil {
			return err
		}
		utils.Outf("{{cyan}}address:{{/}} %s\n", k.PublicKey())
		return nil
	},
}
