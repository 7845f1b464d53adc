// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rentacar/ledgersdk/cli"
	"github.com/rentacar/ledgersdk/codec"
)

var (
	payAsset  string
	payAmount string
	payYes    bool

	trustLimit string

	issueCode   string
	issueAmount string
	issueLimit  string
)

func init() {
	payCmd.Flags().StringVar(&payAsset, "asset", "", "asset to send (native or CODE:ISSUER)")
	payCmd.Flags().StringVar(&payAmount, "amount", "", "amount to send")
	payCmd.Flags().BoolVarP(&payYes, "yes", "y", false, "skip the confirmation prompt")

	trustCmd.Flags().StringVar(&trustLimit, "limit", "", "trust line limit (0 removes the line)")

	issueCmd.Flags().StringVar(&issueCode, "code", "", "asset code")
	issueCmd.Flags().StringVar(&issueAmount, "amount", "", "amount to issue")
	issueCmd.Flags().StringVar(&issueLimit, "limit", "", "receiver trust line limit")
	_ = issueCmd.MarkFlagRequired("code")
	_ = issueCmd.MarkFlagRequired("amount")
}

func parseAddresses(args []string) ([]codec.Address, error) {
	addrs := make([]codec.Address, 0, len(args))
	for _, arg := range args {
		addr, err := codec.ParseAddress(arg)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

var balanceCmd = &cobra.Command{
	Use:   "balance [address...]",
	Short: "Prints the balances of the default key or the given addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args)
		if err != nil {
			return err
		}
		return handler.Balances(cmd.Context(), addrs)
	},
}

var fundCmd = &cobra.Command{
	Use:   "fund [address]",
	Short: "Creates an account with the faucet (testnet and local only)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := parseAddresses(args)
		if err != nil {
			return err
		}
		addr := codec.EmptyAddress
		if len(addrs) == 1 {
			addr = addrs[0]
		}
		return handler.Fund(cmd.Context(), addr)
	},
}

var payCmd = &cobra.Command{
	Use:   "pay [destination]",
	Short: "Sends a payment from the default key",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pa := cli.PaymentArgs{
			Asset:   payAsset,
			Amount:  payAmount,
			Confirm: payYes,
		}
		if len(args) == 1 {
			pa.Destination = args[0]
		}
		return handler.Pay(cmd.Context(), pa)
	},
}

var trustCmd = &cobra.Command{
	Use:   "trust [CODE:ISSUER]",
	Short: "Creates, changes or removes a trust line of the default key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return handler.Trust(cmd.Context(), args[0], trustLimit)
	},
}

var issueCmd = &cobra.Command{
	Use:   "issue [receiver]",
	Short: "Issues an asset from the default key to a stored receiver key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		receiver, err := codec.ParseAddress(args[0])
		if err != nil {
			return err
		}
		return handler.Issue(cmd.Context(), receiver, issueCode, issueAmount, issueLimit)
	},
}

var listingCmd = &cobra.Command{
	Use:   "listing [file.json]",
	Short: "Validates a car listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return handler.CheckListing(args[0])
	},
}
