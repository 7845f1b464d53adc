// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"context"
	"fmt"

	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/cli/prompt"
	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/ledger"
	"github.com/rentacar/ledgersdk/utils"
)

// Fund asks the faucet to create [addr], or the default key if empty.
func (h *Handler) Fund(ctx context.Context, addr codec.Address) error {
	if addr == codec.EmptyAddress {
		k, err := h.GetDefaultKey()
		if err != nil {
			return err
		}
		addr = k.Address()
	}
	if err := ledger.Fund(ctx, h.env, addr); err != nil {
		return err
	}
	utils.Outf("{{green}}funded:{{/}} %s\n", addr)
	return nil
}

// PaymentArgs are the optional inputs of [Handler.Pay]. Anything left
// empty is prompted for.
type PaymentArgs struct {
	Destination string
	Asset       string
	Amount      string
	Confirm     bool
}

func (h *Handler) Pay(ctx context.Context, args PaymentArgs) error {
	signer, err := h.GetDefaultKey()
	if err != nil {
		return err
	}
	snapshot, err := ledger.LoadAccount(ctx, h.env, signer.Address())
	if err != nil {
		return err
	}

	var asset chain.Asset
	if len(args.Asset) == 0 {
		asset, err = prompt.Asset("asset", true)
	} else {
		asset, err = chain.ParseAsset(args.Asset)
	}
	if err != nil {
		return err
	}
	balance, ok := snapshot.Balance(asset)
	if !ok && asset.Issuer != signer.Address() {
		utils.Outf("{{red}}no trust line for %s{{/}}\n", asset)
	}
	utils.Outf("{{yellow}}balance:{{/}} %s %s\n", balance, asset.DisplayCode())

	if len(args.Destination) == 0 {
		dest, err := prompt.Address("destination")
		if err != nil {
			return err
		}
		args.Destination = dest.String()
	}
	if len(args.Amount) == 0 {
		limit := balance
		if asset.Issuer == signer.Address() {
			limit = chain.MaxAmount
		}
		args.Amount, err = prompt.Amount("amount", limit)
		if err != nil {
			return err
		}
	}
	if !args.Confirm {
		cont, err := prompt.Continue()
		if err != nil || !cont {
			return err
		}
	}
	outcome, err := ledger.SendPayment(ctx, h.env, signer, args.Destination, asset, args.Amount)
	if err != nil {
		return err
	}
	return PrintOutcome(outcome)
}

// Trust creates or changes the default key's trust line to [rawAsset].
func (h *Handler) Trust(ctx context.Context, rawAsset string, limit string) error {
	signer, err := h.GetDefaultKey()
	if err != nil {
		return err
	}
	asset, err := chain.ParseAsset(rawAsset)
	if err != nil {
		return err
	}
	outcome, err := ledger.ChangeTrust(ctx, h.env, signer, asset, limit)
	if err != nil {
		return err
	}
	return PrintOutcome(outcome)
}

// Issue runs the issuance workflow with the default key as issuer and the
// stored key [receiver] as receiver.
func (h *Handler) Issue(ctx context.Context, receiver codec.Address, code, amount, limit string) error {
	issuer, err := h.GetDefaultKey()
	if err != nil {
		return err
	}
	recv, err := h.GetKey(receiver)
	if err != nil {
		return err
	}
	w, err := ledger.NewIssuance(h.env, ledger.IssuanceRequest{
		Issuer:   issuer,
		Receiver: recv,
		Code:     code,
		Amount:   amount,
		Limit:    limit,
	})
	if err != nil {
		return err
	}
	utils.Outf("{{yellow}}issuing:{{/}} %s %s {{yellow}}workflow:{{/}} %s\n", amount, w.Asset(), w.ID())
	runErr := w.Run(ctx)
	for _, o := range w.Outcomes() {
		_ = PrintOutcome(o)
	}
	if runErr != nil {
		utils.Outf("{{red}}workflow %s:{{/}} %v\n", w.State(), runErr)
		return runErr
	}
	utils.Outf("{{green}}workflow %s{{/}}\n", w.State())
	return nil
}

// PrintOutcome renders [o] and returns its error, if any.
func PrintOutcome(o *ledger.Outcome) error {
	switch o.Status {
	case ledger.Committed:
		utils.Outf("✅ {{yellow}}hash:{{/}} %s {{yellow}}ledger:{{/}} %d {{yellow}}fee:{{/}} %s\n", o.Hash, o.Ledger, o.FeeCharged)
		return nil
	case ledger.Rejected:
		codes := "-"
		if o.ResultCodes != nil {
			codes = o.ResultCodes.String()
		}
		utils.Outf("⚠️ {{yellow}}hash:{{/}} %s {{red}}rejected (%s):{{/}} %s\n", o.Hash, o.Class, codes)
	default:
		utils.Outf("⚠️ {{yellow}}hash:{{/}} %s {{red}}outcome unknown:{{/}} %v\n", o.Hash, o.Cause)
	}
	return fmt.Errorf("%w: %w", ErrTxFailed, o.Err())
}
