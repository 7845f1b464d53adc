// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/neilotoole/errgroup"

	"github.com/rentacar/ledgersdk/auth"
	"github.com/rentacar/ledgersdk/cli/prompt"
	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/ledger"
	"github.com/rentacar/ledgersdk/utils"
)

// GenerateKey creates, stores and selects a new key.
func (h *Handler) GenerateKey() (*auth.Keypair, error) {
	k, err := auth.GenerateKeypair()
	if err != nil {
		return nil, err
	}
	if err := h.addKey(k); err != nil {
		return nil, err
	}
	utils.Outf("{{green}}created address:{{/}} %s\n", k.PublicKey())
	return k, nil
}

// ImportKey stores and selects the key with [secret] (seed1...).
func (h *Handler) ImportKey(secret string) (*auth.Keypair, error) {
	k, err := auth.ParseSecret(strings.TrimSpace(secret))
	if err != nil {
		return nil, err
	}
	if err := h.addKey(k); err != nil {
		return nil, err
	}
	utils.Outf("{{green}}imported address:{{/}} %s\n", k.PublicKey())
	return k, nil
}

func (h *Handler) addKey(k *auth.Keypair) error {
	if err := h.StoreKey(k); err != nil {
		return err
	}
	return h.StoreDefaultKey(k.Address())
}

// SetKey lists the stored keys with their balances and stores the one
// picked as the default.
func (h *Handler) SetKey(ctx context.Context) error {
	keys, err := h.GetKeys()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		utils.Outf("{{red}}no stored keys{{/}}\n")
		return ErrNoKeys
	}
	utils.Outf("{{cyan}}stored keys:{{/}} %d\n", len(keys))
	addrs := make([]codec.Address, 0, len(keys))
	for _, k := range keys {
		addrs = append(addrs, k.Address())
	}
	results := h.loadBalances(ctx, addrs)
	for i, k := range keys {
		utils.Outf("%d) {{cyan}}address:{{/}} %s {{cyan}}balances:{{/}} %s\n", i, k.PublicKey(), results[i])
	}
	keyIndex, err := prompt.Choice("set default key", len(keys))
	if err != nil {
		return err
	}
	return h.StoreDefaultKey(keys[keyIndex].Address())
}

// Balances prints the balances of [addrs], loaded in parallel. With no
// addresses the default key is used.
func (h *Handler) Balances(ctx context.Context, addrs []codec.Address) error {
	if len(addrs) == 0 {
		k, err := h.GetDefaultKey()
		if err != nil {
			return err
		}
		addrs = []codec.Address{k.Address()}
	}
	results := h.loadBalances(ctx, addrs)
	var errs []error
	for i, addr := range addrs {
		if results[i].err != nil {
			utils.Outf("{{cyan}}address:{{/}} %s {{red}}%v{{/}}\n", addr, results[i].err)
			errs = append(errs, results[i].err)
			continue
		}
		utils.Outf("{{cyan}}address:{{/}} %s {{cyan}}balances:{{/}} %s\n", addr, results[i])
	}
	return errors.Join(errs...)
}

type balanceResult struct {
	balances []ledger.DisplayBalance
	err      error
}

func (r balanceResult) String() string {
	if r.err != nil {
		return r.err.Error()
	}
	parts := make([]string, len(r.balances))
	for i, b := range r.balances {
		parts[i] = utils.FormatBalance(b.Amount) + " " + b.AssetCode
	}
	return strings.Join(parts, ", ")
}

// loadBalances issues one account request per address concurrently. A
// failed load does not cancel the others.
func (h *Handler) loadBalances(ctx context.Context, addrs []codec.Address) []balanceResult {
	results := make([]balanceResult, len(addrs))
	g, gctx := errgroup.WithContext(ctx)
	for i, addr := range addrs {
		i, addr := i, addr
		g.Go(func() error {
			results[i].balances, results[i].err = ledger.Balances(gctx, h.env, addr)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
