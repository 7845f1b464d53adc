// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/rpc"
)

// Balance is the holding of one asset. Limit is only set for issued assets.
type Balance struct {
	Asset  chain.Asset
	Amount chain.Amount
	Limit  chain.Amount
}

// AccountSnapshot is the state of an account at LoadedAt. It is never
// refreshed; load a new one to observe later state.
type AccountSnapshot struct {
	Address  codec.Address
	Sequence uint64
	// Balances lists the native balance first, then issued assets in the
	// order the network reported them.
	Balances []Balance
	LoadedAt time.Time
}

// Balance returns the amount held of [asset] and whether the account holds
// it at all (native, or a trust line for issued assets).
func (s *AccountSnapshot) Balance(asset chain.Asset) (chain.Amount, bool) {
	for _, b := range s.Balances {
		if b.Asset == asset {
			return b.Amount, true
		}
	}
	return 0, false
}

// Trusts reports whether the account has a trust line to [asset].
func (s *AccountSnapshot) Trusts(asset chain.Asset) bool {
	if asset.IsNative() {
		return true
	}
	_, ok := s.Balance(asset)
	return ok
}

// DisplayBalance is a balance as shown to users.
type DisplayBalance struct {
	AssetCode string `json:"assetCode"`
	Amount    string `json:"amount"`
}

// Display renders the balances with the native asset shown as XLM.
func (s *AccountSnapshot) Display() []DisplayBalance {
	out := make([]DisplayBalance, 0, len(s.Balances))
	for _, b := range s.Balances {
		out = append(out, DisplayBalance{
			AssetCode: b.Asset.DisplayCode(),
			Amount:    b.Amount.String(),
		})
	}
	return out
}

func newSnapshot(addr codec.Address, reply *rpc.AccountReply, loadedAt time.Time) (*AccountSnapshot, error) {
	seq, err := strconv.ParseUint(reply.Sequence, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: sequence %q", ErrInvalidAccountReply, reply.Sequence)
	}
	snapshot := &AccountSnapshot{
		Address:  addr,
		Sequence: seq,
		Balances: make([]Balance, 0, len(reply.Balances)),
		LoadedAt: loadedAt,
	}
	var native *Balance
	for _, r := range reply.Balances {
		b, err := parseBalance(r)
		if err != nil {
			return nil, err
		}
		if b.Asset.IsNative() {
			native = &b
			continue
		}
		snapshot.Balances = append(snapshot.Balances, b)
	}
	if native != nil {
		snapshot.Balances = append([]Balance{*native}, snapshot.Balances...)
	}
	return snapshot, nil
}

func parseBalance(r rpc.BalanceReply) (Balance, error) {
	amount, err := chain.ParseAmount(r.Balance)
	if err != nil {
		return Balance{}, fmt.Errorf("%w: %w", ErrInvalidAccountReply, err)
	}
	if r.AssetType == chain.AssetNative.String() {
		return Balance{Asset: chain.NativeAsset(), Amount: amount}, nil
	}
	issuer, err := codec.ParseAddress(r.AssetIssuer)
	if err != nil {
		return Balance{}, fmt.Errorf("%w: %w", ErrInvalidAccountReply, err)
	}
	asset, err := chain.NewIssuedAsset(r.AssetCode, issuer)
	if err != nil {
		return Balance{}, fmt.Errorf("%w: %w", ErrInvalidAccountReply, err)
	}
	if asset.Type().String() != r.AssetType {
		return Balance{}, fmt.Errorf("%w: %s is not %s", ErrInvalidAccountReply, asset.Code, r.AssetType)
	}
	b := Balance{Asset: asset, Amount: amount, Limit: chain.MaxAmount}
	if len(r.Limit) > 0 {
		if b.Limit, err = chain.ParseAmount(r.Limit); err != nil {
			return Balance{}, fmt.Errorf("%w: %w", ErrInvalidAccountReply, err)
		}
	}
	return b, nil
}
