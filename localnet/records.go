// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package localnet

import (
	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/codec"
)

// TrustLine is the holding of one issued asset. Fields are exported for
// borsh.
type TrustLine struct {
	Code    string
	Issuer  [codec.AddressLen]byte
	Balance int64
	Limit   int64
}

func (l *TrustLine) Asset() chain.Asset {
	return chain.Asset{Code: l.Code, Issuer: codec.Address(l.Issuer)}
}

// AccountRecord is the persisted state of one account.
type AccountRecord struct {
	Sequence uint64
	Native   int64
	Lines    []TrustLine
}

func (r *AccountRecord) line(asset chain.Asset) *TrustLine {
	for i := range r.Lines {
		if r.Lines[i].Code == asset.Code && codec.Address(r.Lines[i].Issuer) == asset.Issuer {
			return &r.Lines[i]
		}
	}
	return nil
}

func (r *AccountRecord) addLine(asset chain.Asset, limit chain.Amount) {
	r.Lines = append(r.Lines, TrustLine{
		Code:   asset.Code,
		Issuer: asset.Issuer,
		Limit:  int64(limit),
	})
}

func (r *AccountRecord) removeLine(asset chain.Asset) {
	for i := range r.Lines {
		if r.Lines[i].Code == asset.Code && codec.Address(r.Lines[i].Issuer) == asset.Issuer {
			r.Lines = append(r.Lines[:i], r.Lines[i+1:]...)
			return
		}
	}
}
