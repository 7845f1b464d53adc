// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package localnet

import (
	"errors"

	"github.com/rentacar/ledgersdk/actions"
	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/rpc"
)

type result struct {
	accounts map[codec.Address]*AccountRecord
	fee      chain.Amount
	txCode   string
	opCodes  []string
	// err is an internal failure, not a rejection.
	err error
}

// view holds the accounts touched by one envelope. Nothing reaches the
// store unless the whole envelope succeeds.
type view struct {
	store    *Store
	accounts map[codec.Address]*AccountRecord
}

func (v *view) get(addr codec.Address) (*AccountRecord, error) {
	if r, ok := v.accounts[addr]; ok {
		return r, nil
	}
	r, err := v.store.Account(addr)
	if err != nil {
		return nil, err
	}
	v.accounts[addr] = r
	return r, nil
}

// apply runs the envelope checks in order and then every operation.
// Assumes [n.l] is held.
func (n *Network) apply(tx *chain.Transaction) *result {
	now := n.cfg.Clock().Unix()
	switch err := tx.Base.ValidAt(now); {
	case errors.Is(err, chain.ErrTimestampTooEarly):
		return &result{txCode: rpc.TxTooEarly}
	case errors.Is(err, chain.ErrTimestampTooLate):
		return &result{txCode: rpc.TxTooLate}
	}

	minFee := uint64(n.cfg.BaseFee) * uint64(len(tx.Operations))
	if uint64(tx.Base.Fee) < minFee {
		return &result{txCode: rpc.TxInsufficientFee}
	}

	v := &view{store: n.store, accounts: map[codec.Address]*AccountRecord{}}
	source, err := v.get(tx.Base.Source)
	if errors.Is(err, rpc.ErrNotFound) {
		return &result{txCode: rpc.TxNoAccount}
	}
	if err != nil {
		return &result{err: err}
	}
	if tx.Base.Sequence != source.Sequence {
		return &result{txCode: rpc.TxBadSeq}
	}
	signed, err := tx.SignedBy(n.networkID, tx.Base.Source)
	if err != nil {
		return &result{err: err}
	}
	if !signed {
		return &result{txCode: rpc.TxBadAuth}
	}
	fee := chain.Amount(minFee)
	if chain.Amount(source.Native) < fee {
		return &result{txCode: rpc.TxInsufficientBal}
	}
	source.Native -= int64(fee)
	source.Sequence++

	codes := make([]string, 0, len(tx.Operations))
	for _, op := range tx.Operations {
		var code string
		switch o := op.(type) {
		case *actions.Payment:
			code, err = applyPayment(v, tx.Base.Source, o)
		case *actions.ChangeTrust:
			code, err = applyChangeTrust(v, tx.Base.Source, o)
		default:
			code = rpc.OpMalformed
		}
		if err != nil {
			return &result{err: err}
		}
		codes = append(codes, code)
		if code != rpc.OpSuccess {
			return &result{txCode: rpc.TxFailed, opCodes: codes}
		}
	}
	return &result{accounts: v.accounts, fee: fee}
}

func applyPayment(v *view, sourceAddr codec.Address, p *actions.Payment) (string, error) {
	source, err := v.get(sourceAddr)
	if err != nil {
		return "", err
	}
	dest, err := v.get(p.Destination)
	if errors.Is(err, rpc.ErrNotFound) {
		return rpc.OpNoDestination, nil
	}
	if err != nil {
		return "", err
	}
	amount := int64(p.Amount)

	if p.Asset.IsNative() {
		if source.Native < amount {
			return rpc.OpUnderfunded, nil
		}
		source.Native -= amount
		if dest.Native > int64(chain.MaxAmount)-amount {
			source.Native += amount
			return rpc.OpLineFull, nil
		}
		dest.Native += amount
		return rpc.OpSuccess, nil
	}

	issuer := p.Asset.Issuer
	if _, err := v.get(issuer); errors.Is(err, rpc.ErrNotFound) {
		return rpc.OpNoIssuer, nil
	} else if err != nil {
		return "", err
	}
	var from, to *TrustLine
	if sourceAddr != issuer {
		if from = source.line(p.Asset); from == nil {
			return rpc.OpNoTrust, nil
		}
		if from.Balance < amount {
			return rpc.OpUnderfunded, nil
		}
	}
	if p.Destination != issuer {
		if to = dest.line(p.Asset); to == nil {
			return rpc.OpNoTrust, nil
		}
	}
	if from != nil {
		from.Balance -= amount
	}
	if to != nil {
		if to.Balance > to.Limit-amount {
			if from != nil {
				from.Balance += amount
			}
			return rpc.OpLineFull, nil
		}
		to.Balance += amount
	}
	return rpc.OpSuccess, nil
}

func applyChangeTrust(v *view, sourceAddr codec.Address, c *actions.ChangeTrust) (string, error) {
	if c.Asset.IsNative() || c.Asset.Issuer == sourceAddr || c.Limit < 0 {
		return rpc.OpMalformed, nil
	}
	source, err := v.get(sourceAddr)
	if err != nil {
		return "", err
	}
	if _, err := v.get(c.Asset.Issuer); errors.Is(err, rpc.ErrNotFound) {
		return rpc.OpNoIssuer, nil
	} else if err != nil {
		return "", err
	}

	line := source.line(c.Asset)
	switch {
	case c.Removes():
		if line == nil || line.Balance > 0 {
			return rpc.OpInvalidLimit, nil
		}
		source.removeLine(c.Asset)
	case line == nil:
		source.addLine(c.Asset, c.Limit)
	default:
		if int64(c.Limit) < line.Balance {
			return rpc.OpInvalidLimit, nil
		}
		line.Limit = int64(c.Limit)
	}
	return rpc.OpSuccess, nil
}
