// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"
	"time"

	"github.com/rentacar/ledgersdk/actions"
	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/config"
	"github.com/rentacar/ledgersdk/consts"
)

// BuildParams controls the fee, validity window and memo of a built
// envelope.
type BuildParams struct {
	// BaseFee is charged per operation, in stroops.
	BaseFee uint32
	// Timeout is how long after Now the envelope stays valid.
	Timeout time.Duration
	// Now defaults to the wall clock.
	Now  time.Time
	Memo string
}

// DefaultBuildParams returns the fee and validity window configured in
// [cfg].
func DefaultBuildParams(cfg *config.Config) BuildParams {
	return BuildParams{
		BaseFee: cfg.BaseFee,
		Timeout: cfg.TxTimeout,
	}
}

func (p BuildParams) now() time.Time {
	if p.Now.IsZero() {
		return time.Now()
	}
	return p.Now
}

// Build composes an unsigned envelope from [snapshot]. The envelope carries
// the snapshot's sequence number, a fee of BaseFee per operation and a
// validity window ending Timeout after Now.
func Build(snapshot *AccountSnapshot, ops []chain.Operation, params BuildParams) (*chain.Transaction, error) {
	switch {
	case len(ops) == 0:
		return nil, ErrEmptyOperationSet
	case len(ops) > consts.MaxOperations:
		return nil, chain.ErrTooManyOperations
	case params.Timeout <= 0:
		return nil, fmt.Errorf("%w: timeout %s", ErrExpiredBuildWindow, params.Timeout)
	}
	for i, op := range ops {
		if err := op.Validate(); err != nil {
			return nil, fmt.Errorf("%w: operation %d: %w", actions.ErrInvalidOperationParameters, i, err)
		}
	}
	baseFee := params.BaseFee
	if baseFee == 0 {
		baseFee = consts.BaseFee
	}
	fee := uint64(baseFee) * uint64(len(ops))
	if fee > uint64(consts.MaxUint32) {
		return nil, fmt.Errorf("%w: %d stroops", ErrFeeOverflow, fee)
	}

	now := params.now()
	ops = append([]chain.Operation(nil), ops...)
	tx := chain.NewTx(&chain.Base{
		Source:   snapshot.Address,
		Sequence: snapshot.Sequence,
		Fee:      uint32(fee),
		MinTime:  0,
		MaxTime:  now.Add(params.Timeout).Unix(),
		Memo:     params.Memo,
	}, ops)
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}

// Sign adds one signature per signer over the envelope's payload for the
// network identified by [passphrase]. Signers that already signed are
// skipped.
func Sign(tx *chain.Transaction, passphrase string, signers ...chain.Signer) error {
	return SignAt(tx, passphrase, time.Now(), signers...)
}

// SignAt is [Sign] with an explicit clock.
func SignAt(tx *chain.Transaction, passphrase string, now time.Time, signers ...chain.Signer) error {
	if len(signers) == 0 {
		return ErrNoSigners
	}
	if maxTime := tx.Base.MaxTime; maxTime != 0 && now.Unix() > maxTime {
		return fmt.Errorf("%w: window closed at %s", ErrExpiredBuildWindow, time.Unix(maxTime, 0).UTC())
	}
	networkID := chain.NetworkID(passphrase)
	for _, signer := range signers {
		if signer == nil {
			return ErrMissingSigner
		}
		if _, err := tx.Sign(networkID, signer); err != nil {
			return err
		}
	}
	return nil
}

// BuildAndSign builds an envelope and signs it with [signers].
func BuildAndSign(
	snapshot *AccountSnapshot,
	ops []chain.Operation,
	params BuildParams,
	passphrase string,
	signers ...chain.Signer,
) (*chain.Transaction, error) {
	if len(signers) == 0 {
		return nil, ErrNoSigners
	}
	tx, err := Build(snapshot, ops, params)
	if err != nil {
		return nil, err
	}
	if err := SignAt(tx, passphrase, params.now(), signers...); err != nil {
		return nil, err
	}
	return tx, nil
}
