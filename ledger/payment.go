// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"

	"github.com/rentacar/ledgersdk/actions"
	"github.com/rentacar/ledgersdk/chain"
)

// SendPayment sends [amount] of [asset] from the signer's account to
// [destination] in a single envelope. The operation is validated before
// any request is made.
func SendPayment(
	ctx context.Context,
	env *Env,
	signer chain.Signer,
	destination string,
	asset chain.Asset,
	amount string,
) (*Outcome, error) {
	if signer == nil {
		return nil, ErrMissingSigner
	}
	pay, err := actions.NewPayment(destination, asset, amount)
	if err != nil {
		return nil, err
	}
	return submitOperations(ctx, env, signer, pay)
}

// submitOperations loads a fresh snapshot of the signer, builds and signs
// one envelope carrying [ops] and submits it.
func submitOperations(ctx context.Context, env *Env, signer chain.Signer, ops ...chain.Operation) (*Outcome, error) {
	snapshot, err := LoadAccount(ctx, env, signer.Address())
	if err != nil {
		return nil, err
	}
	tx, err := BuildAndSign(snapshot, ops, DefaultBuildParams(env.Config), env.Config.Passphrase, signer)
	if err != nil {
		return nil, err
	}
	return Submit(ctx, env, tx)
}

// ChangeTrust creates, updates or (with limit "0") removes the signer's
// trust line to [asset].
func ChangeTrust(ctx context.Context, env *Env, signer chain.Signer, asset chain.Asset, limit string) (*Outcome, error) {
	if signer == nil {
		return nil, ErrMissingSigner
	}
	trust, err := actions.NewChangeTrust(asset, limit)
	if err != nil {
		return nil, err
	}
	return submitOperations(ctx, env, signer, trust)
}
