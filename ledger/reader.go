// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/rpc"
)

// LoadAccount fetches a fresh snapshot of [addr]. It issues exactly one
// request and never caches. Every failure wraps [ErrAccountNotFound];
// failures that are not a definite "no such account" also wrap
// [ErrTransportFailure].
func LoadAccount(ctx context.Context, env *Env, addr codec.Address) (*AccountSnapshot, error) {
	ctx, span := env.tracer().Start(ctx, "Ledger.LoadAccount")
	defer span.End()

	rctx, cancel := env.requestContext(ctx)
	reply, err := env.Transport.Account(rctx, addr)
	cancel()
	env.Metrics.accountLoaded(err == nil)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, addr)
		}
		env.log().Debug("account load failed",
			zap.Stringer("address", addr),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w: %w", ErrAccountNotFound, ErrTransportFailure, err)
	}
	snapshot, err := newSnapshot(addr, reply, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAccountNotFound, err)
	}
	return snapshot, nil
}

// Balances returns the display balances of [addr].
func Balances(ctx context.Context, env *Env, addr codec.Address) ([]DisplayBalance, error) {
	snapshot, err := LoadAccount(ctx, env, addr)
	if err != nil {
		return nil, err
	}
	return snapshot.Display(), nil
}
