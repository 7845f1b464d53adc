// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/config"
	"github.com/rentacar/ledgersdk/rpc"
)

// Fund asks the network's faucet to create and credit [addr]. Only test
// and local networks have a faucet; any other network fails before a
// request is made.
func Fund(ctx context.Context, env *Env, addr codec.Address) error {
	if !config.FaucetNetwork(env.Config.Network) {
		return fmt.Errorf("%w: %q", ErrUnauthorizedFaucetNetwork, env.Config.Network)
	}

	rctx, cancel := env.requestContext(ctx)
	defer cancel()
	reply, err := env.Transport.Fund(rctx, addr)
	if err != nil {
		var problem *rpc.Problem
		if errors.As(err, &problem) {
			return fmt.Errorf("%w: %s", ErrFundingFailed, problem.Detail)
		}
		return fmt.Errorf("%w: %w: %w", ErrFundingFailed, ErrTransportFailure, err)
	}
	env.log().Info("account funded",
		zap.Stringer("address", addr),
		zap.String("hash", reply.Hash),
	)
	return nil
}
