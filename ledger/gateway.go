// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"

	"go.uber.org/zap"

	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/codec"
)

// Submit hands a signed envelope to the network exactly once. The envelope
// is marked submitted before the request is sent, so a second Submit of the
// same envelope fails locally with [ErrAlreadySubmitted]. The returned
// error is only set for local failures; network results are reported
// through the [Outcome].
func Submit(ctx context.Context, env *Env, tx *chain.Transaction) (*Outcome, error) {
	ctx, span := env.tracer().Start(ctx, "Ledger.Submit")
	defer span.End()

	if len(tx.Signatures) == 0 {
		return nil, ErrUnsigned
	}
	if tx.Submitted() {
		return nil, ErrAlreadySubmitted
	}
	envelope, err := tx.Base64()
	if err != nil {
		return nil, err
	}
	id, err := tx.Hash(env.Config.NetworkID())
	if err != nil {
		return nil, err
	}
	if !tx.MarkSubmitted() {
		return nil, ErrAlreadySubmitted
	}
	hash := codec.ToHex(id[:])

	rctx, cancel := env.requestContext(ctx)
	reply, err := env.Transport.SubmitTx(rctx, envelope)
	cancel()

	outcome := classify(hash, reply, err)
	env.Metrics.outcome(outcome)
	logOutcome(env, tx, outcome)
	return outcome, nil
}

func logOutcome(env *Env, tx *chain.Transaction, o *Outcome) {
	fields := []zap.Field{
		zap.String("hash", o.Hash),
		zap.Stringer("source", tx.Base.Source),
		zap.Uint64("sequence", tx.Base.Sequence),
		zap.Stringer("status", o.Status),
	}
	switch o.Status {
	case Committed:
		if o.FeeChargedErr != nil {
			env.log().Warn("unreadable fee in committed reply",
				append(fields, zap.Error(o.FeeChargedErr))...,
			)
		}
		env.log().Info("transaction committed",
			append(fields,
				zap.Uint64("ledger", o.Ledger),
				zap.Stringer("feeCharged", o.FeeCharged),
			)...,
		)
	case Rejected:
		if o.ResultCodes != nil {
			fields = append(fields,
				zap.String("txCode", o.ResultCodes.Transaction),
				zap.Strings("opCodes", o.ResultCodes.Operations),
			)
		}
		env.log().Warn("transaction rejected",
			append(fields,
				zap.Stringer("class", o.Class),
				zap.Int("httpStatus", o.HTTPStatus),
			)...,
		)
	default:
		env.log().Warn("transaction outcome unknown",
			append(fields, zap.Error(o.Cause))...,
		)
	}
}
