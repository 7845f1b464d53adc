// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rentacar/ledgersdk/auth"
	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/config"
	"github.com/rentacar/ledgersdk/consts"
	"github.com/rentacar/ledgersdk/ledger/ledgertest"
	"github.com/rentacar/ledgersdk/rpc"
)

func testConfig(network string) *config.Config {
	c := config.Default()
	c.Network = network
	c.Passphrase = config.KnownPassphrase(network)
	return c
}

func newTestEnv(t *testing.T, network string) (*Env, *ledgertest.MockTransport) {
	ctrl := gomock.NewController(t)
	transport := ledgertest.NewMockTransport(ctrl)
	return NewEnv(testConfig(network), transport), transport
}

func newKeypair(t *testing.T) *auth.Keypair {
	k, err := auth.GenerateKeypair()
	require.NoError(t, err)
	return k
}

func nativeReply(addr codec.Address, seq uint64, balance string) *rpc.AccountReply {
	return &rpc.AccountReply{
		ID:        addr.String(),
		AccountID: addr.String(),
		Sequence:  strconv.FormatUint(seq, 10),
		Balances: []rpc.BalanceReply{
			{Balance: balance, AssetType: "native"},
		},
	}
}

func committedReply(ledger uint64) *rpc.SubmitReply {
	return &rpc.SubmitReply{
		Hash:       "ignored",
		Ledger:     ledger,
		Successful: true,
		FeeCharged: strconv.FormatUint(uint64(consts.BaseFee), 10),
	}
}

func rejection(status int, txCode string, opCodes ...string) *rpc.Problem {
	return &rpc.Problem{
		Type:   "transaction_failed",
		Title:  "Transaction Failed",
		Status: status,
		Extras: &rpc.ProblemExtras{
			ResultCodes: &rpc.ResultCodes{Transaction: txCode, Operations: opCodes},
		},
	}
}

func TestEnvDefaults(t *testing.T) {
	require := require.New(t)
	for _, env := range []*Env{
		NewEnv(testConfig(consts.LocalName), nil),
		{Config: testConfig(consts.LocalName)},
	} {
		require.NotNil(env.log())
		require.False(env.log().Enabled(0))
		_, span := env.tracer().Start(context.Background(), "Ledger.LoadAccount")
		require.False(span.IsRecording())
		span.End()
	}
}
