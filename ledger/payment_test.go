// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rentacar/ledgersdk/actions"
	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/consts"
	"github.com/rentacar/ledgersdk/rpc"
)

func TestSendPaymentInvalidParameters(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		amount      string
	}{
		{name: "negative amount", amount: "-1"},
		{name: "zero amount", amount: "0"},
		{name: "garbage amount", amount: "ten"},
		{name: "bad destination", destination: "acct1notanaddress", amount: "1"},
		{name: "secret destination", destination: "seed1qqqqqq", amount: "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			// No expectations: any network call fails the test.
			env, _ := newTestEnv(t, consts.TestnetName)
			if len(tt.destination) == 0 {
				tt.destination = newKeypair(t).PublicKey()
			}
			_, err := SendPayment(context.Background(), env, newKeypair(t), tt.destination, chain.NativeAsset(), tt.amount)
			require.ErrorIs(err, actions.ErrInvalidOperationParameters)
		})
	}
}

func TestSendPayment(t *testing.T) {
	require := require.New(t)
	env, transport := newTestEnv(t, consts.TestnetName)
	source := newKeypair(t)
	dest := newKeypair(t)

	gomock.InOrder(
		transport.EXPECT().Account(gomock.Any(), source.Address()).Return(nativeReply(source.Address(), 17, "100"), nil),
		transport.EXPECT().SubmitTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, envelope string) (*rpc.SubmitReply, error) {
				tx, err := chain.ParseBase64(envelope, actions.Registry())
				require.NoError(err)
				require.Equal(uint64(17), tx.Base.Sequence)
				require.Equal(consts.BaseFee, tx.Base.Fee)
				pay, ok := tx.Operations[0].(*actions.Payment)
				require.True(ok)
				require.Equal(dest.Address(), pay.Destination)
				require.Equal(chain.MustParseAmount("25.50"), pay.Amount)
				return committedReply(3), nil
			},
		),
	)
	outcome, err := SendPayment(context.Background(), env, source, dest.PublicKey(), chain.NativeAsset(), "25.50")
	require.NoError(err)
	require.True(outcome.Committed())
}

func TestSendPaymentMissingAccount(t *testing.T) {
	require := require.New(t)
	env, transport := newTestEnv(t, consts.TestnetName)
	source := newKeypair(t)

	transport.EXPECT().Account(gomock.Any(), source.Address()).Return(nil, rpc.ErrNotFound)
	_, err := SendPayment(context.Background(), env, source, newKeypair(t).PublicKey(), chain.NativeAsset(), "1")
	require.ErrorIs(err, ErrAccountNotFound)
}

func TestChangeTrust(t *testing.T) {
	require := require.New(t)
	env, _ := newTestEnv(t, consts.TestnetName)
	_, err := ChangeTrust(context.Background(), env, newKeypair(t), chain.NativeAsset(), "")
	require.ErrorIs(err, actions.ErrInvalidOperationParameters)
}
