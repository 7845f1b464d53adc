// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/consts"
	"github.com/rentacar/ledgersdk/rpc"
)

func signedTestTx(t *testing.T) *chain.Transaction {
	snapshot, source := testSnapshot(t, 3)
	tx, err := BuildAndSign(snapshot, []chain.Operation{testPayment(t, "25.50")}, BuildParams{Timeout: time.Minute}, consts.TestnetPassphrase, source)
	require.NoError(t, err)
	return tx
}

func TestSubmitCommitted(t *testing.T) {
	require := require.New(t)
	env, transport := newTestEnv(t, consts.TestnetName)
	metrics, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(err)
	env.Metrics = metrics
	tx := signedTestTx(t)

	wire, err := tx.Base64()
	require.NoError(err)
	transport.EXPECT().SubmitTx(gomock.Any(), wire).Return(committedReply(12), nil).Times(1)

	outcome, err := Submit(context.Background(), env, tx)
	require.NoError(err)
	require.Equal(Committed, outcome.Status)
	require.True(outcome.Committed())
	require.NoError(outcome.Err())
	require.Equal(uint64(12), outcome.Ledger)
	require.Equal(chain.Amount(consts.BaseFee), outcome.FeeCharged)
	require.Len(outcome.Hash, 64)
	require.True(tx.Submitted())
	require.InDelta(1, testutil.ToFloat64(metrics.committed), 0)

	// The same envelope is never sent twice.
	_, err = Submit(context.Background(), env, tx)
	require.ErrorIs(err, ErrAlreadySubmitted)
}

func TestSubmitUnsigned(t *testing.T) {
	require := require.New(t)
	env, _ := newTestEnv(t, consts.TestnetName)
	snapshot, _ := testSnapshot(t, 3)
	tx, err := Build(snapshot, []chain.Operation{testPayment(t, "1")}, BuildParams{Timeout: time.Minute})
	require.NoError(err)

	_, err = Submit(context.Background(), env, tx)
	require.ErrorIs(err, ErrUnsigned)
	require.False(tx.Submitted())
}

func TestSubmitRejected(t *testing.T) {
	require := require.New(t)
	env, transport := newTestEnv(t, consts.TestnetName)
	tx := signedTestTx(t)

	transport.EXPECT().SubmitTx(gomock.Any(), gomock.Any()).Return(nil, rejection(http.StatusBadRequest, rpc.TxBadSeq))
	outcome, err := Submit(context.Background(), env, tx)
	require.NoError(err)
	require.Equal(Rejected, outcome.Status)
	require.Equal(ClassExpiredOrDuplicate, outcome.Class)
	require.Equal(rpc.TxBadSeq, outcome.ResultCodes.Transaction)

	var rejected *RejectedError
	require.ErrorAs(outcome.Err(), &rejected)
	require.Equal(ClassExpiredOrDuplicate, rejected.Class)
	require.True(tx.Submitted())
}

func TestSubmitTransportFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "network", err: errors.New("connection reset")},
		{name: "gateway timeout", err: &rpc.Problem{Status: http.StatusGatewayTimeout, Title: "Timeout"}},
		{name: "server error", err: &rpc.Problem{Status: http.StatusInternalServerError}},
		{name: "deadline", err: fmt.Errorf("request: %w", context.DeadlineExceeded)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			env, transport := newTestEnv(t, consts.TestnetName)
			tx := signedTestTx(t)

			transport.EXPECT().SubmitTx(gomock.Any(), gomock.Any()).Return(nil, tt.err).Times(1)
			outcome, err := Submit(context.Background(), env, tx)
			require.NoError(err)
			require.Equal(TransportFailure, outcome.Status)
			require.ErrorIs(outcome.Err(), ErrTransportFailure)
			require.ErrorIs(outcome.Err(), tt.err)
		})
	}
}

func TestSubmitCallerTimeout(t *testing.T) {
	require := require.New(t)
	env, transport := newTestEnv(t, consts.TestnetName)
	tx := signedTestTx(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	transport.EXPECT().SubmitTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (*rpc.SubmitReply, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	)
	outcome, err := Submit(ctx, env, tx)
	require.NoError(err)
	require.Equal(TransportFailure, outcome.Status)
	require.ErrorIs(outcome.Err(), context.DeadlineExceeded)
}

func TestClassifyCodes(t *testing.T) {
	tests := []struct {
		codes rpc.ResultCodes
		want  RejectionClass
	}{
		{codes: rpc.ResultCodes{Transaction: rpc.TxBadSeq}, want: ClassExpiredOrDuplicate},
		{codes: rpc.ResultCodes{Transaction: rpc.TxTooLate}, want: ClassExpiredOrDuplicate},
		{codes: rpc.ResultCodes{Transaction: rpc.TxTooEarly}, want: ClassExpiredOrDuplicate},
		{codes: rpc.ResultCodes{Transaction: rpc.TxInsufficientBal}, want: ClassInsufficientBalance},
		{codes: rpc.ResultCodes{Transaction: rpc.TxNoAccount}, want: ClassNoAccount},
		{codes: rpc.ResultCodes{Transaction: rpc.TxBadAuth}, want: ClassBadAuth},
		{codes: rpc.ResultCodes{Transaction: rpc.TxInsufficientFee}, want: ClassInsufficientFee},
		{codes: rpc.ResultCodes{Transaction: rpc.TxMalformed}, want: ClassMalformed},
		{codes: rpc.ResultCodes{Transaction: rpc.TxFailed, Operations: []string{rpc.OpSuccess, rpc.OpUnderfunded}}, want: ClassInsufficientBalance},
		{codes: rpc.ResultCodes{Transaction: rpc.TxFailed, Operations: []string{rpc.OpNoTrust}}, want: ClassMissingTrustline},
		{codes: rpc.ResultCodes{Transaction: rpc.TxFailed, Operations: []string{rpc.OpNoDestination}}, want: ClassNoAccount},
		{codes: rpc.ResultCodes{Transaction: rpc.TxFailed, Operations: []string{rpc.OpLineFull}}, want: ClassOther},
		{codes: rpc.ResultCodes{Transaction: "tx_something_new"}, want: ClassOther},
	}
	for _, tt := range tests {
		t.Run(tt.codes.String(), func(t *testing.T) {
			require.Equal(t, tt.want, classifyCodes(&tt.codes))
		})
	}
}

func TestClassifyRejectedWithoutCodes(t *testing.T) {
	require := require.New(t)
	o := classify("h", nil, &rpc.Problem{Status: http.StatusBadRequest, Detail: "tx is not base64"})
	require.Equal(Rejected, o.Status)
	require.Equal(ClassMalformed, o.Class)
	require.Equal("tx is not base64", o.Detail)
	require.Contains(o.Err().Error(), "tx is not base64")
}

func TestClassifyCommittedReplies(t *testing.T) {
	require := require.New(t)

	o := classify("h", &rpc.SubmitReply{Ledger: 3, Successful: true, FeeCharged: "200"}, nil)
	require.Equal(Committed, o.Status)
	require.Equal(chain.Amount(200), o.FeeCharged)
	require.NoError(o.FeeChargedErr)

	o = classify("h", &rpc.SubmitReply{Ledger: 3, Successful: true, FeeCharged: "lots"}, nil)
	require.Equal(Committed, o.Status)
	require.Zero(o.FeeCharged)
	require.ErrorIs(o.FeeChargedErr, ErrUnexpectedReply)
	require.NoError(o.Err())

	o = classify("h", &rpc.SubmitReply{Ledger: 3, FeeCharged: "100"}, nil)
	require.Equal(TransportFailure, o.Status)
	require.ErrorIs(o.Err(), ErrTransportFailure)
	require.ErrorIs(o.Err(), ErrUnexpectedReply)
}
