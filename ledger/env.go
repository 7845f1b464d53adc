// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/config"
	"github.com/rentacar/ledgersdk/rpc"

	ltrace "github.com/rentacar/ledgersdk/trace"
)

var _ Transport = (*rpc.Client)(nil)

// Transport is the network boundary. Implementations issue exactly one
// request per call and never retry.
type Transport interface {
	Account(ctx context.Context, addr codec.Address) (*rpc.AccountReply, error)
	SubmitTx(ctx context.Context, envelope string) (*rpc.SubmitReply, error)
	Fund(ctx context.Context, addr codec.Address) (*rpc.SubmitReply, error)
}

// Env carries what every operation needs to reach a network. It holds no
// mutable state and may be shared between goroutines.
type Env struct {
	Config    *config.Config
	Transport Transport

	Log     logging.Logger
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewEnv returns an Env that discards logs and traces.
func NewEnv(cfg *config.Config, transport Transport) *Env {
	return &Env{
		Config:    cfg,
		Transport: transport,
		Log:       logging.NoLog{},
		Tracer:    ltrace.Noop(),
	}
}

func (e *Env) log() logging.Logger {
	if e.Log == nil {
		return logging.NoLog{}
	}
	return e.Log
}

func (e *Env) tracer() trace.Tracer {
	if e.Tracer == nil {
		return ltrace.Noop()
	}
	return e.Tracer
}

// requestContext bounds a single network call by the configured request
// timeout. The caller's deadline still applies if it is earlier.
func (e *Env) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.Config == nil || e.Config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.Config.RequestTimeout)
}
