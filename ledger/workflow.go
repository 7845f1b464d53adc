// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rentacar/ledgersdk/actions"
	"github.com/rentacar/ledgersdk/chain"
)

// IssuanceState is the progress of an [Issuance]. Issued and Failed are
// terminal.
type IssuanceState uint8

const (
	NotStarted IssuanceState = iota
	TrustEstablished
	Issued
	Failed
)

func (s IssuanceState) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case TrustEstablished:
		return "trust_established"
	case Issued:
		return "issued"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further step will run.
func (s IssuanceState) Terminal() bool {
	return s == Issued || s == Failed
}

// Step names a submission within a workflow.
type Step uint8

const (
	StepTrustLine Step = iota + 1
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepTrustLine:
		return "trust_line"
	case StepPayment:
		return "payment"
	default:
		return "unknown"
	}
}

// StepError reports which step of a workflow failed.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %s", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// IssuanceRequest describes an issuance: [Issuer] pays [Amount] of its
// asset [Code] to [Receiver].
type IssuanceRequest struct {
	Issuer   chain.Signer
	Receiver chain.Signer
	// Code is the asset code the issuer issues.
	Code   string
	Amount string
	// Limit caps the receiver's trust line; empty means the maximum.
	Limit string
}

// Issuance moves an issued asset to a receiver that does not yet trust it:
// the receiver first opens a trust line, then the issuer pays. The payment
// is only attempted once the trust line is committed.
type Issuance struct {
	env *Env
	id  uuid.UUID

	issuer   chain.Signer
	receiver chain.Signer
	asset    chain.Asset
	trust    *actions.ChangeTrust
	payment  *actions.Payment

	l        sync.Mutex
	running  bool
	state    IssuanceState
	failure  *StepError
	outcomes []*Outcome
}

// NewIssuance validates [req] and builds both operations. Nothing is sent
// until Run.
func NewIssuance(env *Env, req IssuanceRequest) (*Issuance, error) {
	if req.Issuer == nil || req.Receiver == nil {
		return nil, ErrMissingSigner
	}
	asset, err := chain.NewIssuedAsset(req.Code, req.Issuer.Address())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", actions.ErrInvalidOperationParameters, err)
	}
	trust, err := actions.NewChangeTrust(asset, req.Limit)
	if err != nil {
		return nil, err
	}
	if trust.Removes() {
		return nil, fmt.Errorf("%w: trust limit must be positive", actions.ErrInvalidOperationParameters)
	}
	payment, err := actions.NewPayment(req.Receiver.Address().String(), asset, req.Amount)
	if err != nil {
		return nil, err
	}
	if payment.Amount > trust.Limit {
		return nil, fmt.Errorf("%w: amount %s exceeds trust limit %s", actions.ErrInvalidOperationParameters, payment.Amount, trust.Limit)
	}
	return &Issuance{
		env:      env,
		id:       uuid.New(),
		issuer:   req.Issuer,
		receiver: req.Receiver,
		asset:    asset,
		trust:    trust,
		payment:  payment,
		state:    NotStarted,
	}, nil
}

func (i *Issuance) ID() uuid.UUID {
	return i.id
}

func (i *Issuance) Asset() chain.Asset {
	return i.asset
}

func (i *Issuance) State() IssuanceState {
	i.l.Lock()
	defer i.l.Unlock()
	return i.state
}

// Failure returns the failed step and its reason, or nil.
func (i *Issuance) Failure() *StepError {
	i.l.Lock()
	defer i.l.Unlock()
	return i.failure
}

// Outcomes returns the submission outcomes in step order.
func (i *Issuance) Outcomes() []*Outcome {
	i.l.Lock()
	defer i.l.Unlock()
	return append([]*Outcome(nil), i.outcomes...)
}

// Run executes the remaining steps. A failed step leaves the workflow in
// [Failed] and returns a [*StepError]. If [ctx] is canceled between steps
// the workflow stays in [TrustEstablished] and can be resumed. Only one
// Run may be in progress at a time; a concurrent call returns
// [ErrWorkflowRunning] without submitting anything.
func (i *Issuance) Run(ctx context.Context) error {
	state, err := i.claim()
	if err != nil {
		return err
	}
	defer i.release()

	if state == NotStarted {
		if err := i.step(ctx, StepTrustLine, i.receiver, i.trust); err != nil {
			return err
		}
		i.transition(TrustEstablished)
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if err := i.step(ctx, StepPayment, i.issuer, i.payment); err != nil {
		return err
	}
	i.transition(Issued)
	return nil
}

func (i *Issuance) claim() (IssuanceState, error) {
	i.l.Lock()
	defer i.l.Unlock()
	switch {
	case i.running:
		return i.state, ErrWorkflowRunning
	case i.state.Terminal():
		return i.state, fmt.Errorf("%w: %s", ErrWorkflowFinished, i.state)
	}
	i.running = true
	return i.state, nil
}

func (i *Issuance) release() {
	i.l.Lock()
	i.running = false
	i.l.Unlock()
}

// Resume continues a workflow whose trust line is already established.
func (i *Issuance) Resume(ctx context.Context) error {
	if state := i.State(); state != TrustEstablished {
		return fmt.Errorf("%w: %s", ErrWorkflowNotResumable, state)
	}
	return i.Run(ctx)
}

func (i *Issuance) step(ctx context.Context, step Step, signer chain.Signer, op chain.Operation) error {
	outcome, err := submitOperations(ctx, i.env, signer, op)
	if err == nil {
		i.l.Lock()
		i.outcomes = append(i.outcomes, outcome)
		i.l.Unlock()
		err = outcome.Err()
	}
	if err != nil {
		serr := &StepError{Step: step, Err: err}
		i.l.Lock()
		i.failure = serr
		i.l.Unlock()
		i.transition(Failed)
		return serr
	}
	return nil
}

func (i *Issuance) transition(state IssuanceState) {
	i.l.Lock()
	i.state = state
	i.l.Unlock()

	fields := []zap.Field{
		zap.Stringer("workflow", i.id),
		zap.Stringer("asset", i.asset),
		zap.Stringer("state", state),
	}
	if state == Failed {
		fields = append(fields, zap.Error(i.Failure()))
	}
	i.env.log().Info("issuance transitioned", fields...)
	if state.Terminal() {
		i.env.Metrics.workflowFinished(state)
	}
}
