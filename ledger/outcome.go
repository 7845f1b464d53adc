// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/rpc"
)

// Status is the three-way result of a single submission.
type Status uint8

const (
	// Committed means the network applied the envelope.
	Committed Status = iota + 1
	// Rejected means the network refused the envelope; it was not applied.
	Rejected
	// TransportFailure means the outcome is unknown: the envelope may or may
	// not have been applied.
	TransportFailure
)

func (s Status) String() string {
	switch s {
	case Committed:
		return "committed"
	case Rejected:
		return "rejected"
	case TransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// RejectionClass is a coarse reading of the network's result codes.
type RejectionClass uint8

const (
	ClassOther RejectionClass = iota
	// ClassExpiredOrDuplicate covers stale sequence numbers and envelopes
	// outside their validity window. Rebuild from a fresh snapshot.
	ClassExpiredOrDuplicate
	ClassInsufficientBalance
	ClassMissingTrustline
	ClassNoAccount
	ClassBadAuth
	ClassInsufficientFee
	ClassMalformed
)

func (c RejectionClass) String() string {
	switch c {
	case ClassExpiredOrDuplicate:
		return "expired_or_duplicate"
	case ClassInsufficientBalance:
		return "insufficient_balance"
	case ClassMissingTrustline:
		return "missing_trustline"
	case ClassNoAccount:
		return "no_account"
	case ClassBadAuth:
		return "bad_auth"
	case ClassInsufficientFee:
		return "insufficient_fee"
	case ClassMalformed:
		return "malformed"
	default:
		return "other"
	}
}

// Outcome is the result of one submission.
type Outcome struct {
	Status Status
	// Hash is the hex transaction hash computed locally.
	Hash string

	// Set when Committed.
	Ledger     uint64
	FeeCharged chain.Amount
	// FeeChargedErr is set when the reported fee could not be read; the
	// envelope is still committed.
	FeeChargedErr error

	// Set when Rejected. ResultCodes are passed through as reported.
	ResultCodes *rpc.ResultCodes
	Class       RejectionClass
	HTTPStatus  int
	Detail      string

	// Set when TransportFailure.
	Cause error
}

func (o *Outcome) Committed() bool {
	return o.Status == Committed
}

// Err returns nil for a committed outcome, a [*RejectedError] for a
// rejection and an error wrapping [ErrTransportFailure] otherwise.
func (o *Outcome) Err() error {
	switch o.Status {
	case Committed:
		return nil
	case Rejected:
		return &RejectedError{
			Class:       o.Class,
			ResultCodes: o.ResultCodes,
			HTTPStatus:  o.HTTPStatus,
			Detail:      o.Detail,
		}
	default:
		return fmt.Errorf("%w: %w", ErrTransportFailure, o.Cause)
	}
}

// RejectedError is a definite refusal by the network.
type RejectedError struct {
	Class       RejectionClass
	ResultCodes *rpc.ResultCodes
	HTTPStatus  int
	Detail      string
}

func (e *RejectedError) Error() string {
	if e.ResultCodes != nil {
		return fmt.Sprintf("transaction rejected (%s): %s", e.Class, e.ResultCodes)
	}
	return fmt.Sprintf("transaction rejected (%s): status %d: %s", e.Class, e.HTTPStatus, e.Detail)
}

// classify maps the single submission attempt onto an outcome.
func classify(hash string, reply *rpc.SubmitReply, err error) *Outcome {
	if err == nil {
		if reply == nil || !reply.Successful {
			return &Outcome{
				Status: TransportFailure,
				Hash:   hash,
				Cause:  fmt.Errorf("%w: success status without a successful result", ErrUnexpectedReply),
			}
		}
		o := &Outcome{
			Status: Committed,
			Hash:   hash,
			Ledger: reply.Ledger,
		}
		fee, perr := strconv.ParseInt(reply.FeeCharged, 10, 64)
		if perr != nil {
			o.FeeChargedErr = fmt.Errorf("%w: fee_charged %q: %w", ErrUnexpectedReply, reply.FeeCharged, perr)
		} else {
			o.FeeCharged = chain.Amount(fee)
		}
		return o
	}

	var problem *rpc.Problem
	if !errors.As(err, &problem) ||
		problem.Status < http.StatusBadRequest ||
		problem.Status >= http.StatusInternalServerError {
		return &Outcome{
			Status: TransportFailure,
			Hash:   hash,
			Cause:  err,
		}
	}
	o := &Outcome{
		Status:      Rejected,
		Hash:        hash,
		ResultCodes: problem.ResultCodes(),
		HTTPStatus:  problem.Status,
		Detail:      problem.Detail,
	}
	if o.ResultCodes == nil {
		o.Class = ClassMalformed
	} else {
		o.Class = classifyCodes(o.ResultCodes)
	}
	return o
}

func classifyCodes(codes *rpc.ResultCodes) RejectionClass {
	switch codes.Transaction {
	case rpc.TxBadSeq, rpc.TxTooLate, rpc.TxTooEarly:
		return ClassExpiredOrDuplicate
	case rpc.TxInsufficientBal:
		return ClassInsufficientBalance
	case rpc.TxNoAccount:
		return ClassNoAccount
	case rpc.TxBadAuth:
		return ClassBadAuth
	case rpc.TxInsufficientFee:
		return ClassInsufficientFee
	case rpc.TxMalformed, rpc.TxMissingOperation:
		return ClassMalformed
	case rpc.TxFailed:
	default:
		return ClassOther
	}
	for _, op := range codes.Operations {
		switch op {
		case rpc.OpSuccess:
			continue
		case rpc.OpUnderfunded, rpc.OpLowReserve:
			return ClassInsufficientBalance
		case rpc.OpNoTrust, rpc.OpNotAuthorized:
			return ClassMissingTrustline
		case rpc.OpNoDestination, rpc.OpNoIssuer:
			return ClassNoAccount
		case rpc.OpMalformed, rpc.OpInvalidLimit:
			return ClassMalformed
		default:
			return ClassOther
		}
	}
	return ClassOther
}
