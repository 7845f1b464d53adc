// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import "errors"

var (
	ErrAccountNotFound           = errors.New("account not found")
	ErrInvalidAccountReply       = errors.New("invalid account reply")
	ErrEmptyOperationSet         = errors.New("empty operation set")
	ErrExpiredBuildWindow        = errors.New("expired build window")
	ErrFeeOverflow               = errors.New("fee overflow")
	ErrNoSigners                 = errors.New("no signers")
	ErrUnsigned                  = errors.New("transaction is unsigned")
	ErrAlreadySubmitted          = errors.New("transaction already submitted")
	ErrTransportFailure          = errors.New("transport failure")
	ErrUnexpectedReply           = errors.New("unexpected reply")
	ErrUnauthorizedFaucetNetwork = errors.New("faucet is only available on testnet or local networks")
	ErrFundingFailed             = errors.New("funding failed")
	ErrWorkflowFinished          = errors.New("workflow finished")
	ErrWorkflowNotResumable      = errors.New("workflow not resumable")
	ErrWorkflowRunning           = errors.New("workflow already running")
	ErrMissingSigner             = errors.New("missing signer")
)
