// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidAsset       = errors.New("invalid asset")
	ErrNoOperations       = errors.New("no operations")
	ErrTooManyOperations  = errors.New("too many operations")
	ErrTooManySignatures  = errors.New("too many signatures")
	ErrMemoTooLarge       = errors.New("memo is too large")
	ErrInvalidTimeBounds  = errors.New("invalid time bounds")
	ErrTimestampTooEarly  = errors.New("timestamp too early")
	ErrTimestampTooLate   = errors.New("timestamp too late")
	ErrInvalidEnvelope    = errors.New("invalid envelope")
	ErrSignerHintMismatch = errors.New("signer hint mismatch")
)
