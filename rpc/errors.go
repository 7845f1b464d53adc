// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrMissingTx      = errors.New("missing tx")
	ErrInvalidAddress = errors.New("invalid address")
)
