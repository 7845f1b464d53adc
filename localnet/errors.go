// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package localnet

import "errors"

var (
	ErrAccountExists     = errors.New("account already exists")
	ErrCorruptRecord     = errors.New("corrupt account record")
	ErrMissingPassphrase = errors.New("missing passphrase")
)
