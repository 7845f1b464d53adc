// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import "errors"

var (
	ErrDuplicate         = errors.New("duplicate")
	ErrNoKeys            = errors.New("no available keys")
	ErrUnknownKey        = errors.New("unknown key")
	ErrTxFailed          = errors.New("tx failed on ledger")
	ErrInvalidArgs       = errors.New("invalid args")
	ErrMissingSubcommand = errors.New("must specify a subcommand")
)
