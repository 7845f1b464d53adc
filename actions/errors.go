// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

// ErrInvalidOperationParameters is returned, before any network access,
// for every operation that cannot be built from its parameters.
var ErrInvalidOperationParameters = errors.New("invalid operation parameters")
