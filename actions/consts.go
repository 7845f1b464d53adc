// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "github.com/rentacar/ledgersdk/chain"

// Note: Registry will error during initialization if a duplicate ID is assigned. We explicitly assign IDs to avoid accidental remapping.
const (
	PaymentID     uint8 = 1
	ChangeTrustID uint8 = 6
)

// MaxTrustLimit is the limit used when a trust line is opened without one.
const MaxTrustLimit = chain.MaxAmount
