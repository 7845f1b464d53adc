// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// EnvelopeTypeTx separates transaction signature payloads from any other
// message signed under the same network id.
const EnvelopeTypeTx byte = 2

const (
	// MaxMemoSize is the longest memo an envelope may carry.
	MaxMemoSize = 28
)
