// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
)

// NetworkID is the signature domain of a network. Envelopes signed under
// one passphrase never verify on another.
func NetworkID(passphrase string) ids.ID {
	return ids.ID(hashing.ComputeHash256Array([]byte(passphrase)))
}
