// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "encoding/hex"

// ToHex renders [b] as lower case hex.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}
