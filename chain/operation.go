// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/rentacar/ledgersdk/codec"

// Operation is a single ledger instruction carried by a [Transaction].
// Implementations are immutable once built.
type Operation interface {
	codec.Typed

	// Validate checks the operation without any network access.
	Validate() error

	// Size is the number of bytes Marshal writes, excluding the type id.
	Size() int
	Marshal(p *codec.Packer)
}

// OperationParser decodes operations by type id.
type OperationParser = codec.TypeParser[Operation]

func NewOperationParser() *OperationParser {
	return codec.NewTypeParser[Operation]()
}
