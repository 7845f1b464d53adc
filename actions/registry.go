// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/codec"
)

// Registry returns the parser for every operation this package builds.
func Registry() *chain.OperationParser {
	parser := chain.NewOperationParser()
	mustRegister(parser, &Payment{}, UnmarshalPayment)
	mustRegister(parser, &ChangeTrust{}, UnmarshalChangeTrust)
	return parser
}

func mustRegister(parser *chain.OperationParser, op chain.Operation, f func(*codec.Packer) (chain.Operation, error)) {
	if err := parser.Register(op, f); err != nil {
		panic(err)
	}
}
