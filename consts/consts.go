// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import "time"

const (
	ByteLen   = 1
	BoolLen   = 1
	IDLen     = 32
	IntLen    = 4
	Uint16Len = 2
	Uint32Len = 4
	Uint64Len = 8
	Int64Len  = 8
	MaxUint8  = ^uint8(0)
	MaxUint32 = ^uint32(0)
	MaxUint64 = ^uint64(0)
	MaxInt64  = int64(MaxUint64 >> 1)
	MaxUint   = ^uint(0)
	MaxInt    = int(MaxUint >> 1)

	// NetworkSizeLimit is the largest envelope the network accepts.
	NetworkSizeLimit = 64 * 1024
	// MaxOperations is the largest number of operations one envelope may carry.
	MaxOperations = 100
	// MaxSignatures is the largest number of signatures one envelope may carry.
	MaxSignatures = 20
)

const (
	// Decimals is the number of fractional digits of every ledger amount.
	Decimals = 7
	// StroopsPerUnit is 10^Decimals.
	StroopsPerUnit = 10_000_000

	// NativeCode is the display code of the native asset.
	NativeCode = "XLM"
	// MaxAssetCodeLen is the longest issued asset code.
	MaxAssetCodeLen = 12

	// BaseFee is the default fee, in stroops, charged per operation.
	BaseFee uint32 = 100
	// TxTimeout is the default validity window of a built envelope.
	TxTimeout = 30 * time.Second
	// RequestTimeout is the default deadline of a single network call.
	RequestTimeout = 60 * time.Second
)

const (
	// AddressHRP prefixes public identities (acct1...).
	AddressHRP = "acct"
	// SeedHRP prefixes secret identities (seed1...).
	SeedHRP = "seed"
)

const (
	TestnetName = "testnet"
	LocalName   = "local"
	MainnetName = "mainnet"

	TestnetPassphrase = "Test Ledger Network ; September 2015"
	LocalPassphrase   = "Standalone Ledger Network ; February 2017"
	MainnetPassphrase = "Public Global Ledger Network ; September 2015"
)
