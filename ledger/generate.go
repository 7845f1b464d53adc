// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

//go:generate go run go.uber.org/mock/mockgen -package=ledgertest -destination=ledgertest/mock_transport.go github.com/rentacar/ledgersdk/ledger Transport
