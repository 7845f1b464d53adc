// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

const (
	Name = "ledger"

	AccountsEndpoint     = "/accounts"
	TransactionsEndpoint = "/transactions"
	FriendbotEndpoint    = "/friendbot"
	RootEndpoint         = "/"

	// TxFormField carries the base64 envelope in a submission.
	TxFormField    = "tx"
	// AddrQueryParam names the account to fund in a friendbot request.
	AddrQueryParam = "addr"

	problemContentType = "application/problem+json"
)

// Transaction level result codes.
const (
	TxSuccess          = "tx_success"
	TxFailed           = "tx_failed"
	TxTooEarly         = "tx_too_early"
	TxTooLate          = "tx_too_late"
	TxMissingOperation = "tx_missing_operation"
	TxBadSeq           = "tx_bad_seq"
	TxBadAuth          = "tx_bad_auth"
	TxInsufficientBal  = "tx_insufficient_balance"
	TxNoAccount        = "tx_no_source_account"
	TxInsufficientFee  = "tx_insufficient_fee"
	TxMalformed        = "tx_malformed"
	TxInternalError    = "tx_internal_error"
)

// Operation level result codes.
const (
	OpSuccess       = "op_success"
	OpMalformed     = "op_malformed"
	OpUnderfunded   = "op_underfunded"
	OpNoTrust       = "op_no_trust"
	OpNotAuthorized = "op_not_authorized"
	OpLineFull      = "op_line_full"
	OpNoIssuer      = "op_no_issuer"
	OpNoDestination = "op_no_destination"
	OpLowReserve    = "op_low_reserve"
	OpInvalidLimit  = "op_invalid_limit"
)
