// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"fmt"
	"strings"
)

type RootReply struct {
	NetworkPassphrase   string `json:"network_passphrase"`
	HistoryLatestLedger uint64 `json:"history_latest_ledger"`
}

type BalanceReply struct {
	Balance     string `json:"balance"`
	Limit       string `json:"limit,omitempty"`
	AssetType   string `json:"asset_type"`
	AssetCode   string `json:"asset_code,omitempty"`
	AssetIssuer string `json:"asset_issuer,omitempty"`
}

type AccountReply struct {
	ID        string         `json:"id"`
	AccountID string         `json:"account_id"`
	Sequence  string         `json:"sequence"`
	Balances  []BalanceReply `json:"balances"`
}

type SubmitReply struct {
	Hash        string `json:"hash"`
	Ledger      uint64 `json:"ledger"`
	Successful  bool   `json:"successful"`
	FeeCharged  string `json:"fee_charged"`
	EnvelopeXDR string `json:"envelope_xdr"`
}

type ResultCodes struct {
	Transaction string   `json:"transaction"`
	Operations  []string `json:"operations,omitempty"`
}

func (r *ResultCodes) String() string {
	if len(r.Operations) == 0 {
		return r.Transaction
	}
	return r.Transaction + " [" + strings.Join(r.Operations, ", ") + "]"
}

type ProblemExtras struct {
	EnvelopeXDR string       `json:"envelope_xdr,omitempty"`
	ResultCodes *ResultCodes `json:"result_codes,omitempty"`
}

// Problem is the error document the network answers with on any non-2xx
// status.
type Problem struct {
	Type   string         `json:"type"`
	Title  string         `json:"title"`
	Status int            `json:"status"`
	Detail string         `json:"detail"`
	Extras *ProblemExtras `json:"extras,omitempty"`
}

func (p *Problem) Error() string {
	msg := fmt.Sprintf("%s (status %d)", p.Title, p.Status)
	if codes := p.ResultCodes(); codes != nil {
		msg += ": " + codes.String()
	} else if len(p.Detail) > 0 {
		msg += ": " + p.Detail
	}
	return msg
}

// ResultCodes returns the result codes the network attached, if any.
func (p *Problem) ResultCodes() *ResultCodes {
	if p.Extras == nil {
		return nil
	}
	return p.Extras.ResultCodes
}
