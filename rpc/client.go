// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/requester"
)

// Client talks to a ledger network over its REST API. Every method issues
// exactly one request and never retries.
type Client struct {
	requester *requester.EndpointRequester
	faucet    *requester.EndpointRequester
}

// NewClient returns a client for the network at [uri]. If [faucetURI] is
// empty the network's own friendbot endpoint is used.
func NewClient(uri, faucetURI string) *Client {
	return NewClientWithHTTP(http.DefaultClient, uri, faucetURI)
}

func NewClientWithHTTP(cli *http.Client, uri, faucetURI string) *Client {
	req := requester.NewWithClient(cli, uri, Name)
	if len(faucetURI) == 0 {
		faucetURI = req.URI() + FriendbotEndpoint
	}
	return &Client{
		requester: req,
		faucet:    requester.NewWithClient(cli, faucetURI, Name+"-faucet"),
	}
}

func (cli *Client) Root(ctx context.Context) (*RootReply, error) {
	resp := new(RootReply)
	if err := cli.requester.Get(ctx, RootEndpoint, nil, resp); err != nil {
		return nil, asProblem(err)
	}
	return resp, nil
}

// Account fetches the current state of [addr]. A missing account returns
// an error wrapping [ErrNotFound].
func (cli *Client) Account(ctx context.Context, addr codec.Address) (*AccountReply, error) {
	resp := new(AccountReply)
	err := cli.requester.Get(ctx, AccountsEndpoint+"/"+addr.String(), nil, resp)
	if err != nil {
		var statusErr *requester.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, fmt.Errorf("%w: account %s", ErrNotFound, addr)
		}
		return nil, asProblem(err)
	}
	return resp, nil
}

// SubmitTx posts the base64 [envelope]. A non-2xx answer is returned as a
// [*Problem].
func (cli *Client) SubmitTx(ctx context.Context, envelope string) (*SubmitReply, error) {
	resp := new(SubmitReply)
	err := cli.requester.PostForm(ctx, TransactionsEndpoint, url.Values{TxFormField: {envelope}}, resp)
	if err != nil {
		return nil, asProblem(err)
	}
	return resp, nil
}

// Fund asks the faucet to create and credit [addr].
func (cli *Client) Fund(ctx context.Context, addr codec.Address) (*SubmitReply, error) {
	resp := new(SubmitReply)
	err := cli.faucet.Get(ctx, "", url.Values{AddrQueryParam: {addr.String()}}, resp)
	if err != nil {
		return nil, asProblem(err)
	}
	return resp, nil
}

// asProblem converts a status error into the problem document it carries.
// Errors that never reached the network are returned unchanged.
func asProblem(err error) error {
	var statusErr *requester.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}
	problem := new(Problem)
	if jerr := json.Unmarshal(statusErr.Body, problem); jerr != nil || problem.Status == 0 {
		problem = &Problem{
			Title:  http.StatusText(statusErr.Code),
			Detail: string(statusErr.Body),
		}
	}
	problem.Status = statusErr.Code
	if len(problem.Title) == 0 {
		problem.Title = http.StatusText(statusErr.Code)
	}
	return problem
}
