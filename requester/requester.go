// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxBodySize bounds how much of a response the requester will read.
const maxBodySize = 4 * 1024 * 1024

// StatusError is returned when the endpoint answers with a non-2xx status.
// Body is the raw response so callers can decode a problem document.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, strings.TrimSpace(string(e.Body)))
}

// EndpointRequester issues JSON requests against one base URI.
type EndpointRequester struct {
	cli  *http.Client
	uri  string
	name string
}

func New(uri, name string) *EndpointRequester {
	return NewWithClient(http.DefaultClient, uri, name)
}

func NewWithClient(cli *http.Client, uri, name string) *EndpointRequester {
	return &EndpointRequester{
		cli:  cli,
		uri:  strings.TrimSuffix(uri, "/"),
		name: name,
	}
}

func (e *EndpointRequester) URI() string {
	return e.uri
}

// Get sends GET {uri}{path}?{query} and decodes the JSON reply into [reply].
func (e *EndpointRequester) Get(ctx context.Context, path string, query url.Values, reply interface{}) error {
	target := e.uri + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", e.name, err)
	}
	return e.do(req, reply)
}

// PostForm sends a url-encoded form to {uri}{path} and decodes the JSON
// reply into [reply].
func (e *EndpointRequester) PostForm(ctx context.Context, path string, form url.Values, reply interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.uri+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", e.name, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req, reply)
}

func (e *EndpointRequester) do(req *http.Request, reply interface{}) error {
	req.Header.Set("Accept", "application/json")
	resp, err := e.cli.Do(req)
	if err != nil {
		return fmt.Errorf("%s: failed to issue request: %w", e.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%s: failed to read response: %w", e.name, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{Code: resp.StatusCode, Body: body}
	}
	if reply == nil {
		return nil
	}
	if err := json.Unmarshal(body, reply); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", e.name, err)
	}
	return nil
}
