// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

type echoReply struct {
	Method string `json:"method"`
	Value  string `json:"value"`
}

func TestRequester(t *testing.T) {
	require := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/get":
			_, _ = w.Write([]byte(`{"method":"GET","value":"` + r.URL.Query().Get("v") + `"}`))
		case "/post":
			_ = r.ParseForm()
			_, _ = w.Write([]byte(`{"method":"POST","value":"` + r.PostForm.Get("v") + `"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":404}`))
		}
	}))
	defer srv.Close()

	req := New(srv.URL+"/", "test")
	require.Equal(srv.URL, req.URI())

	var reply echoReply
	require.NoError(req.Get(context.Background(), "/get", url.Values{"v": {"a b"}}, &reply))
	require.Equal(echoReply{Method: "GET", Value: "a b"}, reply)

	require.NoError(req.PostForm(context.Background(), "/post", url.Values{"v": {"x+y="}}, &reply))
	require.Equal(echoReply{Method: "POST", Value: "x+y="}, reply)

	err := req.Get(context.Background(), "/missing", nil, &reply)
	var statusErr *StatusError
	require.True(errors.As(err, &statusErr))
	require.Equal(http.StatusNotFound, statusErr.Code)
	require.JSONEq(`{"status":404}`, string(statusErr.Body))
}

func TestRequesterCanceled(t *testing.T) {
	require := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New(srv.URL, "test").Get(ctx, "/", nil, nil)
	require.ErrorIs(err, context.Canceled)
}
