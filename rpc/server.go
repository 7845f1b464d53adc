// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rentacar/ledgersdk/codec"
)

// Backend is the network the REST handlers expose.
type Backend interface {
	Root(ctx context.Context) (*RootReply, error)
	// Account returns an error wrapping [ErrNotFound] for unknown accounts.
	Account(ctx context.Context, addr codec.Address) (*AccountReply, error)
	// Submit applies a base64 envelope. Rejections are returned as a
	// [*Problem].
	Submit(ctx context.Context, envelope string) (*SubmitReply, error)
	Fund(ctx context.Context, addr codec.Address) (*SubmitReply, error)
}

type handler struct {
	backend Backend
	log     logging.Logger
}

// NewHandler routes the ledger REST API to [backend].
func NewHandler(backend Backend, log logging.Logger) http.Handler {
	h := &handler{backend: backend, log: log}
	r := mux.NewRouter()
	r.HandleFunc(RootEndpoint, h.root).Methods(http.MethodGet)
	r.HandleFunc(AccountsEndpoint+"/{id}", h.account).Methods(http.MethodGet)
	r.HandleFunc(TransactionsEndpoint, h.submit).Methods(http.MethodPost)
	r.HandleFunc(FriendbotEndpoint, h.fund).Methods(http.MethodGet, http.MethodPost)
	return r
}

func (h *handler) root(w http.ResponseWriter, r *http.Request) {
	reply, err := h.backend.Root(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reply)
}

func (h *handler) account(w http.ResponseWriter, r *http.Request) {
	addr, err := codec.ParseAddress(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, errors.Join(ErrInvalidAddress, err))
		return
	}
	reply, err := h.backend.Account(r.Context(), addr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reply)
}

func (h *handler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, errors.Join(ErrMissingTx, err))
		return
	}
	envelope := r.PostForm.Get(TxFormField)
	if len(envelope) == 0 {
		h.writeError(w, ErrMissingTx)
		return
	}
	reply, err := h.backend.Submit(r.Context(), envelope)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reply)
}

func (h *handler) fund(w http.ResponseWriter, r *http.Request) {
	addr, err := codec.ParseAddress(r.FormValue(AddrQueryParam))
	if err != nil {
		h.writeError(w, errors.Join(ErrInvalidAddress, err))
		return
	}
	reply, err := h.backend.Fund(r.Context(), addr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reply)
}

func (h *handler) writeError(w http.ResponseWriter, err error) {
	var problem *Problem
	switch {
	case errors.As(err, &problem):
	case errors.Is(err, ErrNotFound):
		problem = &Problem{
			Type:   "not_found",
			Title:  "Resource Missing",
			Status: http.StatusNotFound,
			Detail: err.Error(),
		}
	case errors.Is(err, ErrInvalidAddress), errors.Is(err, ErrMissingTx):
		problem = &Problem{
			Type:   "bad_request",
			Title:  "Bad Request",
			Status: http.StatusBadRequest,
			Detail: err.Error(),
		}
	default:
		h.log.Warn("request failed", zap.Error(err))
		problem = &Problem{
			Type:   "server_error",
			Title:  "Internal Server Error",
			Status: http.StatusInternalServerError,
			Detail: err.Error(),
		}
	}
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(problem.Status)
	if err := json.NewEncoder(w).Encode(problem); err != nil {
		h.log.Debug("failed to write problem", zap.Error(err))
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Debug("failed to write reply", zap.Error(err))
	}
}
