// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"github.com/rentacar/ledgersdk/ledger"
	"github.com/rentacar/ledgersdk/pebble"
)

// Handler backs the ledger-cli commands: a local key store and the
// network environment every command talks to.
type Handler struct {
	db  *pebble.Database
	env *ledger.Env
}

func New(db *pebble.Database, env *ledger.Env) *Handler {
	return &Handler{db: db, env: env}
}

func (h *Handler) Env() *ledger.Env {
	return h.env
}
