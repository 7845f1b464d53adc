// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"errors"
	"fmt"

	"github.com/rentacar/ledgersdk/auth"
	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/pebble"
)

const (
	defaultPrefix = 0x0
	keyPrefix     = 0x1

	defaultKeyKey = "key"
)

func defaultKey(key string) []byte {
	k := make([]byte, 1+len(key))
	k[0] = defaultPrefix
	copy(k[1:], key)
	return k
}

func keyKey(addr codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen)
	k[0] = keyPrefix
	copy(k[1:], addr[:])
	return k
}

func (h *Handler) StoreDefault(key string, value []byte) error {
	return h.db.Put(defaultKey(key), value)
}

// GetDefault returns nil if [key] was never stored.
func (h *Handler) GetDefault(key string) ([]byte, error) {
	v, err := h.db.Get(defaultKey(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, nil
	}
	return v, err
}

// StoreKey saves the secret of [k]. Keys are stored by address.
func (h *Handler) StoreKey(k *auth.Keypair) error {
	key := keyKey(k.Address())
	has, err := h.db.Has(key)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: %s", ErrDuplicate, k.PublicKey())
	}
	return h.db.Put(key, []byte(k.Secret()))
}

func (h *Handler) GetKey(addr codec.Address) (*auth.Keypair, error) {
	v, err := h.db.Get(keyKey(addr))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, addr)
	}
	if err != nil {
		return nil, err
	}
	return auth.ParseSecret(string(v))
}

// GetKeys returns every stored key ordered by address.
func (h *Handler) GetKeys() ([]*auth.Keypair, error) {
	keys := []*auth.Keypair{}
	err := h.db.Iterate([]byte{keyPrefix}, func(_, value []byte) error {
		k, err := auth.ParseSecret(string(value))
		if err != nil {
			return err
		}
		keys = append(keys, k)
		return nil
	})
	return keys, err
}

func (h *Handler) StoreDefaultKey(addr codec.Address) error {
	return h.StoreDefault(defaultKeyKey, addr[:])
}

func (h *Handler) GetDefaultKey() (*auth.Keypair, error) {
	v, err := h.GetDefault(defaultKeyKey)
	if err != nil {
		return nil, err
	}
	if len(v) != codec.AddressLen {
		return nil, ErrNoKeys
	}
	return h.GetKey(codec.Address(v))
}
