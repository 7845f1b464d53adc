// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package localnet

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/near/borsh-go"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/consts"
	"github.com/rentacar/ledgersdk/pebble"
	"github.com/rentacar/ledgersdk/rpc"
)

const (
	accountPrefix byte = 0x0
	metaPrefix    byte = 0x1
)

var ledgerKey = []byte{metaPrefix, 0x0}

func accountKey(addr codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen)
	k[0] = accountPrefix
	copy(k[1:], addr[:])
	return k
}

// Store persists account records borsh encoded in pebble.
type Store struct {
	db *pebble.Database
}

func NewStore(db *pebble.Database) *Store {
	return &Store{db: db}
}

// Account returns an error wrapping [rpc.ErrNotFound] for unknown accounts.
func (s *Store) Account(addr codec.Address) (*AccountRecord, error) {
	b, err := s.db.Get(accountKey(addr))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w: account %s", rpc.ErrNotFound, addr)
	}
	if err != nil {
		return nil, err
	}
	var r AccountRecord
	if err := borsh.Deserialize(&r, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	return &r, nil
}

func (s *Store) LedgerSeq() (uint64, error) {
	b, err := s.db.Get(ledgerKey)
	if errors.Is(err, pebble.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(b) != consts.Uint64Len {
		return 0, fmt.Errorf("%w: ledger sequence", ErrCorruptRecord)
	}
	return binary.BigEndian.Uint64(b), nil
}

// Commit atomically writes [accounts] and the new ledger sequence.
func (s *Store) Commit(ledger uint64, accounts map[codec.Address]*AccountRecord) error {
	batch := s.db.NewBatch()
	addrs := maps.Keys(accounts)
	slices.SortFunc(addrs, func(a, b codec.Address) int {
		return bytes.Compare(a[:], b[:])
	})
	for _, addr := range addrs {
		b, err := borsh.Serialize(*accounts[addr])
		if err != nil {
			return err
		}
		if err := batch.Put(accountKey(addr), b); err != nil {
			return err
		}
	}
	seq := make([]byte, consts.Uint64Len)
	binary.BigEndian.PutUint64(seq, ledger)
	if err := batch.Put(ledgerKey, seq); err != nil {
		return err
	}
	return batch.Write()
}
