// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/consts"
)

type Base struct {
	// Source is the account that pays the fee and whose sequence number the
	// transaction consumes.
	Source codec.Address `json:"source"`

	// Sequence must equal the source account's sequence number when the
	// network applies the transaction. The network increments it by one on
	// commit, so an envelope can be applied at most once.
	Sequence uint64 `json:"sequence"`

	// Fee is the most the source will pay, in stroops, for the whole
	// transaction.
	Fee uint32 `json:"fee"`

	// MinTime and MaxTime bound (in unix seconds, inclusive) when the
	// network will consider the transaction. Once MaxTime passes and the
	// transaction is not committed it is safe to rebuild it from a fresh
	// account snapshot.
	MinTime int64 `json:"minTime"`
	MaxTime int64 `json:"maxTime"`

	Memo string `json:"memo,omitempty"`
}

// ValidAt reports whether the network may include the transaction at
// [now] (unix seconds).
func (b *Base) ValidAt(now int64) error {
	switch {
	case now < b.MinTime:
		return ErrTimestampTooEarly
	case b.MaxTime != 0 && now > b.MaxTime:
		return ErrTimestampTooLate
	default:
		return nil
	}
}

func (b *Base) Validate() error {
	switch {
	case b.Source == codec.EmptyAddress:
		return fmt.Errorf("%w: missing source", ErrInvalidEnvelope)
	case b.MaxTime != 0 && b.MaxTime < b.MinTime:
		return fmt.Errorf("%w: max %d < min %d", ErrInvalidTimeBounds, b.MaxTime, b.MinTime)
	case len(b.Memo) > MaxMemoSize:
		return ErrMemoTooLarge
	default:
		return nil
	}
}

func (b *Base) Size() int {
	return codec.AddressLen + consts.Uint64Len + consts.Uint32Len + consts.Int64Len*2 + codec.StringLen(b.Memo)
}

func (b *Base) Marshal(p *codec.Packer) {
	p.PackAddress(b.Source)
	p.PackUint64(b.Sequence)
	p.PackUint32(b.Fee)
	p.PackInt64(b.MinTime)
	p.PackInt64(b.MaxTime)
	p.PackString(b.Memo)
}

func UnmarshalBase(p *codec.Packer) (*Base, error) {
	var base Base
	p.UnpackAddress(&base.Source)
	base.Sequence = p.UnpackUint64(false)
	base.Fee = p.UnpackUint32(false)
	base.MinTime = p.UnpackInt64(false)
	base.MaxTime = p.UnpackInt64(false)
	base.Memo = p.UnpackString(false)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return &base, base.Validate()
}
