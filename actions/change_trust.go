// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"fmt"
	"strings"

	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/consts"
)

var _ chain.Operation = (*ChangeTrust)(nil)

// ChangeTrust creates, updates or (with a zero limit) removes the source
// account's trust line to an issued asset.
type ChangeTrust struct {
	Asset chain.Asset `json:"asset"`

	Limit chain.Amount `json:"limit"`
}

// NewChangeTrust builds a trust line change. An empty [limit] trusts up to
// [MaxTrustLimit]; "0" removes the trust line.
func NewChangeTrust(asset chain.Asset, limit string) (*ChangeTrust, error) {
	l := MaxTrustLimit
	if len(strings.TrimSpace(limit)) > 0 {
		var err error
		l, err = chain.ParseAmount(limit)
		if err != nil {
			return nil, fmt.Errorf("%w: limit: %w", ErrInvalidOperationParameters, err)
		}
	}
	c := &ChangeTrust{Asset: asset, Limit: l}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (*ChangeTrust) GetTypeID() uint8 {
	return ChangeTrustID
}

// Removes reports whether the change deletes the trust line.
func (c *ChangeTrust) Removes() bool {
	return c.Limit == 0
}

func (c *ChangeTrust) Validate() error {
	if c.Asset.IsNative() {
		return fmt.Errorf("%w: cannot trust the native asset", ErrInvalidOperationParameters)
	}
	if err := c.Asset.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOperationParameters, err)
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: limit %s is negative", ErrInvalidOperationParameters, c.Limit)
	}
	return nil
}

func (c *ChangeTrust) Size() int {
	return c.Asset.Size() + consts.Int64Len
}

func (c *ChangeTrust) Marshal(p *codec.Packer) {
	c.Asset.Marshal(p)
	p.PackInt64(int64(c.Limit))
}

func UnmarshalChangeTrust(p *codec.Packer) (chain.Operation, error) {
	var c ChangeTrust
	asset, err := chain.UnmarshalAsset(p)
	if err != nil {
		return nil, err
	}
	c.Asset = asset
	c.Limit = chain.Amount(p.UnpackInt64(false))
	if err := p.Err(); err != nil {
		return nil, err
	}
	return &c, c.Validate()
}
