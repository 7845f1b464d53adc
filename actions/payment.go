// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"fmt"

	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/consts"
)

var _ chain.Operation = (*Payment)(nil)

type Payment struct {
	// Destination receives [Amount] of [Asset]. Its existence is the
	// network's concern.
	Destination codec.Address `json:"destination"`

	Asset chain.Asset `json:"asset"`

	Amount chain.Amount `json:"amount"`
}

// NewPayment validates its parameters and returns the payment operation.
func NewPayment(destination string, asset chain.Asset, amount string) (*Payment, error) {
	dest, err := codec.ParseAddress(destination)
	if err != nil {
		return nil, fmt.Errorf("%w: destination: %w", ErrInvalidOperationParameters, err)
	}
	amt, err := chain.ParseAmount(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: amount: %w", ErrInvalidOperationParameters, err)
	}
	p := &Payment{
		Destination: dest,
		Asset:       asset,
		Amount:      amt,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewAssetPayment pays an asset issued by [issuer] under [code].
func NewAssetPayment(destination, code, issuer, amount string) (*Payment, error) {
	issuerAddr, err := codec.ParseAddress(issuer)
	if err != nil {
		return nil, fmt.Errorf("%w: issuer: %w", ErrInvalidOperationParameters, err)
	}
	asset, err := chain.NewIssuedAsset(code, issuerAddr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOperationParameters, err)
	}
	return NewPayment(destination, asset, amount)
}

func (*Payment) GetTypeID() uint8 {
	return PaymentID
}

func (p *Payment) Validate() error {
	if p.Destination == codec.EmptyAddress {
		return fmt.Errorf("%w: missing destination", ErrInvalidOperationParameters)
	}
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount %s is not positive", ErrInvalidOperationParameters, p.Amount)
	}
	if err := p.Asset.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOperationParameters, err)
	}
	return nil
}

func (p *Payment) Size() int {
	return codec.AddressLen + p.Asset.Size() + consts.Int64Len
}

func (p *Payment) Marshal(packer *codec.Packer) {
	packer.PackAddress(p.Destination)
	p.Asset.Marshal(packer)
	packer.PackInt64(int64(p.Amount))
}

func UnmarshalPayment(p *codec.Packer) (chain.Operation, error) {
	var payment Payment
	p.UnpackAddress(&payment.Destination)
	asset, err := chain.UnmarshalAsset(p)
	if err != nil {
		return nil, err
	}
	payment.Asset = asset
	payment.Amount = chain.Amount(p.UnpackInt64(true))
	if err := p.Err(); err != nil {
		return nil, err
	}
	return &payment, payment.Validate()
}
