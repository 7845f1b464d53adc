// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"strings"

	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/consts"
)

type AssetType uint8

const (
	AssetNative AssetType = iota
	AssetAlphanum4
	AssetAlphanum12
)

func (t AssetType) String() string {
	switch t {
	case AssetNative:
		return "native"
	case AssetAlphanum4:
		return "credit_alphanum4"
	case AssetAlphanum12:
		return "credit_alphanum12"
	default:
		return "unknown"
	}
}

// Asset is either the native asset (empty Code) or an asset issued by
// Issuer under Code.
type Asset struct {
	Code   string        `json:"code,omitempty"`
	Issuer codec.Address `json:"issuer,omitempty"`
}

func NativeAsset() Asset {
	return Asset{}
}

// NewIssuedAsset validates [code] and returns the asset [issuer] issues
// under it.
func NewIssuedAsset(code string, issuer codec.Address) (Asset, error) {
	a := Asset{Code: code, Issuer: issuer}
	if a.IsNative() {
		return Asset{}, fmt.Errorf("%w: empty code", ErrInvalidAsset)
	}
	if err := a.Validate(); err != nil {
		return Asset{}, err
	}
	return a, nil
}

// ParseAsset accepts "native", "XLM" or "CODE:acct1...".
func ParseAsset(s string) (Asset, error) {
	s = strings.TrimSpace(s)
	if s == "native" || s == consts.NativeCode {
		return NativeAsset(), nil
	}
	code, issuer, ok := strings.Cut(s, ":")
	if !ok {
		return Asset{}, fmt.Errorf("%w: %q is not CODE:ISSUER", ErrInvalidAsset, s)
	}
	addr, err := codec.ParseAddress(issuer)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %w", ErrInvalidAsset, err)
	}
	return NewIssuedAsset(code, addr)
}

func (a Asset) IsNative() bool {
	return len(a.Code) == 0
}

func (a Asset) Type() AssetType {
	switch {
	case a.IsNative():
		return AssetNative
	case len(a.Code) <= 4:
		return AssetAlphanum4
	default:
		return AssetAlphanum12
	}
}

// DisplayCode is the code shown to users; the native asset shows as XLM.
func (a Asset) DisplayCode() string {
	if a.IsNative() {
		return consts.NativeCode
	}
	return a.Code
}

func (a Asset) String() string {
	if a.IsNative() {
		return "native"
	}
	return a.Code + ":" + a.Issuer.String()
}

func (a Asset) Validate() error {
	if a.IsNative() {
		if a.Issuer != codec.EmptyAddress {
			return fmt.Errorf("%w: native asset has an issuer", ErrInvalidAsset)
		}
		return nil
	}
	if len(a.Code) > consts.MaxAssetCodeLen {
		return fmt.Errorf("%w: code %q longer than %d", ErrInvalidAsset, a.Code, consts.MaxAssetCodeLen)
	}
	for _, r := range a.Code {
		if !isAlphanumeric(r) {
			return fmt.Errorf("%w: code %q is not alphanumeric", ErrInvalidAsset, a.Code)
		}
	}
	if a.Issuer == codec.EmptyAddress {
		return fmt.Errorf("%w: missing issuer", ErrInvalidAsset)
	}
	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func (a Asset) Size() int {
	if a.IsNative() {
		return consts.ByteLen
	}
	return consts.ByteLen + codec.StringLen(a.Code) + codec.AddressLen
}

func (a Asset) Marshal(p *codec.Packer) {
	p.PackByte(byte(a.Type()))
	if a.IsNative() {
		return
	}
	p.PackString(a.Code)
	p.PackAddress(a.Issuer)
}

func UnmarshalAsset(p *codec.Packer) (Asset, error) {
	t := AssetType(p.UnpackByte())
	if t == AssetNative {
		return NativeAsset(), p.Err()
	}
	var a Asset
	a.Code = p.UnpackString(true)
	p.UnpackAddress(&a.Issuer)
	if err := p.Err(); err != nil {
		return Asset{}, err
	}
	if a.Type() != t {
		return Asset{}, fmt.Errorf("%w: code %q does not match %s", ErrInvalidAsset, a.Code, t)
	}
	return a, a.Validate()
}
