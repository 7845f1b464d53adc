// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/rentacar/ledgersdk/consts"
)

const (
	AddressLen = 32

	// These consts are pulled from BIP-173: https://github.com/bitcoin/bips/blob/master/bip-0173.mediawiki
	fromBits      = 8
	toBits        = 5
	separatorLen  = 1
	checksumlen   = 6
	maxBech32Size = 90
)

// Address is the 32 byte ed25519 public key that identifies a ledger account.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// AddressBech32 returns a Bech32 string of [p] with human readable part [hrp].
func AddressBech32(hrp string, p []byte) (string, error) {
	expanded, err := bech32.ConvertBits(p, fromBits, toBits, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, expanded)
}

// MustAddressBech32 panics if AddressBech32 errors.
func MustAddressBech32(hrp string, p Address) string {
	addr, err := AddressBech32(hrp, p[:])
	if err != nil {
		panic(err)
	}
	return addr
}

// ParseBech32 decodes [saddr] and checks that it carries [hrp] and
// exactly [size] bytes.
func ParseBech32(hrp string, saddr string, size int) ([]byte, error) {
	if len(saddr) > maxBech32Size {
		return nil, ErrInvalidSize
	}
	phrp, p, err := bech32.Decode(saddr)
	if err != nil {
		return nil, err
	}
	if phrp != hrp {
		return nil, fmt.Errorf("%w: %s != %s", ErrIncorrectHRP, phrp, hrp)
	}
	b, err := bech32.ConvertBits(p, toBits, fromBits, false)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf("%w: %d != %d", ErrInvalidSize, len(b), size)
	}
	return b, nil
}

// ParseAddress parses a public identity (acct1...).
func ParseAddress(saddr string) (Address, error) {
	b, err := ParseBech32(consts.AddressHRP, saddr, AddressLen)
	if err != nil {
		return EmptyAddress, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return Address(b), nil
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return MustAddressBech32(consts.AddressHRP, a)
}

// Hint is the last 4 bytes of the address. Signatures carry it so the
// network can match them to a signer without trying every key.
func (a Address) Hint() [4]byte {
	var h [4]byte
	copy(h[:], a[AddressLen-4:])
	return h
}

// MarshalText returns the bech32 representation of a.
func (a Address) MarshalText() ([]byte, error) {
	s, err := AddressBech32(consts.AddressHRP, a[:])
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText parses a bech32-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	addr, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
