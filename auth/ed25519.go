// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"fmt"

	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/consts"
	"github.com/rentacar/ledgersdk/crypto/ed25519"
)

var _ chain.Signer = (*Keypair)(nil)

// Keypair is an account identity: the public address and, when known, the
// secret key that signs for it. The secret is only ever held in memory.
type Keypair struct {
	priv ed25519.PrivateKey
	addr codec.Address
}

// GenerateKeypair returns a random identity.
func GenerateKeypair() (*Keypair, error) {
	priv, err := ed25519.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return NewKeypair(priv), nil
}

func NewKeypair(priv ed25519.PrivateKey) *Keypair {
	return &Keypair{
		priv: priv,
		addr: NewED25519Address(priv.PublicKey()),
	}
}

// ParseSecret loads an identity from its secret string (seed1...).
func ParseSecret(secret string) (*Keypair, error) {
	seed, err := codec.ParseBech32(consts.SeedHRP, secret, ed25519.PrivateKeySeedLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecret, err)
	}
	priv, err := ed25519.PrivateKeyFromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecret, err)
	}
	return NewKeypair(priv), nil
}

func NewED25519Address(pk ed25519.PublicKey) codec.Address {
	return codec.Address(pk)
}

func (k *Keypair) Address() codec.Address {
	return k.addr
}

// PublicKey is the public identity string (acct1...).
func (k *Keypair) PublicKey() string {
	return k.addr.String()
}

// Secret is the secret identity string (seed1...).
func (k *Keypair) Secret() string {
	seed := k.priv.Seed()
	s, err := codec.AddressBech32(consts.SeedHRP, seed[:])
	if err != nil {
		panic(err)
	}
	return s
}

func (k *Keypair) Sign(msg []byte) (chain.Signature, error) {
	return chain.Signature{
		Hint:      k.addr.Hint(),
		Signature: ed25519.Sign(msg, k.priv),
	}, nil
}

// String never prints the secret.
func (k *Keypair) String() string {
	return k.PublicKey()
}
