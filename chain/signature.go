// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/crypto/ed25519"
)

const SignatureSize = 4 + ed25519.SignatureLen

// Signature is an ed25519 signature decorated with the hint of the key
// that produced it.
type Signature struct {
	Hint      [4]byte           `json:"hint"`
	Signature ed25519.Signature `json:"signature"`
}

// Signer produces signatures for one account. Secret material never leaves
// the implementation.
type Signer interface {
	Address() codec.Address
	Sign(msg []byte) (Signature, error)
}

// Verify reports whether s is a signature of [msg] by [addr].
func (s Signature) Verify(msg []byte, addr codec.Address) bool {
	if s.Hint != addr.Hint() {
		return false
	}
	return ed25519.Verify(msg, ed25519.PublicKey(addr), s.Signature)
}

func (s Signature) Marshal(p *codec.Packer) {
	p.PackFixedBytes(s.Hint[:])
	p.PackFixedBytes(s.Signature[:])
}

func UnmarshalSignature(p *codec.Packer) Signature {
	var s Signature
	hint := s.Hint[:]
	p.UnpackFixedBytes(len(s.Hint), &hint)
	sig := s.Signature[:]
	p.UnpackFixedBytes(ed25519.SignatureLen, &sig)
	return s
}
