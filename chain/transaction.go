// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/base64"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"go.uber.org/atomic"

	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/consts"
)

// Transaction is the envelope submitted to the network: a [Base], an
// ordered non-empty list of operations applied atomically, and the
// signatures over its payload.
type Transaction struct {
	Base       *Base       `json:"base"`
	Operations []Operation `json:"operations"`
	Signatures []Signature `json:"signatures"`

	digest    []byte
	submitted atomic.Bool
}

func NewTx(base *Base, ops []Operation) *Transaction {
	return &Transaction{
		Base:       base,
		Operations: ops,
	}
}

func (t *Transaction) Validate() error {
	if t.Base == nil {
		return fmt.Errorf("%w: missing base", ErrInvalidEnvelope)
	}
	if err := t.Base.Validate(); err != nil {
		return err
	}
	switch {
	case len(t.Operations) == 0:
		return ErrNoOperations
	case len(t.Operations) > consts.MaxOperations:
		return ErrTooManyOperations
	case len(t.Signatures) > consts.MaxSignatures:
		return ErrTooManySignatures
	}
	for i, op := range t.Operations {
		if err := op.Validate(); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return nil
}

// Digest is the canonical encoding of everything but the signatures.
func (t *Transaction) Digest() ([]byte, error) {
	if len(t.digest) > 0 {
		return t.digest, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	size := t.Base.Size() + consts.IntLen
	for _, op := range t.Operations {
		size += consts.ByteLen + op.Size()
	}
	p := codec.NewWriter(size, consts.NetworkSizeLimit)
	t.Base.Marshal(p)
	p.PackInt(len(t.Operations))
	for _, op := range t.Operations {
		p.PackByte(op.GetTypeID())
		op.Marshal(p)
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	t.digest = p.Bytes()
	return t.digest, nil
}

// Payload is the message every signer signs: the network id, the envelope
// type and the digest.
func (t *Transaction) Payload(networkID ids.ID) ([]byte, error) {
	digest, err := t.Digest()
	if err != nil {
		return nil, err
	}
	msg := make([]byte, 0, consts.IDLen+consts.ByteLen+len(digest))
	msg = append(msg, networkID[:]...)
	msg = append(msg, EnvelopeTypeTx)
	return append(msg, digest...), nil
}

// Hash identifies the transaction on the network with id [networkID].
func (t *Transaction) Hash(networkID ids.ID) (ids.ID, error) {
	msg, err := t.Payload(networkID)
	if err != nil {
		return ids.Empty, err
	}
	return ids.ID(hashing.ComputeHash256Array(msg)), nil
}

// SignedBy reports whether a valid signature by [addr] is attached.
func (t *Transaction) SignedBy(networkID ids.ID, addr codec.Address) (bool, error) {
	msg, err := t.Payload(networkID)
	if err != nil {
		return false, err
	}
	for _, sig := range t.Signatures {
		if sig.Verify(msg, addr) {
			return true, nil
		}
	}
	return false, nil
}

// Sign appends a signature by [signer]. Signing again with a key that
// already signed leaves the signatures unchanged and returns false.
func (t *Transaction) Sign(networkID ids.ID, signer Signer) (bool, error) {
	msg, err := t.Payload(networkID)
	if err != nil {
		return false, err
	}
	addr := signer.Address()
	for _, sig := range t.Signatures {
		if sig.Verify(msg, addr) {
			return false, nil
		}
	}
	if len(t.Signatures) >= consts.MaxSignatures {
		return false, ErrTooManySignatures
	}
	sig, err := signer.Sign(msg)
	if err != nil {
		return false, err
	}
	if sig.Hint != addr.Hint() {
		return false, ErrSignerHintMismatch
	}
	t.Signatures = append(t.Signatures, sig)
	return true, nil
}

// MarkSubmitted flags the envelope as handed to the network. It returns
// false if the envelope was already submitted.
func (t *Transaction) MarkSubmitted() bool {
	return t.submitted.CompareAndSwap(false, true)
}

func (t *Transaction) Submitted() bool {
	return t.submitted.Load()
}

func (t *Transaction) Marshal(p *codec.Packer) error {
	digest, err := t.Digest()
	if err != nil {
		return err
	}
	p.PackFixedBytes(digest)
	p.PackInt(len(t.Signatures))
	for _, sig := range t.Signatures {
		sig.Marshal(p)
	}
	return p.Err()
}

func (t *Transaction) Bytes() ([]byte, error) {
	digest, err := t.Digest()
	if err != nil {
		return nil, err
	}
	p := codec.NewWriter(len(digest)+consts.IntLen+len(t.Signatures)*SignatureSize, consts.NetworkSizeLimit)
	if err := t.Marshal(p); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// Base64 is the wire form of the signed envelope.
func (t *Transaction) Base64() (string, error) {
	b, err := t.Bytes()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func UnmarshalTx(p *codec.Packer, parser *OperationParser) (*Transaction, error) {
	start := p.Offset()
	base, err := UnmarshalBase(p)
	if err != nil {
		return nil, fmt.Errorf("%w: could not unmarshal base", err)
	}
	numOps := p.UnpackInt(true, consts.MaxOperations)
	if err := p.Err(); err != nil {
		return nil, fmt.Errorf("%w: could not unpack operation count", err)
	}
	ops := make([]Operation, 0, numOps)
	for i := 0; i < numOps; i++ {
		op, err := parser.Unmarshal(p)
		if err != nil {
			return nil, fmt.Errorf("%w: could not unmarshal operation %d", err, i)
		}
		ops = append(ops, op)
	}
	digest := p.Bytes()[start:p.Offset()]
	numSigs := p.UnpackInt(false, consts.MaxSignatures)
	sigs := make([]Signature, 0, numSigs)
	for i := 0; i < numSigs; i++ {
		sigs = append(sigs, UnmarshalSignature(p))
	}
	if err := p.Err(); err != nil {
		return nil, fmt.Errorf("%w: could not unmarshal signatures", err)
	}

	tx := NewTx(base, ops)
	tx.Signatures = sigs
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	tx.digest = make([]byte, len(digest))
	copy(tx.digest, digest)
	return tx, nil
}

// ParseBase64 decodes the wire form produced by [Transaction.Base64].
func ParseBase64(s string, parser *OperationParser) (*Transaction, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}
	p := codec.NewReader(b, consts.NetworkSizeLimit)
	tx, err := UnmarshalTx(p, parser)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}
	if !p.Empty() {
		return nil, fmt.Errorf("%w: extra bytes", ErrInvalidEnvelope)
	}
	return tx, nil
}
