// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "fmt"

// Typed is implemented by every value that is encoded behind a type id.
type Typed interface {
	GetTypeID() uint8
}

type TypeParser[T Typed] struct {
	indexToDecoder map[uint8]func(*Packer) (T, error)
}

func NewTypeParser[T Typed]() *TypeParser[T] {
	return &TypeParser[T]{
		indexToDecoder: map[uint8]func(*Packer) (T, error){},
	}
}

// Register adds the decoder [f] for the type id of [instance].
func (p *TypeParser[T]) Register(instance T, f func(*Packer) (T, error)) error {
	index := instance.GetTypeID()
	if _, ok := p.indexToDecoder[index]; ok {
		return fmt.Errorf("%w: type id %d", ErrDuplicateItem, index)
	}
	p.indexToDecoder[index] = f
	return nil
}

func (p *TypeParser[T]) LookupIndex(index uint8) (func(*Packer) (T, error), bool) {
	f, ok := p.indexToDecoder[index]
	return f, ok
}

// Unmarshal reads a type id followed by the value it identifies.
func (p *TypeParser[T]) Unmarshal(packer *Packer) (T, error) {
	var empty T
	index := packer.UnpackByte()
	if err := packer.Err(); err != nil {
		return empty, err
	}
	f, ok := p.LookupIndex(index)
	if !ok {
		return empty, fmt.Errorf("%w: type id %d", ErrUnknownType, index)
	}
	return f(packer)
}
