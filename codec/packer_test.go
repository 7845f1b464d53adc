// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/rentacar/ledgersdk/consts"
)

func TestNewWriter(t *testing.T) {
	require := require.New(t)
	wr := NewWriter(2, 2)
	require.True(wr.Empty())
	wr.PackByte(1)
	wr.PackByte(2)
	require.NoError(wr.Err())
	// Pack past limit
	wr.PackByte(3)
	require.Error(wr.Err())
}

func TestPackerRoundTrip(t *testing.T) {
	require := require.New(t)
	id := ids.GenerateTestID()
	var addr Address
	copy(addr[:], id[:])

	wp := NewWriter(0, consts.NetworkSizeLimit)
	wp.PackByte(7)
	wp.PackBool(true)
	wp.PackUint32(42)
	wp.PackInt64(-5)
	wp.PackUint64(9)
	wp.PackString("USD")
	wp.PackBytes([]byte{1, 2, 3})
	wp.PackID(id)
	wp.PackAddress(addr)
	require.NoError(wp.Err())

	rp := NewReader(wp.Bytes(), consts.NetworkSizeLimit)
	require.Equal(byte(7), rp.UnpackByte())
	require.True(rp.UnpackBool())
	require.Equal(uint32(42), rp.UnpackUint32(true))
	require.Equal(int64(-5), rp.UnpackInt64(true))
	require.Equal(uint64(9), rp.UnpackUint64(true))
	require.Equal("USD", rp.UnpackString(true))
	var b []byte
	rp.UnpackBytes(-1, true, &b)
	require.Equal([]byte{1, 2, 3}, b)
	var uid ids.ID
	rp.UnpackID(true, &uid)
	require.Equal(id, uid)
	var uaddr Address
	rp.UnpackAddress(&uaddr)
	require.Equal(addr, uaddr)
	require.NoError(rp.Err())
	require.True(rp.Empty())
}

func TestPackerRequiredUnpack(t *testing.T) {
	require := require.New(t)
	wp := NewWriter(0, consts.NetworkSizeLimit)
	wp.PackUint64(0)
	rp := NewReader(wp.Bytes(), consts.NetworkSizeLimit)
	require.Zero(rp.UnpackUint64(true))
	require.ErrorIs(rp.Err(), ErrFieldNotPopulated)
}

func TestPackerUnpackIntLimit(t *testing.T) {
	require := require.New(t)
	wp := NewWriter(0, consts.NetworkSizeLimit)
	wp.PackInt(11)
	rp := NewReader(wp.Bytes(), consts.NetworkSizeLimit)
	require.Zero(rp.UnpackInt(true, 10))
	require.ErrorIs(rp.Err(), ErrTooManyItems)
}

func TestPackerUnpackBytesLimit(t *testing.T) {
	require := require.New(t)
	wp := NewWriter(0, consts.NetworkSizeLimit)
	wp.PackBytes([]byte{1, 2, 3, 4})
	rp := NewReader(wp.Bytes(), consts.NetworkSizeLimit)
	var b []byte
	rp.UnpackBytes(2, false, &b)
	require.Error(rp.Err())
}
