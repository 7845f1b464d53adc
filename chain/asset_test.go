// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/consts"
)

func TestAssetTypes(t *testing.T) {
	require := require.New(t)
	issuer := codec.Address(ids.GenerateTestID())

	native := NativeAsset()
	require.True(native.IsNative())
	require.Equal(AssetNative, native.Type())
	require.Equal(consts.NativeCode, native.DisplayCode())
	require.Equal("native", native.Type().String())

	usd, err := NewIssuedAsset("USD", issuer)
	require.NoError(err)
	require.Equal(AssetAlphanum4, usd.Type())
	require.Equal("credit_alphanum4", usd.Type().String())

	long, err := NewIssuedAsset("RENTALTOKEN", issuer)
	require.NoError(err)
	require.Equal(AssetAlphanum12, long.Type())

	_, err = NewIssuedAsset("", issuer)
	require.ErrorIs(err, ErrInvalidAsset)
	_, err = NewIssuedAsset("THIRTEENCHARS", issuer)
	require.ErrorIs(err, ErrInvalidAsset)
	_, err = NewIssuedAsset("US D", issuer)
	require.ErrorIs(err, ErrInvalidAsset)
	_, err = NewIssuedAsset("USD", codec.EmptyAddress)
	require.ErrorIs(err, ErrInvalidAsset)
}

func TestParseAsset(t *testing.T) {
	require := require.New(t)
	issuer := codec.Address(ids.GenerateTestID())

	a, err := ParseAsset("native")
	require.NoError(err)
	require.True(a.IsNative())
	a, err = ParseAsset("XLM")
	require.NoError(err)
	require.True(a.IsNative())

	usd, err := NewIssuedAsset("USD", issuer)
	require.NoError(err)
	a, err = ParseAsset(usd.String())
	require.NoError(err)
	require.Equal(usd, a)

	_, err = ParseAsset("USD")
	require.ErrorIs(err, ErrInvalidAsset)
	_, err = ParseAsset("USD:nope")
	require.ErrorIs(err, ErrInvalidAsset)
}

func TestAssetMarshal(t *testing.T) {
	require := require.New(t)
	issuer := codec.Address(ids.GenerateTestID())
	usd, err := NewIssuedAsset("USD", issuer)
	require.NoError(err)

	for _, a := range []Asset{NativeAsset(), usd} {
		p := codec.NewWriter(a.Size(), consts.NetworkSizeLimit)
		a.Marshal(p)
		require.NoError(p.Err())
		require.Len(p.Bytes(), a.Size())

		out, err := UnmarshalAsset(codec.NewReader(p.Bytes(), consts.NetworkSizeLimit))
		require.NoError(err)
		require.Equal(a, out)
	}
}
