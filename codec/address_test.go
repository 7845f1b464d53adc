// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/rentacar/ledgersdk/consts"
)

func testAddress() Address {
	id := ids.GenerateTestID()
	return Address(id)
}

func TestAddressString(t *testing.T) {
	require := require.New(t)
	addr := testAddress()

	s := addr.String()
	require.True(strings.HasPrefix(s, consts.AddressHRP+"1"))

	parsed, err := ParseAddress(s)
	require.NoError(err)
	require.Equal(addr, parsed)
}

func TestAddressJSON(t *testing.T) {
	require := require.New(t)
	addr := testAddress()

	b, err := json.Marshal(addr)
	require.NoError(err)

	var parsed Address
	require.NoError(json.Unmarshal(b, &parsed))
	require.Equal(addr, parsed)
}

func TestParseAddressErrors(t *testing.T) {
	addr := testAddress()
	seed, err := AddressBech32(consts.SeedHRP, addr[:])
	require.NoError(t, err)
	short, err := AddressBech32(consts.AddressHRP, addr[:16])
	require.NoError(t, err)
	valid := addr.String()
	corrupted := valid[:len(valid)-1] + string(valid[len(valid)-1]^1)

	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "garbage", in: "not-an-address"},
		{name: "wrong hrp", in: seed},
		{name: "wrong size", in: short},
		{name: "bad checksum", in: corrupted},
		{name: "too long", in: valid + strings.Repeat("q", 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAddress(tt.in)
			require.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}

func TestAddressHint(t *testing.T) {
	require := require.New(t)
	addr := testAddress()
	hint := addr.Hint()
	require.Equal(addr[AddressLen-4:], hint[:])
}
