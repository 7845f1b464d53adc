// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/consts"
)

func TestKeypairSecretRoundTrip(t *testing.T) {
	require := require.New(t)
	kp, err := GenerateKeypair()
	require.NoError(err)

	require.True(strings.HasPrefix(kp.PublicKey(), consts.AddressHRP+"1"))
	require.True(strings.HasPrefix(kp.Secret(), consts.SeedHRP+"1"))

	loaded, err := ParseSecret(kp.Secret())
	require.NoError(err)
	require.Equal(kp.Address(), loaded.Address())

	addr, err := codec.ParseAddress(kp.PublicKey())
	require.NoError(err)
	require.Equal(kp.Address(), addr)
}

func TestParseSecretRejectsPublicIdentity(t *testing.T) {
	require := require.New(t)
	kp, err := GenerateKeypair()
	require.NoError(err)
	_, err = ParseSecret(kp.PublicKey())
	require.ErrorIs(err, ErrInvalidSecret)
}

func TestKeypairSignatureVerifies(t *testing.T) {
	require := require.New(t)
	kp, err := GenerateKeypair()
	require.NoError(err)
	other, err := GenerateKeypair()
	require.NoError(err)

	msg := []byte("payload")
	sig, err := kp.Sign(msg)
	require.NoError(err)
	require.True(sig.Verify(msg, kp.Address()))
	require.False(sig.Verify(msg, other.Address()))
	require.False(sig.Verify([]byte("other payload"), kp.Address()))
}

func TestKeypairStringHidesSecret(t *testing.T) {
	require := require.New(t)
	kp, err := GenerateKeypair()
	require.NoError(err)
	require.NotContains(fmt.Sprintf("%v %s", kp, kp), kp.Secret())
}
