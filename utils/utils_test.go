// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

func TestSaveBytes(t *testing.T) {
	require := require.New(t)
	filename := filepath.Join(t.TempDir(), "SaveBytes")

	id := ids.GenerateTestID()
	require.NoError(SaveBytes(filename, id[:]))
	require.FileExists(filename)

	b, err := os.ReadFile(filename)
	require.NoError(err)
	require.Equal(id[:], b)
}

func TestLoadBytesIncorrectLength(t *testing.T) {
	require := require.New(t)
	filename := filepath.Join(t.TempDir(), "LoadBytes")
	require.NoError(os.WriteFile(filename, []byte{1, 2, 3, 4, 5}, 0o600))

	_, err := LoadBytes(filename, ids.IDLen)
	require.ErrorIs(err, ErrInvalidSize)
}

func TestLoadBytesMissingFile(t *testing.T) {
	_, err := LoadBytes(filepath.Join(t.TempDir(), "missing"), ids.IDLen)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBytes(t *testing.T) {
	require := require.New(t)
	filename := filepath.Join(t.TempDir(), "LoadBytes")
	id := ids.GenerateTestID()
	require.NoError(SaveBytes(filename, id[:]))

	b, err := LoadBytes(filename, ids.IDLen)
	require.NoError(err)
	require.True(bytes.Equal(b, id[:]))
}

func TestFormatBalance(t *testing.T) {
	require := require.New(t)
	for input, expected := range map[string]string{
		"74.4999900":    "74.49999",
		"10000.0000000": "10000",
		"0.0000001":     "0.0000001",
		"garbage":       "garbage",
	} {
		require.Equal(expected, FormatBalance(input))
	}
}

func TestGetPort(t *testing.T) {
	require := require.New(t)
	port, err := GetPort("http://127.0.0.1:8000")
	require.NoError(err)
	require.Equal("8000", port)
	host, err := GetHost("http://127.0.0.1:8000")
	require.NoError(err)
	require.Equal("127.0.0.1", host)
}
