// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/consts"
)

func TestLoadFile(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(os.WriteFile(path, []byte(`
network: TestNet
endpoint: https://ledger.example.org
faucet: https://faucet.example.org
baseFee: 200
txTimeout: 45s
logLevel: debug
trace:
  enabled: true
  traceSampleRate: 0.5
`), 0o600))

	c, err := Load(path)
	require.NoError(err)
	require.Equal(consts.TestnetName, c.Network)
	require.Equal(consts.TestnetPassphrase, c.Passphrase)
	require.Equal("https://ledger.example.org", c.Endpoint)
	require.Equal("https://faucet.example.org", c.Faucet)
	require.Equal(uint32(200), c.BaseFee)
	require.Equal(45*time.Second, c.TxTimeout)
	require.Equal(consts.RequestTimeout, c.RequestTimeout)
	require.Equal(logging.Debug, c.GetLogLevel())
	require.True(c.GetTraceConfig().Enabled)
	require.InDelta(0.5, c.GetTraceConfig().TraceSampleRate, 0.0001)
	require.Equal(chain.NetworkID(consts.TestnetPassphrase), c.NetworkID())
	require.True(c.FaucetAllowed())
}

func TestLoadEnvOverrides(t *testing.T) {
	require := require.New(t)
	t.Setenv(EnvNetwork, "LOCAL")
	t.Setenv(EnvEndpoint, "http://127.0.0.1:9999")

	c, err := Load("")
	require.NoError(err)
	require.Equal(consts.LocalName, c.Network)
	require.Equal(consts.LocalPassphrase, c.Passphrase)
	require.Equal("http://127.0.0.1:9999", c.Endpoint)
	require.True(c.FaucetAllowed())
}

func TestNormalizeErrors(t *testing.T) {
	require := require.New(t)

	c := &Config{Network: "custom", Endpoint: "http://x"}
	require.ErrorIs(c.Normalize(), ErrMissingPassphrase)

	c = &Config{Network: "mainnet"}
	require.ErrorIs(c.Normalize(), ErrMissingEndpoint)

	c = &Config{Network: "local", TxTimeout: -time.Second}
	require.ErrorIs(c.Normalize(), ErrInvalidTimeout)

	c = &Config{Network: "local", LogLevel: "loud"}
	require.Error(c.Normalize())
}

func TestFaucetNetwork(t *testing.T) {
	require := require.New(t)
	require.True(FaucetNetwork("testnet"))
	require.True(FaucetNetwork("LOCAL"))
	require.True(FaucetNetwork(" Testnet "))
	require.False(FaucetNetwork("mainnet"))
	require.False(FaucetNetwork(""))
}
