// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/yaml.v2"

	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/consts"
	"github.com/rentacar/ledgersdk/trace"
)

const (
	EnvNetwork    = "LEDGER_NETWORK"
	EnvPassphrase = "LEDGER_PASSPHRASE"
	EnvEndpoint   = "LEDGER_ENDPOINT"
	EnvFaucet     = "LEDGER_FAUCET"

	DefaultLocalEndpoint = "http://127.0.0.1:8000"
)

var (
	ErrMissingPassphrase = errors.New("missing network passphrase")
	ErrMissingEndpoint   = errors.New("missing network endpoint")
	ErrInvalidTimeout    = errors.New("invalid timeout")
	ErrInvalidBaseFee    = errors.New("invalid base fee")
)

type Config struct {
	// Network is the lower case network name (testnet, local, mainnet or a
	// custom name).
	Network    string `yaml:"network"`
	Passphrase string `yaml:"passphrase"`
	Endpoint   string `yaml:"endpoint"`
	// Faucet defaults to the network's friendbot endpoint.
	Faucet string `yaml:"faucet"`

	// BaseFee is charged per operation, in stroops.
	BaseFee        uint32        `yaml:"baseFee"`
	TxTimeout      time.Duration `yaml:"txTimeout"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`

	LogLevel string       `yaml:"logLevel"`
	LogFile  string       `yaml:"logFile"`
	Trace    trace.Config `yaml:"trace"`
}

// Default returns the configuration of a locally running network.
func Default() *Config {
	return &Config{
		Network:        consts.LocalName,
		Passphrase:     consts.LocalPassphrase,
		Endpoint:       DefaultLocalEndpoint,
		BaseFee:        consts.BaseFee,
		TxTimeout:      consts.TxTimeout,
		RequestTimeout: consts.RequestTimeout,
		LogLevel:       logging.Info.LowerString(),
		Trace:          trace.Config{AppName: "ledger"},
	}
}

// Load reads the YAML file at [path] (if any), applies LEDGER_* environment
// overrides and normalizes the result.
func Load(path string) (*Config, error) {
	c := &Config{}
	if len(path) > 0 {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("%w: unable to parse %s", err, path)
		}
	} else {
		c = Default()
	}
	c.applyEnv()
	if err := c.Normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() {
	for env, field := range map[string]*string{
		EnvNetwork:    &c.Network,
		EnvPassphrase: &c.Passphrase,
		EnvEndpoint:   &c.Endpoint,
		EnvFaucet:     &c.Faucet,
	} {
		if v, ok := os.LookupEnv(env); ok {
			*field = v
		}
	}
}

// Normalize lower cases the network name, fills defaults for the well
// known networks and validates the result.
func (c *Config) Normalize() error {
	c.Network = NormalizeNetwork(c.Network)
	if len(c.Network) == 0 {
		c.Network = consts.LocalName
	}
	if len(c.Passphrase) == 0 {
		c.Passphrase = KnownPassphrase(c.Network)
	}
	if len(c.Endpoint) == 0 && c.Network == consts.LocalName {
		c.Endpoint = DefaultLocalEndpoint
	}
	if c.BaseFee == 0 {
		c.BaseFee = consts.BaseFee
	}
	if c.TxTimeout == 0 {
		c.TxTimeout = consts.TxTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = consts.RequestTimeout
	}
	if len(c.LogLevel) == 0 {
		c.LogLevel = logging.Info.LowerString()
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	switch {
	case len(c.Passphrase) == 0:
		return fmt.Errorf("%w for network %q", ErrMissingPassphrase, c.Network)
	case len(c.Endpoint) == 0:
		return fmt.Errorf("%w for network %q", ErrMissingEndpoint, c.Network)
	case c.TxTimeout <= 0 || c.RequestTimeout <= 0:
		return ErrInvalidTimeout
	case c.BaseFee == 0:
		return ErrInvalidBaseFee
	}
	_, err := logging.ToLevel(c.LogLevel)
	return err
}

func (c *Config) GetLogLevel() logging.Level {
	l, err := logging.ToLevel(c.LogLevel)
	if err != nil {
		return logging.Info
	}
	return l
}

func (c *Config) GetTraceConfig() *trace.Config {
	return &c.Trace
}

// NetworkID is the domain separator mixed into every signature.
func (c *Config) NetworkID() ids.ID {
	return chain.NetworkID(c.Passphrase)
}

// FaucetAllowed reports whether the network hands out test funds.
func (c *Config) FaucetAllowed() bool {
	return FaucetNetwork(c.Network)
}

func NormalizeNetwork(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FaucetNetwork reports whether [name] is a network with a faucet. Names
// are compared case-insensitively.
func FaucetNetwork(name string) bool {
	switch NormalizeNetwork(name) {
	case consts.TestnetName, consts.LocalName:
		return true
	default:
		return false
	}
}

// KnownPassphrase returns the passphrase of a well known network or the
// empty string.
func KnownPassphrase(name string) string {
	switch NormalizeNetwork(name) {
	case consts.TestnetName:
		return consts.TestnetPassphrase
	case consts.LocalName:
		return consts.LocalPassphrase
	case consts.MainnetName:
		return consts.MainnetPassphrase
	default:
		return ""
	}
}
