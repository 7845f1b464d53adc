// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rentacar/ledgersdk/cli"
	"github.com/rentacar/ledgersdk/config"
	"github.com/rentacar/ledgersdk/ledger"
	"github.com/rentacar/ledgersdk/pebble"
	"github.com/rentacar/ledgersdk/rpc"

	ilogging "github.com/rentacar/ledgersdk/internal/logging"
	ltrace "github.com/rentacar/ledgersdk/trace"
)

const databaseFolder = ".ledger-cli"

var (
	handler *cli.Handler

	configFile string
	dataDir    string
	network    string
	endpoint   string
	logLevel   string
	verbose    bool

	db     *pebble.Database
	tracer trace.Tracer

	rootCmd = &cobra.Command{
		Use:               "ledger-cli",
		Short:             "Ledger network CLI",
		SuggestFor:        []string{"ledger-cli", "ledgercli"},
		PersistentPreRunE: setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.DisableAutoGenTag = true

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.StringVar(&dataDir, "data-dir", filepath.Join(home, databaseFolder), "key store directory")
	flags.StringVar(&network, "network", "", "network name (testnet, local, mainnet)")
	flags.StringVar(&endpoint, "endpoint", "", "network endpoint URL")
	flags.StringVar(&logLevel, "log-level", "", "log level")
	flags.BoolVar(&verbose, "verbose", false, "log to the console")

	rootCmd.AddCommand(
		keyCmd,
		balanceCmd,
		fundCmd,
		payCmd,
		trustCmd,
		issueCmd,
		listingCmd,
	)
	keyCmd.AddCommand(
		genKeyCmd,
		importKeyCmd,
		setKeyCmd,
		showKeyCmd,
	)

	cobra.OnFinalize(func() {
		if tracer != nil {
			_ = tracer.Close()
		}
		if db != nil {
			_ = db.Close()
		}
	})
}

func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if len(network) > 0 {
		cfg.Network = network
		cfg.Passphrase = config.KnownPassphrase(network)
		if len(endpoint) == 0 {
			cfg.Endpoint = ""
		}
	}
	if len(endpoint) > 0 {
		cfg.Endpoint = endpoint
	}
	if len(logLevel) > 0 {
		cfg.LogLevel = logLevel
	}
	return cfg, cfg.Normalize()
}

func setup(*cobra.Command, []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := ilogging.New("ledger-cli", ilogging.Config{
		Level: cfg.GetLogLevel(),
		File:  cfg.LogFile,
		Quiet: !verbose,
	})
	tracer, err = ltrace.New(cfg.GetTraceConfig())
	if err != nil {
		return err
	}
	metrics, err := ledger.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return err
	}
	db, _, err = pebble.New(dataDir, pebble.NewDefaultConfig())
	if err != nil {
		return err
	}
	handler = cli.New(db, &ledger.Env{
		Config:    cfg,
		Transport: rpc.NewClient(cfg.Endpoint, cfg.Faucet),
		Log:       log,
		Tracer:    tracer,
		Metrics:   metrics,
	})
	log.Debug("ledger-cli initialized",
		zap.String("network", cfg.Network),
		zap.String("endpoint", cfg.Endpoint),
	)
	return nil
}
