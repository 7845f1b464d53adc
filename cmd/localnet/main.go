// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "localnet" runs a single node ledger network for development and tests.
package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akamensky/argparse"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/consts"
	"github.com/rentacar/ledgersdk/localnet"
	"github.com/rentacar/ledgersdk/pebble"
	"github.com/rentacar/ledgersdk/rpc"
	"github.com/rentacar/ledgersdk/server"
	"github.com/rentacar/ledgersdk/utils"

	ilogging "github.com/rentacar/ledgersdk/internal/logging"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(os.Args); err != nil {
		utils.Outf("{{red}}localnet failed:{{/}} %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	parser := argparse.NewParser("localnet", "Runs a single node ledger network")
	listen := parser.String("l", "listen", &argparse.Options{Default: "127.0.0.1:8000", Help: "address to serve the API on"})
	dataDir := parser.String("d", "data-dir", &argparse.Options{Help: "pebble directory; state is kept in memory if empty"})
	passphrase := parser.String("p", "passphrase", &argparse.Options{Default: consts.LocalPassphrase, Help: "network passphrase"})
	friendbot := parser.String("", "friendbot-amount", &argparse.Options{Default: "10000", Help: "native units credited by the faucet"})
	logLevel := parser.String("", "log-level", &argparse.Options{Default: "info", Help: "log level"})
	logFile := parser.String("", "log-file", &argparse.Options{Help: "JSON log file"})
	if err := parser.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		return err
	}

	level, err := logging.ToLevel(*logLevel)
	if err != nil {
		return err
	}
	log := ilogging.New("localnet", ilogging.Config{Level: level, File: *logFile})

	amount, err := chain.ParseAmount(*friendbot)
	if err != nil {
		return fmt.Errorf("friendbot amount: %w", err)
	}

	dbConfig := pebble.NewDefaultConfig()
	dbConfig.Namespace = "localnet_state"
	if len(*dataDir) == 0 {
		dbConfig.InMemory = true
		dbConfig.Sync = false
	}
	db, registry, err := pebble.New(*dataDir, dbConfig)
	if err != nil {
		return err
	}
	defer db.Close()

	cfg := localnet.NewDefaultConfig()
	cfg.Passphrase = *passphrase
	cfg.FriendbotAmount = amount
	network, err := localnet.New(log, db, cfg)
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", *listen)
	if err != nil {
		return err
	}
	srv := server.New(log, listener, server.NewDefaultHTTPConfig(), []string{"*"}, shutdownTimeout)
	srv.AddRoute(server.NewMetricsHandler(registry, prometheus.DefaultGatherer), "/metrics")
	srv.AddRoute(rpc.NewHandler(network, log), "/")

	errs := make(chan error, 1)
	go func() {
		errs <- srv.Dispatch()
	}()
	log.Info("localnet started",
		zap.String("listen", listener.Addr().String()),
		zap.String("passphrase", cfg.Passphrase),
		zap.Bool("persistent", len(*dataDir) > 0),
	)
	utils.Outf("{{green}}localnet listening on{{/}} http://%s\n", listener.Addr())

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-signals:
		log.Info("shutting down", zap.Stringer("signal", sig))
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}
	return srv.Shutdown()
}
