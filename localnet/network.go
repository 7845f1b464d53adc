// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package localnet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/rentacar/ledgersdk/actions"
	"github.com/rentacar/ledgersdk/chain"
	"github.com/rentacar/ledgersdk/codec"
	"github.com/rentacar/ledgersdk/consts"
	"github.com/rentacar/ledgersdk/pebble"
	"github.com/rentacar/ledgersdk/rpc"
)

var _ rpc.Backend = (*Network)(nil)

// DefaultFriendbotAmount is what the faucet credits a new account.
var DefaultFriendbotAmount = chain.MustParseAmount("10000")

type Config struct {
	Passphrase      string
	BaseFee         uint32
	FriendbotAmount chain.Amount
	// Clock defaults to the wall clock.
	Clock func() time.Time
}

func NewDefaultConfig() Config {
	return Config{
		Passphrase:      consts.LocalPassphrase,
		BaseFee:         consts.BaseFee,
		FriendbotAmount: DefaultFriendbotAmount,
		Clock:           time.Now,
	}
}

// Network is a single node ledger. Submissions are applied one at a time
// in arrival order; each committed envelope closes a ledger.
type Network struct {
	cfg       Config
	networkID ids.ID
	parser    *chain.OperationParser
	store     *Store
	log       logging.Logger

	l      sync.Mutex
	ledger atomic.Uint64
}

func New(log logging.Logger, db *pebble.Database, cfg Config) (*Network, error) {
	if len(cfg.Passphrase) == 0 {
		return nil, ErrMissingPassphrase
	}
	if cfg.BaseFee == 0 {
		cfg.BaseFee = consts.BaseFee
	}
	if cfg.FriendbotAmount <= 0 {
		cfg.FriendbotAmount = DefaultFriendbotAmount
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	store := NewStore(db)
	seq, err := store.LedgerSeq()
	if err != nil {
		return nil, err
	}
	n := &Network{
		cfg:       cfg,
		networkID: chain.NetworkID(cfg.Passphrase),
		parser:    actions.Registry(),
		store:     store,
		log:       log,
	}
	n.ledger.Store(seq)
	return n, nil
}

func (n *Network) Root(context.Context) (*rpc.RootReply, error) {
	return &rpc.RootReply{
		NetworkPassphrase:   n.cfg.Passphrase,
		HistoryLatestLedger: n.ledger.Load(),
	}, nil
}

func (n *Network) Account(_ context.Context, addr codec.Address) (*rpc.AccountReply, error) {
	n.l.Lock()
	r, err := n.store.Account(addr)
	n.l.Unlock()
	if err != nil {
		return nil, err
	}
	reply := &rpc.AccountReply{
		ID:        addr.String(),
		AccountID: addr.String(),
		Sequence:  strconv.FormatUint(r.Sequence, 10),
		Balances:  make([]rpc.BalanceReply, 0, len(r.Lines)+1),
	}
	for _, line := range r.Lines {
		asset := line.Asset()
		reply.Balances = append(reply.Balances, rpc.BalanceReply{
			Balance:     chain.Amount(line.Balance).String(),
			Limit:       chain.Amount(line.Limit).String(),
			AssetType:   asset.Type().String(),
			AssetCode:   asset.Code,
			AssetIssuer: asset.Issuer.String(),
		})
	}
	reply.Balances = append(reply.Balances, rpc.BalanceReply{
		Balance:   chain.Amount(r.Native).String(),
		AssetType: chain.AssetNative.String(),
	})
	return reply, nil
}

// CreateAccount opens [addr] with [balance] native units, outside of any
// envelope.
func (n *Network) CreateAccount(addr codec.Address, balance chain.Amount) error {
	n.l.Lock()
	defer n.l.Unlock()

	_, err := n.createAccount(addr, balance)
	return err
}

func (n *Network) createAccount(addr codec.Address, balance chain.Amount) (uint64, error) {
	_, err := n.store.Account(addr)
	switch {
	case err == nil:
		return 0, fmt.Errorf("%w: %s", ErrAccountExists, addr)
	case !errors.Is(err, rpc.ErrNotFound):
		return 0, err
	}
	ledger := n.ledger.Load() + 1
	record := &AccountRecord{
		Sequence: ledger << 32,
		Native:   int64(balance),
	}
	if err := n.store.Commit(ledger, map[codec.Address]*AccountRecord{addr: record}); err != nil {
		return 0, err
	}
	n.ledger.Store(ledger)
	n.log.Info("account created",
		zap.Stringer("address", addr),
		zap.Stringer("balance", balance),
		zap.Uint64("ledger", ledger),
	)
	return ledger, nil
}

// Fund creates [addr] with the friendbot amount.
func (n *Network) Fund(_ context.Context, addr codec.Address) (*rpc.SubmitReply, error) {
	n.l.Lock()
	defer n.l.Unlock()

	ledger, err := n.createAccount(addr, n.cfg.FriendbotAmount)
	if errors.Is(err, ErrAccountExists) {
		return nil, &rpc.Problem{
			Type:   "bad_request",
			Title:  "Bad Request",
			Status: http.StatusBadRequest,
			Detail: err.Error(),
		}
	}
	if err != nil {
		return nil, err
	}
	id := hashing.ComputeHash256(append(addr[:], strconv.FormatUint(ledger, 10)...))
	return &rpc.SubmitReply{
		Hash:       codec.ToHex(id),
		Ledger:     ledger,
		Successful: true,
		FeeCharged: "0",
	}, nil
}

// Submit decodes and applies one envelope.
func (n *Network) Submit(_ context.Context, envelope string) (*rpc.SubmitReply, error) {
	tx, err := chain.ParseBase64(envelope, n.parser)
	if err != nil {
		return nil, &rpc.Problem{
			Type:   "transaction_malformed",
			Title:  "Transaction Malformed",
			Status: http.StatusBadRequest,
			Detail: err.Error(),
			Extras: &rpc.ProblemExtras{EnvelopeXDR: envelope},
		}
	}
	id, err := tx.Hash(n.networkID)
	if err != nil {
		return nil, err
	}
	hash := codec.ToHex(id[:])

	n.l.Lock()
	defer n.l.Unlock()

	r := n.apply(tx)
	if r.err != nil {
		return nil, r.err
	}
	if len(r.txCode) > 0 {
		n.log.Debug("transaction failed",
			zap.String("hash", hash),
			zap.String("txCode", r.txCode),
			zap.Strings("opCodes", r.opCodes),
		)
		return nil, &rpc.Problem{
			Type:   "transaction_failed",
			Title:  "Transaction Failed",
			Status: http.StatusBadRequest,
			Detail: "The transaction failed when submitted to the ledger network.",
			Extras: &rpc.ProblemExtras{
				EnvelopeXDR: envelope,
				ResultCodes: &rpc.ResultCodes{Transaction: r.txCode, Operations: r.opCodes},
			},
		}
	}

	ledger := n.ledger.Load() + 1
	if err := n.store.Commit(ledger, r.accounts); err != nil {
		return nil, err
	}
	n.ledger.Store(ledger)
	n.log.Info("transaction committed",
		zap.String("hash", hash),
		zap.Stringer("source", tx.Base.Source),
		zap.Uint64("ledger", ledger),
	)
	return &rpc.SubmitReply{
		Hash:        hash,
		Ledger:      ledger,
		Successful:  true,
		FeeCharged:  strconv.FormatInt(int64(r.fee), 10),
		EnvelopeXDR: envelope,
	}, nil
}
