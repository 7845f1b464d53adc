// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

const batchSize = 1_500_000

func randBytes() []byte {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

func BenchmarkBatchInsertion(b *testing.B) {
	for _, sync := range []bool{false, true} {
		b.Run(fmt.Sprintf("sync=%t", sync), func(b *testing.B) {
			// Setup DB
			b.StopTimer()
			tdir := b.TempDir()
			cfg := NewDefaultConfig()
			cfg.Sync = sync
			db, _, err := New(tdir, cfg)
			if err != nil {
				b.Fatal(err)
			}

			// Setup keys
			keys := make([][]byte, batchSize)
			for i := 0; i < batchSize; i++ {
				keys[i] = randBytes()
			}

			b.StartTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				batch := db.NewBatch()
				for j := 0; j < batchSize; j++ {
					if err := batch.Put(keys[j], randBytes()); err != nil {
						b.Fatal(err)
					}
				}
				if err := batch.Write(); err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()

			if err := db.Close(); err != nil {
				b.Fatal(err)
			}
			if err := os.RemoveAll(tdir); err != nil {
				b.Fatal(err)
			}
		})
	}
}

func TestDatabase(t *testing.T) {
	require := require.New(t)
	db, err := NewInMemory()
	require.NoError(err)

	_, err = db.Get([]byte("missing"))
	require.ErrorIs(err, ErrNotFound)
	has, err := db.Has([]byte("missing"))
	require.NoError(err)
	require.False(has)

	require.NoError(db.Put([]byte("k"), []byte("v")))
	v, err := db.Get([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)

	batch := db.NewBatch()
	require.NoError(batch.Put([]byte("a"), []byte("1")))
	require.NoError(batch.Delete([]byte("k")))
	_, err = db.Get([]byte("a"))
	require.ErrorIs(err, ErrNotFound)
	require.NoError(batch.Write())

	v, err = db.Get([]byte("a"))
	require.NoError(err)
	require.Equal([]byte("1"), v)
	has, err = db.Has([]byte("k"))
	require.NoError(err)
	require.False(has)

	require.NoError(db.Close())
}

func TestDatabaseReopen(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	db, _, err := New(dir, NewDefaultConfig())
	require.NoError(err)
	require.NoError(db.Put([]byte("k"), []byte("v")))
	require.NoError(db.Close())

	db, _, err = New(dir, NewDefaultConfig())
	require.NoError(err)
	v, err := db.Get([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)
	require.NoError(db.Close())
}

func TestIterate(t *testing.T) {
	require := require.New(t)
	db, err := NewInMemory()
	require.NoError(err)
	defer db.Close()

	for _, k := range [][]byte{{0x0, 0x1}, {0x1, 0x2}, {0x1, 0x1}, {0x1, 0xff}, {0x2}} {
		require.NoError(db.Put(k, k))
	}
	var keys [][]byte
	require.NoError(db.Iterate([]byte{0x1}, func(k, v []byte) error {
		require.Equal(k, v)
		keys = append(keys, append([]byte(nil), k...))
		return nil
	}))
	require.Equal([][]byte{{0x1, 0x1}, {0x1, 0x2}, {0x1, 0xff}}, keys)

	errStop := errors.New("stop")
	require.ErrorIs(db.Iterate(nil, func([]byte, []byte) error { return errStop }), errStop)

	require.Equal([]byte{0x2}, prefixUpperBound([]byte{0x1, 0xff}))
	require.Nil(prefixUpperBound([]byte{0xff}))
}

func TestMetrics(t *testing.T) {
	require := require.New(t)
	cfg := NewDefaultConfig()
	cfg.InMemory = true
	cfg.Sync = false
	cfg.Namespace = "localnet_state"
	db, registry, err := New("", cfg)
	require.NoError(err)
	defer db.Close()

	require.NoError(db.Put([]byte{1, 1}, []byte("a")))
	batch := db.NewBatch()
	require.NoError(batch.Put([]byte{1, 2}, []byte("b")))
	require.NoError(batch.Write())
	_, err = db.Get([]byte{1, 1})
	require.NoError(err)
	require.NoError(db.Iterate([]byte{1}, func([]byte, []byte) error { return nil }))
	db.refreshMetrics()

	require.Equal(1.0, testutil.ToFloat64(db.metrics.batches))
	require.Equal(1.0, testutil.ToFloat64(db.metrics.iterations))

	families, err := registry.Gather()
	require.NoError(err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, name := range []string{
		"localnet_state_batch_writes",
		"localnet_state_prefix_iterations",
		"localnet_state_disk_usage",
		"localnet_state_read_latency_count",
		"localnet_state_write_latency_count",
	} {
		require.True(names[name], name)
	}
}
