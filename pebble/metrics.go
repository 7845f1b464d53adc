// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsInterval = 10 * time.Second

	// DefaultNamespace prefixes every metric unless [Config.Namespace] is set.
	DefaultNamespace = "pebble"
)

type metrics struct {
	readLatency  metric.Averager
	writeLatency metric.Averager
	stallStart   time.Time
	writeStall   metric.Averager

	batches     prometheus.Counter
	iterations  prometheus.Counter
	compactions *prometheus.CounterVec

	diskUsage      prometheus.Gauge
	tombstoneCount prometheus.Gauge
}

func newMetrics(namespace string) (*prometheus.Registry, *metrics, error) {
	if len(namespace) == 0 {
		namespace = DefaultNamespace
	}
	r := prometheus.NewRegistry()
	m := &metrics{
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_writes",
			Help:      "number of batches committed",
		}),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prefix_iterations",
			Help:      "number of prefix scans",
		}),
		compactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compactions",
			Help:      "number of compactions started by input level",
		}, []string{"level"}),
		diskUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "disk_usage",
			Help:      "bytes used by the store on disk",
		}),
		tombstoneCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tombstone_count",
			Help:      "approximate count of internal tombstones",
		}),
	}

	errs := wrappers.Errs{}
	m.readLatency = metric.NewAveragerWithErrs("", namespace+"_read_latency", "time spent in point reads", r, &errs)
	m.writeLatency = metric.NewAveragerWithErrs("", namespace+"_write_latency", "time spent in puts, deletes and batch commits", r, &errs)
	m.writeStall = metric.NewAveragerWithErrs("", namespace+"_write_stall", "time spent waiting for disk writes", r, &errs)
	errs.Add(
		r.Register(m.batches),
		r.Register(m.iterations),
		r.Register(m.compactions),
		r.Register(m.diskUsage),
		r.Register(m.tombstoneCount),
	)
	return r, m, errs.Err
}

func (m *metrics) observeWrite(start time.Time) {
	m.writeLatency.Observe(float64(time.Since(start)))
}

func (db *Database) onCompactionBegin(info pebble.CompactionInfo) {
	level := "other"
	if len(info.Input) > 0 && info.Input[0].Level == 0 {
		level = "l0"
	}
	db.metrics.compactions.WithLabelValues(level).Inc()
}

func (db *Database) onWriteStallBegin(pebble.WriteStallBeginInfo) {
	db.metrics.stallStart = time.Now()
}

func (db *Database) onWriteStallEnd() {
	db.metrics.writeStall.Observe(float64(time.Since(db.metrics.stallStart)))
}

func (db *Database) refreshMetrics() {
	stats := db.db.Metrics()
	db.metrics.diskUsage.Set(float64(stats.DiskSpaceUsage()))
	db.metrics.tombstoneCount.Set(float64(stats.Keys.TombstoneCount))
}

func (db *Database) collectMetrics() {
	t := time.NewTicker(metricsInterval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			db.refreshMetrics()
		case <-db.closing:
			return
		}
	}
}
