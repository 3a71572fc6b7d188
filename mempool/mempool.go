// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mempool implements the core unconfirmed-transaction index: an
// authoritative transaction store, a script-keyed history index, a
// spend-edge index, fee and recent-transaction tracking, a cached backlog
// summary, and the diff-driven synchronizer that keeps all of it up to date
// against a node's mempool.
package mempool

import (
	"bytes"
	"sort"
	"sync"
	"time"

	"github.com/pkt-cash/memindex/chainhash"
	"github.com/pkt-cash/memindex/wire"
)

type edgeValue struct {
	Txid chainhash.Hash
	Vin  uint32
}

// Mempool is the full aggregate described by the core specification: every
// field below is owned exclusively by it and is only ever touched while
// holding mu.
type Mempool struct {
	mu sync.RWMutex

	cfg        Config
	chainQuery ChainQuery
	metrics    Metrics

	txstore   map[chainhash.Hash]*wire.Transaction
	sortedIds []chainhash.Hash // ascending, byte-lexicographic

	feeinfo map[chainhash.Hash]TxFeeInfo
	history map[[32]byte][]TxHistoryInfo
	edges   map[wire.OutPoint]edgeValue

	recent []TxOverview // index 0 is newest

	backlogStats    BacklogStats
	backlogAt       time.Time
	backlogComputed bool
}

// New creates an empty Mempool ready to be driven by a Synchronizer.
func New(cfg Config, chainQuery ChainQuery, metrics Metrics) *Mempool {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &Mempool{
		cfg:        cfg,
		chainQuery: chainQuery,
		metrics:    metrics,
		txstore:    make(map[chainhash.Hash]*wire.Transaction),
		feeinfo:    make(map[chainhash.Hash]TxFeeInfo),
		history:    make(map[[32]byte][]TxHistoryInfo),
		edges:      make(map[wire.OutPoint]edgeValue),
	}
}

func hashLess(a, b chainhash.Hash) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

// timeTrack observes an operation's wall-clock latency under the
// mempool_latency{part} contract.
func (m *Mempool) timeTrack(part string) func() {
	start := time.Now()
	return func() {
		m.metrics.ObserveLatency(part, time.Since(start))
	}
}

// resortIds rebuilds the ascending key slice from the current txstore.  It
// is called after any batch of insertions and after any batch of removals
// (see remove.go).
func (m *Mempool) resortIds() {
	ids := make([]chainhash.Hash, 0, len(m.txstore))
	for id := range m.txstore {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return hashLess(ids[i], ids[j]) })
	m.sortedIds = ids
}
