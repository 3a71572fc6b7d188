// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"time"

	"github.com/pkt-cash/memindex/btcutil/er"
	"github.com/pkt-cash/memindex/chainhash"
	"github.com/pkt-cash/memindex/wire"
)

// Daemon is the external node RPC collaborator the Synchronizer drives.  It
// is intentionally narrow: the mempool core never reaches further into the
// node than these three calls.
type Daemon interface {
	// ListMempoolTxids returns the node's current mempool set.
	ListMempoolTxids() ([]chainhash.Hash, er.R)
	// GetTransactions fetches as many of the requested transactions as
	// the daemon can still serve; a shorter result than requested is not
	// an error, it reflects a race between listing and fetching.
	GetTransactions(ids []chainhash.Hash) ([]*wire.Transaction, er.R)
	// GetMempoolTx fetches a single transaction, failing if it is no
	// longer available.
	GetMempoolTx(id chainhash.Hash) (*wire.Transaction, er.R)
}

// ChainQuery is the external confirmed-chain collaborator used to resolve
// prevouts that are not themselves in the mempool.  It never calls back
// into the Mempool: the dependency is one-way.
type ChainQuery interface {
	LookupAvailableTxos(ops []wire.OutPoint) (map[wire.OutPoint]*wire.TxOut, er.R)
}

// Metrics is the narrow observability surface the Mempool core writes to.
// The concrete implementation (backed by prometheus) lives in the metrics
// package; the core depends only on this interface so it can be tested with
// a no-op fake.
type Metrics interface {
	ObserveLatency(part string, d time.Duration)
	ObserveDelta(kind string, n int)
	SetCount(kind string, v float64)
}

// NoopMetrics discards every observation; used by tests and by callers that
// don't want metrics wired up.
type NoopMetrics struct{}

func (NoopMetrics) ObserveLatency(string, time.Duration) {}
func (NoopMetrics) ObserveDelta(string, int)             {}
func (NoopMetrics) SetCount(string, float64)             {}
