// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"time"

	"github.com/pkt-cash/memindex/chaincfg"
	"github.com/pkt-cash/memindex/chainhash"
)

// Config holds the knobs the Mempool core reads.  It intentionally omits
// anything owned by the process (RPC dial parameters, listen addresses):
// those live in the config package and are resolved into a Daemon/ChainQuery
// pair before the Mempool is constructed.
type Config struct {
	NetworkType chaincfg.Network
	// HasExtendedOutputs mirrors chaincfg.Params.HasExtendedOutputs for
	// the active network: when true, per-output opaque data makes a
	// simple input-value summation non-meaningful, so TxOverview omits
	// it.
	HasExtendedOutputs bool
	RecentTxsSize      int
	BacklogStatsTTL    time.Duration
	IndexUnspendables  bool
}

// FundingInfo records that a transaction created a spendable (or
// unconditionally indexed) output.
type FundingInfo struct {
	Txid  chainhash.Hash
	Vout  uint32
	Value uint64
}

func (f FundingInfo) GetTxid() chainhash.Hash { return f.Txid }

// SpendingInfo records that a transaction consumed a previously funded
// output.
type SpendingInfo struct {
	Txid     chainhash.Hash
	Vin      uint32
	PrevTxid chainhash.Hash
	PrevVout uint32
	Value    uint64
}

func (s SpendingInfo) GetTxid() chainhash.Hash { return s.Txid }

// TxHistoryInfo is the tagged union stored in each script-history bucket:
// either a FundingInfo or a SpendingInfo.  Exactly one of Funding/Spending is
// non-nil.
type TxHistoryInfo struct {
	Funding *FundingInfo
	Spending *SpendingInfo
}

// GetTxid returns the txid of whichever variant is populated.
func (h TxHistoryInfo) GetTxid() chainhash.Hash {
	if h.Funding != nil {
		return h.Funding.Txid
	}
	return h.Spending.Txid
}

// IsFunding reports whether this entry is the funding variant.
func (h TxHistoryInfo) IsFunding() bool {
	return h.Funding != nil
}

// TxFeeInfo is the per-transaction fee/size record derived once at
// ingestion time from the transaction and its resolved prevouts.
type TxFeeInfo struct {
	Fee         uint64
	Vsize       uint32
	FeePerVbyte float32
}

// TxOverview is the compact record kept in the recent-transactions buffer.
// InputValueSum mirrors the original source's per-output-value summation;
// on a chain variant whose outputs carry opaque extra data making a simple
// value sum non-meaningful, callers should treat a zero InputValueSum with
// HasInputValueSum=false as "omitted", not "zero".
type TxOverview struct {
	Txid             chainhash.Hash
	Fee              uint64
	Vsize            uint32
	InputValueSum    uint64
	HasInputValueSum bool
}

// Utxo is a spendable, still-unconfirmed output as reported by the query
// surface.  ExtraData is the opaque per-output payload for chain variants
// that carry one; it is simply empty otherwise.
type Utxo struct {
	Txid      chainhash.Hash
	Vout      uint32
	Value     uint64
	ExtraData []byte
}

// ScriptStats is the single-pass aggregate returned by Stats.
type ScriptStats struct {
	TxCount       uint64
	FundedTxoCount uint64
	SpentTxoCount  uint64
	FundedTxoSum   uint64
	SpentTxoSum    uint64
}

// FeeHistogramBin is one entry of the descending fee-rate histogram: the
// opening fee rate of the bin, and the total vsize accumulated in it.
type FeeHistogramBin struct {
	FeePerVbyte float32
	Vsize       uint32
}

// BacklogStats is the cached, TTL-refreshed aggregate view over all
// currently-indexed fee info.
type BacklogStats struct {
	Count        uint32
	Vsize        uint32
	TotalFee     uint64
	FeeHistogram []FeeHistogramBin
}

// defaultBacklogStats is the singleton default used when feeinfo is empty.
func defaultBacklogStats() BacklogStats {
	return BacklogStats{
		FeeHistogram: []FeeHistogramBin{{FeePerVbyte: 0, Vsize: 0}},
	}
}
