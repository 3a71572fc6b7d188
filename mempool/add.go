// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"github.com/pkt-cash/memindex/btcutil/er"
	"github.com/pkt-cash/memindex/chainhash"
	"github.com/pkt-cash/memindex/txscript"
	"github.com/pkt-cash/memindex/wire"
)

// Add ingests a batch of transactions and returns the count successfully
// indexed.  It is must-consume: callers must compare len(txs) to the
// returned count and treat the difference as skipped (parents missing).
//
// Add is a three-phase operation: admission to the store, batched prevout
// resolution, then per-transaction indexing, exactly in that order, so that
// a transaction arriving in the same batch as its parent can still resolve.
func (m *Mempool) Add(txs []*wire.Transaction) (int, er.R) {
	defer m.timeTrack("add")()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Phase A: admission to store.
	newIds := make([]chainhash.Hash, 0, len(txs))
	newTxByID := make(map[chainhash.Hash]*wire.Transaction, len(txs))
	for _, tx := range txs {
		txid := tx.Txid()
		if _, exists := m.txstore[txid]; exists {
			continue
		}
		m.txstore[txid] = tx
		newIds = append(newIds, txid)
		newTxByID[txid] = tx
	}
	if len(newIds) == 0 {
		return 0, nil
	}
	m.resortIds()

	// Phase B: batched prevout gathering.
	batch := make([]*wire.Transaction, 0, len(newIds))
	for _, id := range newIds {
		batch = append(batch, newTxByID[id])
	}
	prevouts, err := m.getPrevouts(batch)
	if err != nil {
		return 0, err
	}

	// Phase C: per-transaction indexing, in admission order.
	countIndexed := 0
	for _, txid := range newIds {
		tx := newTxByID[txid]

		resolved := make([]*wire.TxOut, len(tx.TxIn))
		ok := true
		for i, in := range tx.TxIn {
			if !in.HasPrevout() {
				continue
			}
			txo, found := prevouts[in.PreviousOutPoint]
			if !found {
				log.Warnf("skipping tx %s: missing prevout %s", txid, in.PreviousOutPoint)
				ok = false
				break
			}
			resolved[i] = txo
		}
		if !ok {
			continue
		}

		feeInfo := computeTxFeeInfo(tx, resolved)
		m.feeinfo[txid] = feeInfo

		overview := TxOverview{
			Txid:  txid,
			Fee:   feeInfo.Fee,
			Vsize: feeInfo.Vsize,
		}
		if !m.cfg.HasExtendedOutputs {
			overview.InputValueSum = inputValueSum(resolved)
			overview.HasInputValueSum = true
		}
		m.pushRecent(overview)

		// Funding pairs are appended before spending pairs so that, when
		// both hash to the same bucket, funding entries for this
		// transaction precede its spending entries.
		for vout, out := range tx.TxOut {
			if !m.cfg.IndexUnspendables && !txscript.IsSpendable(out.PkScript) {
				continue
			}
			sh := txscript.ScriptHash(out.PkScript)
			m.appendHistory(sh, TxHistoryInfo{Funding: &FundingInfo{
				Txid:  txid,
				Vout:  uint32(vout),
				Value: uint64(out.Value),
			}})
		}
		for i, in := range tx.TxIn {
			if !in.HasPrevout() {
				continue
			}
			prevout := resolved[i]
			sh := txscript.ScriptHash(prevout.PkScript)
			m.appendHistory(sh, TxHistoryInfo{Spending: &SpendingInfo{
				Txid:     txid,
				Vin:      uint32(i),
				PrevTxid: in.PreviousOutPoint.Hash,
				PrevVout: in.PreviousOutPoint.Index,
				Value:    uint64(prevout.Value),
			}})
			m.edges[in.PreviousOutPoint] = edgeValue{Txid: txid, Vin: uint32(i)}
		}

		countIndexed++
	}

	m.metrics.ObserveDelta("add", countIndexed)
	return countIndexed, nil
}

// AddByTxid is the out-of-band single-transaction insertion path: it is a
// no-op if txid is already tracked, and otherwise fetches and indexes the
// one transaction, surfacing ErrMissingParents if it could not be indexed.
func (m *Mempool) AddByTxid(daemon Daemon, txid chainhash.Hash) er.R {
	if m.HasTx(txid) {
		return nil
	}
	tx, err := daemon.GetMempoolTx(txid)
	if err != nil {
		return err
	}
	n, err := m.Add([]*wire.Transaction{tx})
	if err != nil {
		return err
	}
	if n == 0 {
		return missingParents(txid)
	}
	return nil
}

func computeTxFeeInfo(tx *wire.Transaction, resolved []*wire.TxOut) TxFeeInfo {
	var inputSum, outputSum uint64
	for _, txo := range resolved {
		if txo != nil {
			inputSum += uint64(txo.Value)
		}
	}
	for _, out := range tx.TxOut {
		outputSum += uint64(out.Value)
	}
	fee := inputSum - outputSum
	vsize := uint32(tx.VSize())
	var feePerVbyte float32
	if vsize > 0 {
		feePerVbyte = float32(fee) / float32(vsize)
	}
	return TxFeeInfo{Fee: fee, Vsize: vsize, FeePerVbyte: feePerVbyte}
}

func inputValueSum(resolved []*wire.TxOut) uint64 {
	var sum uint64
	for _, txo := range resolved {
		if txo != nil {
			sum += uint64(txo.Value)
		}
	}
	return sum
}

// appendHistory appends a history entry to the bucket keyed by sh, creating
// the bucket if it doesn't yet exist.  Callers must hold mu for writing.
func (m *Mempool) appendHistory(sh [32]byte, entry TxHistoryInfo) {
	m.history[sh] = append(m.history[sh], entry)
}

// pushRecent pushes an overview to the front of the recent buffer, evicting
// from the back if the configured capacity is exceeded.  Callers must hold
// mu for writing.
func (m *Mempool) pushRecent(overview TxOverview) {
	capacity := m.cfg.RecentTxsSize
	if capacity <= 0 {
		return
	}
	m.recent = append([]TxOverview{overview}, m.recent...)
	if len(m.recent) > capacity {
		m.recent = m.recent[:capacity]
	}
}
