// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"sort"

	"github.com/pkt-cash/memindex/chainhash"
	"github.com/pkt-cash/memindex/wire"
)

// History enumerates the script's history entries in stored order,
// deduplicated by txid (first occurrence wins), optionally skipping
// everything up to and including the first occurrence of lastSeenTxid, then
// takes up to limit entries and resolves each to its stored transaction.
//
// Every resolved txid must exist in txstore per invariant 1; a miss here is
// a bug, not a user-visible condition, so it panics.
func (m *Mempool) History(sh [32]byte, lastSeenTxid *chainhash.Hash, limit int) []*wire.Transaction {
	defer m.timeTrack("history")()
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := m.historyTxidsLocked(sh, lastSeenTxid, limit)
	out := make([]*wire.Transaction, 0, len(ids))
	for _, id := range ids {
		tx, ok := m.txstore[id]
		if !ok {
			panic("mempool: history entry " + id.String() + " missing from txstore")
		}
		out = append(out, tx)
	}
	return out
}

// HistoryGroup concatenates the histories of every script hash in shs, in
// the given order, before deduplication/skip/take.
func (m *Mempool) HistoryGroup(shs [][32]byte, lastSeenTxid *chainhash.Hash, limit int) []*wire.Transaction {
	defer m.timeTrack("history_group")()
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := m.historyTxidsGroupLocked(shs, lastSeenTxid, limit)
	out := make([]*wire.Transaction, 0, len(ids))
	for _, id := range ids {
		tx, ok := m.txstore[id]
		if !ok {
			panic("mempool: history entry " + id.String() + " missing from txstore")
		}
		out = append(out, tx)
	}
	return out
}

// HistoryTxids is the id-only analogue of History.
func (m *Mempool) HistoryTxids(sh [32]byte, lastSeenTxid *chainhash.Hash, limit int) []chainhash.Hash {
	defer m.timeTrack("history_txids")()
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.historyTxidsLocked(sh, lastSeenTxid, limit)
}

func (m *Mempool) historyTxidsLocked(sh [32]byte, lastSeenTxid *chainhash.Hash, limit int) []chainhash.Hash {
	return dedupSkipTake(m.history[sh], lastSeenTxid, limit)
}

func (m *Mempool) historyTxidsGroupLocked(shs [][32]byte, lastSeenTxid *chainhash.Hash, limit int) []chainhash.Hash {
	var concatenated []TxHistoryInfo
	for _, sh := range shs {
		concatenated = append(concatenated, m.history[sh]...)
	}
	return dedupSkipTake(concatenated, lastSeenTxid, limit)
}

// dedupSkipTake preserves first-seen order, deduplicates by txid, skips
// through (and including) the first occurrence of lastSeenTxid when given,
// and takes up to limit ids.
func dedupSkipTake(entries []TxHistoryInfo, lastSeenTxid *chainhash.Hash, limit int) []chainhash.Hash {
	seen := make(map[chainhash.Hash]struct{})
	var ordered []chainhash.Hash
	for _, e := range entries {
		id := e.GetTxid()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}

	start := 0
	if lastSeenTxid != nil {
		for i, id := range ordered {
			if id == *lastSeenTxid {
				start = i + 1
				break
			}
		}
	}
	end := start + limit
	if end > len(ordered) || limit <= 0 {
		end = len(ordered)
	}
	if start >= end {
		return nil
	}
	return ordered[start:end]
}

// Utxo collects every still-unspent Funding entry for the script, sorted
// descending by (txid, vout), paged by an opaque outpoint cursor.
func (m *Mempool) Utxo(sh [32]byte, after *wire.OutPoint, limit int) []Utxo {
	defer m.timeTrack("utxo")()
	m.mu.RLock()
	defer m.mu.RUnlock()

	var all []Utxo
	for _, e := range m.history[sh] {
		if e.Funding == nil {
			continue
		}
		op := wire.OutPoint{Hash: e.Funding.Txid, Index: e.Funding.Vout}
		if _, spent := m.edges[op]; spent {
			continue
		}
		var extra []byte
		if tx, ok := m.txstore[e.Funding.Txid]; ok && int(e.Funding.Vout) < len(tx.TxOut) {
			extra = tx.TxOut[e.Funding.Vout].ExtraData
		}
		all = append(all, Utxo{
			Txid:      e.Funding.Txid,
			Vout:      e.Funding.Vout,
			Value:     e.Funding.Value,
			ExtraData: extra,
		})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Txid != all[j].Txid {
			return hashLess(all[j].Txid, all[i].Txid) // descending by txid
		}
		return all[i].Vout > all[j].Vout // descending by vout
	})

	start := 0
	if after != nil {
		for i, u := range all {
			if u.Txid == after.Hash && u.Vout == after.Index {
				start = i + 1
				break
			}
		}
	}
	end := start + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	if start >= end {
		return nil
	}
	out := make([]Utxo, end-start)
	copy(out, all[start:end])
	return out
}

// Stats computes the single-pass script statistics: tx_count dedups by
// txid; funding entries contribute to funded_*; spending entries contribute
// to spent_*.
func (m *Mempool) Stats(sh [32]byte) ScriptStats {
	defer m.timeTrack("stats")()
	m.mu.RLock()
	defer m.mu.RUnlock()

	var stats ScriptStats
	seen := make(map[chainhash.Hash]struct{})
	for _, e := range m.history[sh] {
		seen[e.GetTxid()] = struct{}{}
		if e.Funding != nil {
			stats.FundedTxoCount++
			stats.FundedTxoSum += e.Funding.Value
		} else {
			stats.SpentTxoCount++
			stats.SpentTxoSum += e.Spending.Value
		}
	}
	stats.TxCount = uint64(len(seen))
	return stats
}

// LookupSpend reports the (txid, vin) that consumes op, if any.
func (m *Mempool) LookupSpend(op wire.OutPoint) (chainhash.Hash, uint32, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ev, ok := m.edges[op]
	if !ok {
		return chainhash.Hash{}, 0, false
	}
	return ev.Txid, ev.Vin, true
}

// HasSpend reports whether op has been consumed within the mempool.
func (m *Mempool) HasSpend(op wire.OutPoint) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.edges[op]
	return ok
}

// GetTxFee returns the fee of txid, if it is indexed.
func (m *Mempool) GetTxFee(txid chainhash.Hash) (uint64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	info, ok := m.feeinfo[txid]
	if !ok {
		return 0, false
	}
	return info.Fee, true
}

// HasUnconfirmedParents reports whether any input of txid spends an output
// of a transaction that is itself currently in the mempool.
func (m *Mempool) HasUnconfirmedParents(txid chainhash.Hash) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tx, ok := m.txstore[txid]
	if !ok {
		return false
	}
	for _, in := range tx.TxIn {
		if !in.HasPrevout() {
			continue
		}
		if _, ok := m.txstore[in.PreviousOutPoint.Hash]; ok {
			return true
		}
	}
	return false
}

// RecentTxsOverview returns the recent-transactions buffer, newest first.
func (m *Mempool) RecentTxsOverview() []TxOverview {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]TxOverview, len(m.recent))
	copy(out, m.recent)
	return out
}
