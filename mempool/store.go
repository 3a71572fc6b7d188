// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"bytes"
	"sort"

	"github.com/pkt-cash/memindex/chainhash"
	"github.com/pkt-cash/memindex/wire"
)

// LookupTxn returns the stored transaction, or nil if it isn't currently
// tracked.  The result is the aggregate's own pointer, not a copy.
func (m *Mempool) LookupTxn(txid chainhash.Hash) *wire.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tx, ok := m.txstore[txid]
	if !ok {
		return nil
	}
	return tx
}

// LookupRawTxn returns the ChainCodec-serialized bytes of the stored
// transaction, or nil if it isn't currently tracked.
func (m *Mempool) LookupRawTxn(txid chainhash.Hash) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tx, ok := m.txstore[txid]
	if !ok {
		return nil
	}
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		log.Warnf("failed to serialize stored transaction %s: %v", txid, err)
		return nil
	}
	return buf.Bytes()
}

// HasTx reports whether txid is currently tracked.
func (m *Mempool) HasTx(txid chainhash.Hash) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.txstore[txid]
	return ok
}

// TxidsSnapshot returns every currently-tracked txid, in no particular
// order.
func (m *Mempool) TxidsSnapshot() []chainhash.Hash {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]chainhash.Hash, 0, len(m.txstore))
	for id := range m.txstore {
		out = append(out, id)
	}
	return out
}

// TxidsPage returns the first n keys strictly greater than start in
// ascending byte-lexicographic order.  A nil start begins from the smallest
// key.
func (m *Mempool) TxidsPage(n int, start *chainhash.Hash) []chainhash.Hash {
	defer m.timeTrack("txids_page")()
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.txidsPageLocked(n, start)
}

func (m *Mempool) txidsPageLocked(n int, start *chainhash.Hash) []chainhash.Hash {
	idx := 0
	if start != nil {
		idx = sort.Search(len(m.sortedIds), func(i int) bool {
			return bytes.Compare(m.sortedIds[i][:], (*start)[:]) > 0
		})
	}
	end := idx + n
	if end > len(m.sortedIds) {
		end = len(m.sortedIds)
	}
	if idx >= end {
		return nil
	}
	out := make([]chainhash.Hash, end-idx)
	copy(out, m.sortedIds[idx:end])
	return out
}

// TxsPage is the value-returning analogue of TxidsPage.
func (m *Mempool) TxsPage(n int, start *chainhash.Hash) []*wire.Transaction {
	defer m.timeTrack("txs_page")()
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := m.txidsPageLocked(n, start)
	out := make([]*wire.Transaction, 0, len(ids))
	for _, id := range ids {
		if tx, ok := m.txstore[id]; ok {
			out = append(out, tx)
		}
	}
	return out
}

// Txids returns every tracked txid, sorted ascending.
func (m *Mempool) Txids() []chainhash.Hash {
	defer m.timeTrack("txids")()
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]chainhash.Hash, len(m.sortedIds))
	copy(out, m.sortedIds)
	return out
}

// Txs returns every tracked transaction, sorted by ascending txid.
func (m *Mempool) Txs() []*wire.Transaction {
	defer m.timeTrack("txs")()
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*wire.Transaction, 0, len(m.sortedIds))
	for _, id := range m.sortedIds {
		out = append(out, m.txstore[id])
	}
	return out
}
