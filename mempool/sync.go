// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"github.com/pkt-cash/memindex/btcutil/er"
	"github.com/pkt-cash/memindex/chainhash"
)

// Update runs one cycle of the diff-driven synchronizer against daemon: it
// snapshots the current key set under a shared read, diffs it against the
// daemon's reported mempool, applies removals, fetches and indexes
// additions, then refreshes the cached backlog summary if its TTL elapsed.
// No RPC call is ever made while holding the write lock.
func (m *Mempool) Update(daemon Daemon) er.R {
	defer m.timeTrack("update")()

	// Step 1: snapshot the current key set under a shared read.
	oldIds := m.TxidsSnapshot()

	// Step 2: remote list.
	allIds, err := daemon.ListMempoolTxids()
	if err != nil {
		return daemonListFailed(err)
	}

	// Step 3: compute delta.
	allSet := make(map[chainhash.Hash]struct{}, len(allIds))
	for _, id := range allIds {
		allSet[id] = struct{}{}
	}
	oldSet := make(map[chainhash.Hash]struct{}, len(oldIds))
	for _, id := range oldIds {
		oldSet[id] = struct{}{}
	}

	var toRemove, toAdd []chainhash.Hash
	for _, id := range oldIds {
		if _, ok := allSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range allIds {
		if _, ok := oldSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}

	// Step 4: apply removals. Always applied, even if the subsequent
	// fetch fails, to bound staleness.
	m.Remove(toRemove)

	// Step 5: fetch adds.
	fetched, err := daemon.GetTransactions(toAdd)
	if err != nil {
		return daemonFetchFailed(len(toAdd), err)
	}

	// Step 6: apply adds and housekeep.
	if _, err := m.Add(fetched); err != nil {
		return err
	}
	m.metrics.SetCount("txs", float64(m.count()))
	if m.cfg.BacklogStatsTTL >= 0 {
		m.BacklogStats()
	}

	return nil
}

func (m *Mempool) count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.txstore)
}
