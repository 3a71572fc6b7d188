// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"github.com/pkt-cash/memindex/chainhash"
)

// Remove evicts every id in ids from the aggregate.  Per the core's
// invariants, every id is expected to have been derived from the current
// key set; an id that is not present in txstore signals a programming bug
// and panics rather than silently diverging from the invariant it exists to
// protect.
func (m *Mempool) Remove(ids []chainhash.Hash) {
	defer m.timeTrack("remove")()

	if len(ids) == 0 {
		return
	}

	removeSet := make(map[chainhash.Hash]struct{}, len(ids))
	for _, id := range ids {
		removeSet[id] = struct{}{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range ids {
		if _, ok := m.txstore[id]; !ok {
			panic("mempool: remove target " + id.String() + " absent from txstore")
		}
		delete(m.txstore, id)
		if _, ok := m.feeinfo[id]; ok {
			delete(m.feeinfo, id)
		} else {
			log.Warnf("remove: no feeinfo entry for %s", id)
		}
	}
	m.resortIds()

	for sh, entries := range m.history {
		kept := entries[:0]
		for _, e := range entries {
			if _, removed := removeSet[e.GetTxid()]; !removed {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			delete(m.history, sh)
		} else {
			m.history[sh] = kept
		}
	}

	for op, ev := range m.edges {
		if _, removed := removeSet[ev.Txid]; removed {
			delete(m.edges, op)
		}
	}

	m.metrics.ObserveDelta("remove", len(ids))
}
