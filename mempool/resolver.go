// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"github.com/pkt-cash/memindex/btcutil/er"
	"github.com/pkt-cash/memindex/wire"
)

// lookupTxosLocked resolves a set of requested outpoints by first asking
// ChainQuery for confirmed outputs, then falling back to the in-memory
// txstore for anything ChainQuery didn't answer.  The result may be a
// strict subset of requested; callers must handle missing entries.
//
// Callers must already hold mu (for reading or writing); both the
// ChainQuery lookup and the txstore fallback below run under that hold.
// ChainQuery is a local read collaborator, not a daemon RPC.
func (m *Mempool) lookupTxosLocked(requested []wire.OutPoint) (map[wire.OutPoint]*wire.TxOut, er.R) {
	defer m.timeTrack("lookup_txos")()

	result := make(map[wire.OutPoint]*wire.TxOut, len(requested))
	if m.chainQuery != nil {
		confirmed, err := m.chainQuery.LookupAvailableTxos(requested)
		if err != nil {
			return nil, err
		}
		for op, txo := range confirmed {
			result[op] = txo
		}
	}

	for _, op := range requested {
		if _, found := result[op]; found {
			continue
		}
		tx, ok := m.txstore[op.Hash]
		if !ok || int(op.Index) >= len(tx.TxOut) {
			log.Warnf("no prevout found for outpoint %s", op)
			continue
		}
		result[op] = tx.TxOut[op.Index]
	}

	return result, nil
}

// LookupTxo is the one-element convenience form of lookupTxosLocked, for callers
// outside the aggregate that don't already hold mu.
func (m *Mempool) LookupTxo(op wire.OutPoint) (*wire.TxOut, er.R) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result, err := m.lookupTxosLocked([]wire.OutPoint{op})
	if err != nil {
		return nil, err
	}
	return result[op], nil
}

// getPrevouts resolves the prevouts of every non-sentinel input across the
// given transactions in one batched resolver call.  Callers must already
// hold mu (Add holds it for writing across admission and resolution).
func (m *Mempool) getPrevouts(txs []*wire.Transaction) (map[wire.OutPoint]*wire.TxOut, er.R) {
	defer m.timeTrack("get_prevouts")()

	seen := make(map[wire.OutPoint]struct{})
	var requested []wire.OutPoint
	for _, tx := range txs {
		for _, in := range tx.TxIn {
			if !in.HasPrevout() {
				continue
			}
			op := in.PreviousOutPoint
			if _, ok := seen[op]; ok {
				continue
			}
			seen[op] = struct{}{}
			requested = append(requested, op)
		}
	}
	return m.lookupTxosLocked(requested)
}
