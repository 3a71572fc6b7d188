package mempool_test

import (
	"time"

	"github.com/pkt-cash/memindex/btcutil/er"
	"github.com/pkt-cash/memindex/chainhash"
	"github.com/pkt-cash/memindex/mempool"
	"github.com/pkt-cash/memindex/wire"
)

// fakeChainQuery is a map-backed mempool.ChainQuery stub for tests.
type fakeChainQuery struct {
	txos map[wire.OutPoint]*wire.TxOut
}

func newFakeChainQuery() *fakeChainQuery {
	return &fakeChainQuery{txos: make(map[wire.OutPoint]*wire.TxOut)}
}

func (f *fakeChainQuery) put(op wire.OutPoint, txo *wire.TxOut) {
	f.txos[op] = txo
}

func (f *fakeChainQuery) LookupAvailableTxos(ops []wire.OutPoint) (map[wire.OutPoint]*wire.TxOut, er.R) {
	out := make(map[wire.OutPoint]*wire.TxOut, len(ops))
	for _, op := range ops {
		if txo, ok := f.txos[op]; ok {
			out[op] = txo
		}
	}
	return out, nil
}

// fakeDaemon is a scripted mempool.Daemon stub for sync tests.
type fakeDaemon struct {
	listIds  []chainhash.Hash
	txs      map[chainhash.Hash]*wire.Transaction
	listErr  er.R
	fetchErr er.R
}

func newFakeDaemon() *fakeDaemon {
	return &fakeDaemon{txs: make(map[chainhash.Hash]*wire.Transaction)}
}

func (d *fakeDaemon) ListMempoolTxids() ([]chainhash.Hash, er.R) {
	if d.listErr != nil {
		return nil, d.listErr
	}
	return d.listIds, nil
}

func (d *fakeDaemon) GetTransactions(ids []chainhash.Hash) ([]*wire.Transaction, er.R) {
	if d.fetchErr != nil {
		return nil, d.fetchErr
	}
	out := make([]*wire.Transaction, 0, len(ids))
	for _, id := range ids {
		if tx, ok := d.txs[id]; ok {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (d *fakeDaemon) GetMempoolTx(id chainhash.Hash) (*wire.Transaction, er.R) {
	tx, ok := d.txs[id]
	if !ok {
		return nil, er.New("no such transaction")
	}
	return tx, nil
}

// fundingTx builds a transaction that spends a confirmed output registered
// in cq (value confirmedValue) and produces one new output (value
// outValue, script pkScript). seed varies the confirmed prevout's txid and
// the signature script so distinct calls don't collide.
func fundingTx(cq *fakeChainQuery, seed byte, confirmedValue, outValue int64, pkScript []byte) *wire.Transaction {
	confirmedOp := wire.OutPoint{Hash: chainhash.HashH([]byte{seed}), Index: 0}
	cq.put(confirmedOp, &wire.TxOut{Value: confirmedValue, PkScript: []byte{0xaa}})
	return &wire.Transaction{
		Version: 1,
		TxIn: []*wire.TxIn{{
			PreviousOutPoint: confirmedOp,
			SignatureScript:  []byte{seed},
			Sequence:         wire.MaxTxInSequenceNum,
		}},
		TxOut: []*wire.TxOut{{Value: outValue, PkScript: pkScript}},
	}
}

func spendingTx(prevout wire.OutPoint, value int64, pkScript []byte) *wire.Transaction {
	return &wire.Transaction{
		Version: 1,
		TxIn: []*wire.TxIn{{
			PreviousOutPoint: prevout,
			SignatureScript:  []byte{0x01},
			Sequence:         wire.MaxTxInSequenceNum,
		}},
		TxOut: []*wire.TxOut{{Value: value, PkScript: pkScript}},
	}
}

func testConfig() mempool.Config {
	return mempool.Config{
		RecentTxsSize:   10,
		BacklogStatsTTL: time.Minute,
	}
}

var pkScript1 = []byte{0x76, 0xa9, 0x14, 0x01}
var pkScript2 = []byte{0x76, 0xa9, 0x14, 0x02}
