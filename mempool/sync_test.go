package mempool_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/memindex/btcutil/er"
	"github.com/pkt-cash/memindex/btcutil/util"
	"github.com/pkt-cash/memindex/chainhash"
	"github.com/pkt-cash/memindex/mempool"
	"github.com/pkt-cash/memindex/wire"
)

func TestUpdate_DaemonListFailedSurfaces(t *testing.T) {
	pool := mempool.New(testConfig(), newFakeChainQuery(), nil)
	daemon := newFakeDaemon()
	daemon.listErr = er.New("rpc unreachable")

	err := pool.Update(daemon)
	util.RequireErr(t, err)
	require.True(t, mempool.ErrDaemonListFailed.Is(err))
}

func TestUpdate_DaemonFetchFailedSurfaces(t *testing.T) {
	cq := newFakeChainQuery()
	pool := mempool.New(testConfig(), cq, nil)
	tx := fundingTx(cq, 1, 6000, 5000, pkScript1)
	txid := tx.Txid()

	daemon := newFakeDaemon()
	daemon.listIds = []chainhash.Hash{txid}
	daemon.txs[txid] = tx
	daemon.fetchErr = er.New("rpc timed out")

	err := pool.Update(daemon)
	util.RequireErr(t, err)
	require.True(t, mempool.ErrDaemonFetchFailed.Is(err))
}

func TestUpdate_AppliesAddsAndRemovals(t *testing.T) {
	cq := newFakeChainQuery()
	pool := mempool.New(testConfig(), cq, nil)
	tx := fundingTx(cq, 1, 6000, 5000, pkScript1)
	txid := tx.Txid()

	daemon := newFakeDaemon()
	daemon.listIds = []chainhash.Hash{txid}
	daemon.txs[txid] = tx

	util.RequireNoErr(t, pool.Update(daemon))
	require.True(t, pool.HasTx(txid))

	// Next cycle: daemon no longer reports txid, so it is evicted.
	daemon.listIds = nil
	util.RequireNoErr(t, pool.Update(daemon))
	require.False(t, pool.HasTx(txid))
}

func TestAddByTxid_NoopIfAlreadyTracked(t *testing.T) {
	cq := newFakeChainQuery()
	pool := mempool.New(testConfig(), cq, nil)
	tx := fundingTx(cq, 1, 6000, 5000, pkScript1)
	txid := tx.Txid()
	_, err := pool.Add([]*wire.Transaction{tx})
	util.RequireNoErr(t, err)

	daemon := newFakeDaemon() // no txs registered; would fail GetMempoolTx
	util.RequireNoErr(t, pool.AddByTxid(daemon, txid))
}

func TestAddByTxid_MissingParentsWhenUnresolvable(t *testing.T) {
	cq := newFakeChainQuery()
	pool := mempool.New(testConfig(), cq, nil)
	unknownParent := chainhash.HashH([]byte("nope"))
	orphan := spendingTx(wire.OutPoint{Hash: unknownParent, Index: 0}, 100, pkScript2)
	txid := orphan.Txid()

	daemon := newFakeDaemon()
	daemon.txs[txid] = orphan

	err := pool.AddByTxid(daemon, txid)
	util.RequireErr(t, err)
	require.True(t, mempool.ErrMissingParents.Is(err))
}

func TestAddByTxid_DaemonErrorSurfaces(t *testing.T) {
	pool := mempool.New(testConfig(), newFakeChainQuery(), nil)
	daemon := newFakeDaemon()

	err := pool.AddByTxid(daemon, chainhash.HashH([]byte("whatever")))
	util.RequireErr(t, err)
}
