package mempool_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/memindex/btcutil/util"
	"github.com/pkt-cash/memindex/chainhash"
	"github.com/pkt-cash/memindex/mempool"
	"github.com/pkt-cash/memindex/txscript"
	"github.com/pkt-cash/memindex/wire"
)

// S1: an empty mempool reports empty everything and the default backlog.
func TestScenario_EmptyCycle(t *testing.T) {
	pool := mempool.New(testConfig(), newFakeChainQuery(), nil)
	daemon := newFakeDaemon()

	util.RequireNoErr(t, pool.Update(daemon))
	require.Empty(t, pool.Txids())
	require.Empty(t, pool.RecentTxsOverview())

	stats := pool.BacklogStats()
	require.Equal(t, uint32(0), stats.Count)
	require.Len(t, stats.FeeHistogram, 1)
	require.Equal(t, float32(0), stats.FeeHistogram[0].FeePerVbyte)
}

// S2: a single funding transaction becomes visible in every query surface.
func TestScenario_SingleFunding(t *testing.T) {
	cq := newFakeChainQuery()
	pool := mempool.New(testConfig(), cq, nil)
	tx := fundingTx(cq, 1, 6000, 5000, pkScript1)
	txid := tx.Txid()

	n, err := pool.Add([]*wire.Transaction{tx})
	util.RequireNoErr(t, err)
	require.Equal(t, 1, n)

	require.True(t, pool.HasTx(txid))
	sh := txscript.ScriptHash(pkScript1)
	history := pool.History(sh, nil, 0)
	require.Len(t, history, 1)
	require.Equal(t, txid, history[0].Txid())

	utxos := pool.Utxo(sh, nil, 0)
	require.Len(t, utxos, 1)
	require.Equal(t, uint64(5000), utxos[0].Value)

	stats := pool.Stats(sh)
	require.Equal(t, uint64(1), stats.TxCount)
	require.Equal(t, uint64(1), stats.FundedTxoCount)

	fee, ok := pool.GetTxFee(txid)
	require.True(t, ok)
	require.Equal(t, uint64(1000), fee)

	overview := pool.RecentTxsOverview()
	require.Len(t, overview, 1)
	require.Equal(t, txid, overview[0].Txid)
}

// S3: a child spending its parent's output in the same batch resolves,
// because admission to the store happens before prevout resolution.
func TestScenario_ChainInsideMempool(t *testing.T) {
	cq := newFakeChainQuery()
	pool := mempool.New(testConfig(), cq, nil)
	parent := fundingTx(cq, 1, 11000, 10000, pkScript1)
	parentID := parent.Txid()
	child := spendingTx(wire.OutPoint{Hash: parentID, Index: 0}, 9000, pkScript2)
	childID := child.Txid()

	n, err := pool.Add([]*wire.Transaction{parent, child})
	util.RequireNoErr(t, err)
	require.Equal(t, 2, n)

	spendTxid, spendVin, found := pool.LookupSpend(wire.OutPoint{Hash: parentID, Index: 0})
	require.True(t, found)
	require.Equal(t, childID, spendTxid)
	require.Equal(t, uint32(0), spendVin)

	fee, ok := pool.GetTxFee(childID)
	require.True(t, ok)
	require.Equal(t, uint64(1000), fee)

	require.True(t, pool.HasUnconfirmedParents(childID))
	require.False(t, pool.HasUnconfirmedParents(parentID))

	// funding and spending for the same output's script hash share a
	// bucket; funding precedes spending within it.
	sh := txscript.ScriptHash(pkScript1)
	ids := pool.HistoryTxids(sh, nil, 0)
	if len(ids) != 2 || ids[0] != parentID || ids[1] != childID {
		t.Fatalf("unexpected history order: expected [%v %v], got %s",
			parentID, childID, spew.Sdump(ids))
	}
}

// S4: a transaction whose parent is unavailable anywhere is skipped, not
// erred: it stays in the store but is not indexed.
func TestScenario_MissingParent(t *testing.T) {
	cq := newFakeChainQuery()
	pool := mempool.New(testConfig(), cq, nil)
	unknownParent := chainhash.HashH([]byte("never seen"))
	orphan := spendingTx(wire.OutPoint{Hash: unknownParent, Index: 0}, 100, pkScript2)

	n, err := pool.Add([]*wire.Transaction{orphan})
	util.RequireNoErr(t, err)
	require.Equal(t, 0, n)
	require.True(t, pool.HasTx(orphan.Txid()))
}

// S5: eviction removes a transaction from every index it touched.
func TestScenario_Eviction(t *testing.T) {
	cq := newFakeChainQuery()
	pool := mempool.New(testConfig(), cq, nil)
	tx := fundingTx(cq, 1, 6000, 5000, pkScript1)
	txid := tx.Txid()
	_, err := pool.Add([]*wire.Transaction{tx})
	util.RequireNoErr(t, err)

	pool.Remove([]chainhash.Hash{txid})

	require.False(t, pool.HasTx(txid))
	sh := txscript.ScriptHash(pkScript1)
	require.Empty(t, pool.History(sh, nil, 0))
	_, ok := pool.GetTxFee(txid)
	require.False(t, ok)
}

// Removing a txid that was never admitted is a programming error and
// panics rather than silently diverging from the store.
func TestRemoveUnknownTxidPanics(t *testing.T) {
	pool := mempool.New(testConfig(), newFakeChainQuery(), nil)
	require.Panics(t, func() {
		pool.Remove([]chainhash.Hash{chainhash.HashH([]byte("ghost"))})
	})
}

// S6: with a zero TTL every cached backlog summary is already stale, so
// each BacklogStats call recomputes and sees newly added transactions.
func TestScenario_BacklogTTL(t *testing.T) {
	cq := newFakeChainQuery()
	cfg := testConfig()
	cfg.BacklogStatsTTL = 0 // always stale, so each call recomputes
	pool := mempool.New(cfg, cq, nil)

	tx := fundingTx(cq, 1, 6000, 5000, pkScript1)
	_, err := pool.Add([]*wire.Transaction{tx})
	util.RequireNoErr(t, err)

	stats1 := pool.BacklogStats()
	require.Equal(t, uint32(1), stats1.Count)

	tx2 := fundingTx(cq, 2, 7000, 6000, pkScript2)
	_, err = pool.Add([]*wire.Transaction{tx2})
	util.RequireNoErr(t, err)

	stats2 := pool.BacklogStats()
	require.Equal(t, uint32(2), stats2.Count)
}
