package chainquery_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/memindex/btcutil/util"
	"github.com/pkt-cash/memindex/chainhash"
	"github.com/pkt-cash/memindex/chainquery"
	"github.com/pkt-cash/memindex/wire"
)

func openTestDB(t *testing.T) *chainquery.LevelDBChainQuery {
	dir := filepath.Join(t.TempDir(), "chainquery-test")
	db, err := chainquery.Open(dir)
	util.RequireNoErr(t, err)
	t.Cleanup(func() {
		util.RequireNoErr(t, db.Close())
	})
	return db
}

func TestPutLookupDelete(t *testing.T) {
	db := openTestDB(t)

	op := wire.OutPoint{Hash: chainhash.HashH([]byte("tx1")), Index: 3}
	txo := &wire.TxOut{Value: 12345, PkScript: []byte{0x76, 0xa9, 0x14}}

	util.RequireNoErr(t, db.Put(op, txo))

	found, err := db.LookupAvailableTxos([]wire.OutPoint{op})
	util.RequireNoErr(t, err)
	require.Len(t, found, 1)
	require.Equal(t, txo.Value, found[op].Value)
	require.Equal(t, txo.PkScript, found[op].PkScript)

	util.RequireNoErr(t, db.Delete(op))

	found, err = db.LookupAvailableTxos([]wire.OutPoint{op})
	util.RequireNoErr(t, err)
	require.Empty(t, found)
}

func TestLookupAvailableTxosPartialResult(t *testing.T) {
	db := openTestDB(t)

	present := wire.OutPoint{Hash: chainhash.HashH([]byte("present")), Index: 0}
	absent := wire.OutPoint{Hash: chainhash.HashH([]byte("absent")), Index: 0}
	util.RequireNoErr(t, db.Put(present, &wire.TxOut{Value: 1, PkScript: []byte{0x01}}))

	found, err := db.LookupAvailableTxos([]wire.OutPoint{present, absent})
	util.RequireNoErr(t, err)
	require.Len(t, found, 1)
	_, ok := found[present]
	require.True(t, ok)
	_, ok = found[absent]
	require.False(t, ok)
}
