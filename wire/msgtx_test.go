package wire_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/memindex/btcutil/util"
	"github.com/pkt-cash/memindex/chainhash"
	"github.com/pkt-cash/memindex/wire"
)

func simpleTx() *wire.Transaction {
	return &wire.Transaction{
		Version: 1,
		TxIn: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{Hash: chainhash.HashH([]byte("parent")), Index: 0},
			SignatureScript:  []byte{0x01, 0x02},
			Sequence:         wire.MaxTxInSequenceNum,
		}},
		TxOut: []*wire.TxOut{{
			Value:    5000,
			PkScript: []byte{0x76, 0xa9},
		}},
		LockTime: 0,
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	tx := simpleTx()
	var buf bytes.Buffer
	util.RequireNoErr(t, tx.Serialize(&buf))

	got, err := wire.Deserialize(bytes.NewReader(buf.Bytes()))
	util.RequireNoErr(t, err)
	require.Equal(t, tx.Version, got.Version)
	require.Len(t, got.TxIn, 1)
	require.Len(t, got.TxOut, 1)
	require.Equal(t, tx.TxOut[0].Value, got.TxOut[0].Value)
	require.Equal(t, tx.TxIn[0].PreviousOutPoint, got.TxIn[0].PreviousOutPoint)
}

func TestTxidStableAcrossWitness(t *testing.T) {
	noWitness := simpleTx()
	withWitness := simpleTx()
	withWitness.TxIn[0].Witness = [][]byte{{0xde, 0xad}}

	require.Equal(t, noWitness.TxHash(), withWitness.TxHash(),
		"txid must be computed over the non-witness serialization")
}

func TestWeightAndVsize(t *testing.T) {
	noWitness := simpleTx()
	withWitness := simpleTx()
	withWitness.TxIn[0].Witness = [][]byte{bytes.Repeat([]byte{0xaa}, 100)}

	require.Equal(t, noWitness.BaseSize()*4, noWitness.Weight(),
		"a transaction with no witness data weighs 4x its base size")
	require.Greater(t, withWitness.Weight(), noWitness.Weight())
	require.Equal(t, (withWitness.Weight()+3)/4, withWitness.VSize())
}

func TestExtraDataAlwaysSerialized(t *testing.T) {
	tx := simpleTx()
	// ExtraData left nil: must still round-trip to an empty, non-nil slice.
	var buf bytes.Buffer
	util.RequireNoErr(t, tx.Serialize(&buf))
	got, err := wire.Deserialize(bytes.NewReader(buf.Bytes()))
	util.RequireNoErr(t, err)
	require.Empty(t, got.TxOut[0].ExtraData)

	tx.TxOut[0].ExtraData = []byte{0x01, 0x02, 0x03}
	buf.Reset()
	util.RequireNoErr(t, tx.Serialize(&buf))
	got, err = wire.Deserialize(bytes.NewReader(buf.Bytes()))
	util.RequireNoErr(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, got.TxOut[0].ExtraData)
}

func TestOutPointCoinbaseSentinel(t *testing.T) {
	var cb wire.OutPoint
	cb.Index = wire.MaxTxInSequenceNum
	require.True(t, cb.IsCoinBaseSentinel())

	real := wire.OutPoint{Hash: chainhash.HashH([]byte("x")), Index: 0}
	require.False(t, real.IsCoinBaseSentinel())
}
