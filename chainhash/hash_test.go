package chainhash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/memindex/btcutil/util"
	"github.com/pkt-cash/memindex/chainhash"
)

func TestHashFromStrRoundTrip(t *testing.T) {
	const s = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"
	h, err := chainhash.NewHashFromStr(s)
	util.RequireNoErr(t, err)
	require.Equal(t, s, h.String())
}

func TestHashFromStrRejectsWrongSize(t *testing.T) {
	_, err := chainhash.NewHashFromStr("deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	util.RequireErr(t, err)
}

func TestDoubleHashB(t *testing.T) {
	a := chainhash.DoubleHashB([]byte("hello"))
	b := chainhash.DoubleHashB([]byte("hello"))
	require.Equal(t, a, b)
	require.Len(t, a, chainhash.HashSize)

	c := chainhash.DoubleHashB([]byte("world"))
	require.NotEqual(t, a, c)
}

func TestIsEqual(t *testing.T) {
	h1 := chainhash.HashH([]byte("tx"))
	h2 := chainhash.HashH([]byte("tx"))
	h3 := chainhash.HashH([]byte("other"))
	require.True(t, h1.IsEqual(&h2))
	require.False(t, h1.IsEqual(&h3))
	var nilHash *chainhash.Hash
	require.False(t, h1.IsEqual(nilHash))
}
