package wire_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/memindex/btcutil/util"
	"github.com/pkt-cash/memindex/wire"
)

func TestVarIntRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 0xfc, 0xfd, 0xffff, 0x10000, 0xffffffff, 0x100000000}
	for _, v := range cases {
		var buf bytes.Buffer
		util.RequireNoErr(t, wire.WriteVarInt(&buf, v))
		require.Equal(t, wire.VarIntSerializeSize(v), buf.Len())

		got, err := wire.ReadVarInt(&buf)
		util.RequireNoErr(t, err)
		require.Equal(t, v, got)
	}
}

func TestVarBytesRoundTrip(t *testing.T) {
	payload := []byte("a mempool indexer's pk script")
	var buf bytes.Buffer
	util.RequireNoErr(t, wire.WriteVarBytes(&buf, payload))

	got, err := wire.ReadVarBytes(&buf, wire.MaxMessagePayload, "test field")
	util.RequireNoErr(t, err)
	require.Equal(t, payload, got)
}

func TestReadVarBytesRejectsOversized(t *testing.T) {
	var buf bytes.Buffer
	util.RequireNoErr(t, wire.WriteVarInt(&buf, 100))
	buf.Write(make([]byte, 10))

	_, err := wire.ReadVarBytes(&buf, 5, "test field")
	util.RequireErr(t, err)
}
