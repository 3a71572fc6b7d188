package txscript_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/memindex/txscript"
)

func TestIsNullData(t *testing.T) {
	cases := []struct {
		name   string
		script []byte
		want   bool
	}{
		{"bare OP_RETURN", []byte{0x6a}, true},
		{"OP_RETURN with small push", []byte{0x6a, 0x04, 0xde, 0xad, 0xbe, 0xef}, true},
		{"OP_RETURN with PUSHDATA1", append([]byte{0x6a, 0x4c, 0x02}, []byte{0x01, 0x02}...), true},
		{"not OP_RETURN", []byte{0x76, 0xa9, 0x14}, false},
		{"empty script", []byte{}, false},
		{"OP_RETURN with non-push op after", []byte{0x6a, 0x93}, false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, txscript.IsNullData(c.script), c.name)
	}
}

func TestIsSpendable(t *testing.T) {
	require.False(t, txscript.IsSpendable([]byte{0x6a}))
	require.True(t, txscript.IsSpendable([]byte{0x76, 0xa9, 0x14}))
}

func TestScriptHashMatchesSha256(t *testing.T) {
	script := []byte{0x76, 0xa9, 0x14, 0x01, 0x02}
	require.Equal(t, sha256.Sum256(script), txscript.ScriptHash(script))
}
