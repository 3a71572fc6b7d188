package daemon

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/memindex/btcutil/er"
)

func TestIsMissingTxErr(t *testing.T) {
	require.True(t, isMissingTxErr(er.New("No such mempool or blockchain transaction")))
	require.True(t, isMissingTxErr(er.New("NO SUCH TRANSACTION")))
	require.False(t, isMissingTxErr(er.New("connection refused")))
}
