package chaincfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/memindex/btcutil/util"
	"github.com/pkt-cash/memindex/chaincfg"
	"github.com/pkt-cash/memindex/chainhash"
)

func TestNetworkFromString(t *testing.T) {
	n, err := chaincfg.NetworkFromString("regtest")
	util.RequireNoErr(t, err)
	require.Equal(t, chaincfg.Regtest, n)

	_, err = chaincfg.NetworkFromString("nonsense")
	util.RequireErr(t, err)
}

func TestParamsForEveryNetwork(t *testing.T) {
	for _, n := range []chaincfg.Network{chaincfg.Mainnet, chaincfg.Testnet, chaincfg.Regtest} {
		p, err := chaincfg.ParamsFor(n)
		util.RequireNoErr(t, err)
		require.Equal(t, n, p.Net)
		_, hashErr := chainhash.NewHashFromStr(p.GenesisHash)
		util.RequireNoErr(t, hashErr, "genesis hash for %s must be a valid 32-byte hash", p.Name)
	}
}

func TestOnlyRegtestHasExtendedOutputs(t *testing.T) {
	p, err := chaincfg.ParamsFor(chaincfg.Regtest)
	util.RequireNoErr(t, err)
	require.True(t, p.HasExtendedOutputs)

	p, err = chaincfg.ParamsFor(chaincfg.Mainnet)
	util.RequireNoErr(t, err)
	require.False(t, p.HasExtendedOutputs)
}
