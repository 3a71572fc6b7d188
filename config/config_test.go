package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/memindex/btcutil/util"
	"github.com/pkt-cash/memindex/chaincfg"
	"github.com/pkt-cash/memindex/config"
)

func TestNetworkTag(t *testing.T) {
	cfg := config.Config{Network: "testnet"}
	n, err := cfg.NetworkTag()
	util.RequireNoErr(t, err)
	require.Equal(t, chaincfg.Testnet, n)
}

func TestNetworkTagRejectsUnknown(t *testing.T) {
	cfg := config.Config{Network: "nonsense"}
	_, err := cfg.NetworkTag()
	util.RequireErr(t, err)
}
