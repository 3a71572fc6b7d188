package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/pkt-cash/memindex/metrics"
)

func TestObservationsAreGatherable(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveLatency("add", 25*time.Millisecond)
	m.ObserveDelta("add", 3)
	m.SetCount("txs", 42)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["mempool_latency"])
	require.True(t, names["mempool_delta"])
	require.True(t, names["mempool_count"])
}
