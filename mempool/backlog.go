// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"sort"
	"time"

	"github.com/pkt-cash/memindex/chainhash"
)

// targetBinVsize is the recommended geometric starting point for a backlog
// fee-rate histogram bin, in virtual bytes.
const targetBinVsize = 50000

// BacklogStats returns the cached aggregate view, refreshing it first if
// the configured TTL has elapsed since the last refresh.
func (m *Mempool) BacklogStats() BacklogStats {
	defer m.timeTrack("update_backlog_stats")()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backlogComputed && time.Since(m.backlogAt) < m.cfg.BacklogStatsTTL {
		return m.backlogStats
	}
	m.backlogStats = computeBacklogStats(m.feeinfo)
	m.backlogAt = time.Now()
	m.backlogComputed = true
	return m.backlogStats
}

// computeBacklogStats builds BacklogStats from the current feeinfo table:
// count/vsize/total_fee, plus a descending fee-rate histogram.  A new bin
// opens when the running bin has accumulated at least targetBinVsize, or
// when the fee rate has halved since the bin opened; either is a reasonable
// implementation of the contract, which only fixes the shape of the
// result, not the exact thresholds.
func computeBacklogStats(feeinfo map[chainhash.Hash]TxFeeInfo) BacklogStats {
	if len(feeinfo) == 0 {
		return defaultBacklogStats()
	}

	infos := make([]TxFeeInfo, 0, len(feeinfo))
	for _, info := range feeinfo {
		infos = append(infos, info)
	}
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].FeePerVbyte > infos[j].FeePerVbyte
	})

	var stats BacklogStats
	var bins []FeeHistogramBin
	var binOpenRate float32
	var binVsize uint32
	binOpen := false

	for _, info := range infos {
		stats.Count++
		stats.Vsize += info.Vsize
		stats.TotalFee += info.Fee

		if !binOpen {
			binOpenRate = info.FeePerVbyte
			binVsize = 0
			binOpen = true
		} else if binVsize >= targetBinVsize || info.FeePerVbyte <= binOpenRate/2 {
			bins = append(bins, FeeHistogramBin{FeePerVbyte: binOpenRate, Vsize: binVsize})
			binOpenRate = info.FeePerVbyte
			binVsize = 0
		}
		binVsize += info.Vsize
	}
	if binOpen {
		bins = append(bins, FeeHistogramBin{FeePerVbyte: binOpenRate, Vsize: binVsize})
	}
	stats.FeeHistogram = bins
	return stats
}
