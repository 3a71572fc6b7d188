// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"github.com/pkt-cash/memindex/btcutil/er"
	"github.com/pkt-cash/memindex/chainhash"
)

// Err is the error type for every domain error the mempool core surfaces.
var Err er.ErrorType = er.NewErrorType("mempool.Err")

var (
	// ErrDaemonListFailed wraps the underlying RPC error from step 2 of
	// Update: listing the daemon's mempool txids.
	ErrDaemonListFailed = Err.CodeWithDetail("ErrDaemonListFailed",
		"failed to update mempool from daemon")

	// ErrDaemonFetchFailed wraps the underlying RPC error from step 5 of
	// Update: fetching the add-set transactions.
	ErrDaemonFetchFailed = Err.CodeWithDetail("ErrDaemonFetchFailed",
		"failed to fetch transactions from daemon")

	// ErrMissingParents is returned by AddByTxid when the single
	// transaction path could not be indexed because its prevouts were
	// unresolvable.
	ErrMissingParents = Err.CodeWithDetail("ErrMissingParents",
		"transaction could not be indexed: prevouts unresolved")
)

func daemonListFailed(cause er.R) er.R {
	return ErrDaemonListFailed.New("failed to update mempool from daemon", cause)
}

func daemonFetchFailed(attempted int, cause er.R) er.R {
	return ErrDaemonFetchFailed.New(
		"failed to fetch transactions from daemon (attempted "+itoa(attempted)+")", cause)
}

func missingParents(txid chainhash.Hash) er.R {
	return ErrMissingParents.New("missing parents for "+txid.String(), nil)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
