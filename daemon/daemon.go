// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package daemon adapts an rpcclient.Client into the mempool.Daemon
// collaborator interface: decoding hex transaction bytes into wire
// transactions and txid strings into chainhash.Hash values.
package daemon

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/pkt-cash/memindex/btcutil/er"
	"github.com/pkt-cash/memindex/chainhash"
	"github.com/pkt-cash/memindex/rpcclient"
	"github.com/pkt-cash/memindex/wire"
)

// Daemon wraps an rpcclient.Client and implements mempool.Daemon.
type Daemon struct {
	client *rpcclient.Client
}

// New wraps an already-connected rpcclient.Client.
func New(client *rpcclient.Client) *Daemon {
	return &Daemon{client: client}
}

// ListMempoolTxids asks the node for every txid currently in its mempool.
func (d *Daemon) ListMempoolTxids() ([]chainhash.Hash, er.R) {
	hexIds, err := d.client.GetRawMempool()
	if err != nil {
		return nil, err
	}
	out := make([]chainhash.Hash, 0, len(hexIds))
	for _, s := range hexIds {
		h, err := chainhash.NewHashFromStr(s)
		if err != nil {
			return nil, err
		}
		out = append(out, *h)
	}
	return out, nil
}

// GetTransactions fetches as many of ids as the daemon can still serve. A
// transaction evicted between the list and the fetch is skipped rather
// than treated as an error, reflecting the inherent race between the two
// calls.
func (d *Daemon) GetTransactions(ids []chainhash.Hash) ([]*wire.Transaction, er.R) {
	out := make([]*wire.Transaction, 0, len(ids))
	for _, id := range ids {
		tx, err := d.GetMempoolTx(id)
		if err != nil {
			if isMissingTxErr(err) {
				continue
			}
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}

// GetMempoolTx fetches and decodes a single transaction.
func (d *Daemon) GetMempoolTx(id chainhash.Hash) (*wire.Transaction, er.R) {
	hexStr, err := d.client.GetRawTransactionHex(id.String())
	if err != nil {
		return nil, err
	}
	raw, errr := hex.DecodeString(hexStr)
	if errr != nil {
		return nil, er.E(errr)
	}
	tx, err := wire.Deserialize(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// isMissingTxErr reports whether err looks like "no such transaction",
// which the node reports as a generic RPC error string rather than a typed
// one.
func isMissingTxErr(err er.R) bool {
	return strings.Contains(strings.ToLower(err.Message()), "no such")
}
