// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"github.com/pkt-cash/memindex/btcutil/er"
)

// GetRawMempool returns the hashes of all transactions currently in the
// daemon's mempool.
func (c *Client) GetRawMempool() ([]string, er.R) {
	var txids []string
	if err := c.Call("getrawmempool", []interface{}{false}, &txids); err != nil {
		return nil, err
	}
	return txids, nil
}

// GetRawTransactionHex returns the raw, hex-encoded serialized bytes of the
// transaction identified by txid, as reported by the daemon.  Verbosity 0
// is requested so the daemon returns a bare hex string rather than a
// decoded JSON object; this package's own wire.Deserialize is the ChainCodec
// of record.
func (c *Client) GetRawTransactionHex(txid string) (string, er.R) {
	var hexStr string
	verbose := 0
	if err := c.Call("getrawtransaction", []interface{}{txid, verbose}, &hexStr); err != nil {
		return "", err
	}
	return hexStr, nil
}
