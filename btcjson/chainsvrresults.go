// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

// GetRawMempoolVerboseResult models the data returned from the getrawmempool
// command when the verbose flag is set.  Only the fields relevant to the
// diff-driven synchronizer are kept.
type GetRawMempoolVerboseResult struct {
	Size int64   `json:"size"`
	Fee  float64 `json:"fee"`
	Time int64   `json:"time"`
}

// Vin models parts of the tx data.  It is defined separately since
// getrawtransaction and decoderawtransaction use the same structure.
type Vin struct {
	Coinbase  string `json:"coinbase,omitempty"`
	Txid      string `json:"txid,omitempty"`
	Vout      uint32 `json:"vout,omitempty"`
	Sequence  uint32 `json:"sequence"`
	ScriptSig *ScriptSig `json:"scriptSig,omitempty"`
}

// IsCoinBase returns a bool to show if a Vin is a Coinbase one or not.
func (v *Vin) IsCoinBase() bool {
	return len(v.Coinbase) > 0
}

// ScriptSig models a signature script.  It is defined separately since it
// only applies to non-coinbase inputs, so the field in Vin needs to be a
// pointer.
type ScriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`
}

// Vout models parts of the tx data.  It is defined separately since both
// getrawtransaction and decoderawtransaction use the same structure.
type Vout struct {
	Value        float64            `json:"value"`
	N            uint32             `json:"n"`
	ScriptPubKey ScriptPubKeyResult `json:"scriptPubKey"`
}

// ScriptPubKeyResult models the scriptPubKey data of a tx script.  It is
// defined separately since it is used by multiple commands.
type ScriptPubKeyResult struct {
	Asm     string `json:"asm"`
	Hex     string `json:"hex,omitempty"`
	Type    string `json:"type"`
}

// TxRawResult models the data from the getrawtransaction command when the
// verbose flag is set.  Callers that only need the raw bytes to hand to the
// wire decoder should prefer rpcclient's GetRawTransactionHex, which asks
// for verbosity 0 and returns a plain hex string instead of this structure.
type TxRawResult struct {
	Hex           string `json:"hex"`
	Txid          string `json:"txid"`
	Size          int32  `json:"size,omitempty"`
	Vsize         int32  `json:"vsize,omitempty"`
	Version       int32  `json:"version"`
	LockTime      uint32 `json:"locktime"`
	Vin           []Vin  `json:"vin"`
	Vout          []Vout `json:"vout"`
	BlockHash     string `json:"blockhash,omitempty"`
	Confirmations uint64 `json:"confirmations,omitempty"`
	Time          int64  `json:"time,omitempty"`
	Blocktime     int64  `json:"blocktime,omitempty"`
}
