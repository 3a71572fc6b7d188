// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainquery implements the mempool.ChainQuery collaborator: a
// flat, on-disk confirmed-UTXO set backed by goleveldb, keyed by the
// 36-byte serialized outpoint (txid || little-endian vout) and storing the
// serialized TxOut as its value.
package chainquery

import (
	"bytes"
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/pkt-cash/memindex/btcutil/er"
	"github.com/pkt-cash/memindex/chainhash"
	"github.com/pkt-cash/memindex/wire"
)

// LevelDBChainQuery is a mempool.ChainQuery implementation storing one
// confirmed, still-unspent output per key.  Whatever maintains chain-tip
// state (a block indexer outside this package's scope) is responsible for
// inserting outputs as they confirm and deleting them as they're spent;
// this type only ever reads.
type LevelDBChainQuery struct {
	db *leveldb.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*LevelDBChainQuery, er.R) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, er.E(err)
	}
	return &LevelDBChainQuery{db: db}, nil
}

// Close releases the underlying database handle.
func (c *LevelDBChainQuery) Close() er.R {
	if err := c.db.Close(); err != nil {
		return er.E(err)
	}
	return nil
}

// Put records a confirmed, spendable output. Called by the chain-tip
// maintainer, never by the mempool core.
func (c *LevelDBChainQuery) Put(op wire.OutPoint, out *wire.TxOut) er.R {
	var buf bytes.Buffer
	if err := out.Serialize(&buf); err != nil {
		return err
	}
	if err := c.db.Put(outpointKey(op), buf.Bytes(), nil); err != nil {
		return er.E(err)
	}
	return nil
}

// Delete removes an output, typically because it has just been spent in a
// confirmed block.
func (c *LevelDBChainQuery) Delete(op wire.OutPoint) er.R {
	if err := c.db.Delete(outpointKey(op), nil); err != nil {
		return er.E(err)
	}
	return nil
}

// LookupAvailableTxos resolves as many of ops as are present in the
// confirmed set; outpoints not found (already spent, never confirmed, or
// themselves still unconfirmed) are simply absent from the result, per the
// mempool.ChainQuery contract.
func (c *LevelDBChainQuery) LookupAvailableTxos(ops []wire.OutPoint) (map[wire.OutPoint]*wire.TxOut, er.R) {
	out := make(map[wire.OutPoint]*wire.TxOut, len(ops))
	for _, op := range ops {
		val, err := c.db.Get(outpointKey(op), nil)
		if err != nil {
			if err == leveldb.ErrNotFound {
				continue
			}
			return nil, er.E(err)
		}
		txo, errr := wire.DeserializeTxOut(bytes.NewReader(val))
		if errr != nil {
			return nil, errr
		}
		out[op] = txo
	}
	return out, nil
}

func outpointKey(op wire.OutPoint) []byte {
	key := make([]byte, chainhash.HashSize+4)
	copy(key, op.Hash[:])
	binary.LittleEndian.PutUint32(key[chainhash.HashSize:], op.Index)
	return key
}
