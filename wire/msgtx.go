// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/pkt-cash/memindex/btcutil/er"
	"github.com/pkt-cash/memindex/chainhash"
)

// witnessMarkerFlag is the sentinel byte pair that, when it appears directly
// after the version field, signals that the transaction carries witness
// data, exactly as in the segwit wire format.
const (
	witnessMarker = 0x00
	witnessFlag   = 0x01
)

// MaxTxInSequenceNum is the maximum sequence number the sequence field of a
// transaction input can be.
const MaxTxInSequenceNum uint32 = 0xffffffff

// witnessScaleFactor is the number of weight units a non-witness byte counts
// for relative to a witness byte, per BIP 141.
const witnessScaleFactor = 4

// OutPoint defines a bitcoin data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new bitcoin transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	return o.Hash.String() + ":" + itoa(o.Index)
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// IsCoinBaseSentinel reports whether the outpoint is the null outpoint used
// by coinbase inputs: an all-zero hash and an index of 0xffffffff.  A
// coinbase sentinel never has a real prevout to resolve.
func (o OutPoint) IsCoinBaseSentinel() bool {
	return o.Index == MaxTxInSequenceNum && o.Hash == (chainhash.Hash{})
}

// TxIn defines a bitcoin transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Witness          [][]byte
	Sequence         uint32
}

// HasPrevout reports whether this input references a real previous output
// that must be resolved, as opposed to the coinbase sentinel.
func (t *TxIn) HasPrevout() bool {
	return !t.PreviousOutPoint.IsCoinBaseSentinel()
}

// SerializeSize returns the number of bytes it would take to serialize the
// input, not including any witness data.
func (t *TxIn) SerializeSize() int {
	return chainhash.HashSize + 4 + VarIntSerializeSize(uint64(len(t.SignatureScript))) +
		len(t.SignatureScript) + 4
}

// TxOut defines a bitcoin transaction output.  ExtraData carries the opaque
// per-output bytes used by chain variants that attach extended data to
// outputs; it is always present, and is simply empty on variants that don't
// use it, per the Network tag rather than a build-time switch.
type TxOut struct {
	Value     int64
	PkScript  []byte
	ExtraData []byte
}

// SerializeSize returns the number of bytes it would take to serialize the
// output.
func (t *TxOut) SerializeSize() int {
	return 8 + VarIntSerializeSize(uint64(len(t.PkScript))) + len(t.PkScript) +
		VarIntSerializeSize(uint64(len(t.ExtraData))) + len(t.ExtraData)
}

// Serialize writes the output in the same form used within a transaction,
// for callers that need to persist a single TxOut on its own (e.g. a
// confirmed-UTXO index).
func (t *TxOut) Serialize(w io.Writer) er.R {
	return writeTxOut(w, t)
}

// DeserializeTxOut reads a single TxOut previously written with Serialize.
func DeserializeTxOut(r io.Reader) (*TxOut, er.R) {
	return readTxOut(r)
}

// Transaction is the decoded, in-memory form of a bitcoin transaction; it is
// the concrete type behind every txid key in the mempool aggregate.  The
// name Transaction (rather than MsgTx) reflects its use as plain data here
// rather than as a p2p protocol message.
type Transaction struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32

	cachedTxid *chainhash.Hash
}

// MsgTx is an alias kept for callers used to the btcsuite wire naming.
type MsgTx = Transaction

// hasWitness reports whether any input carries witness data.
func (msg *Transaction) hasWitness() bool {
	for _, ti := range msg.TxIn {
		if len(ti.Witness) > 0 {
			return true
		}
	}
	return false
}

// TxHash computes the double sha256 hash of the non-witness serialization
// of the transaction, caching the result.  This is the transaction's txid.
func (msg *Transaction) TxHash() chainhash.Hash {
	if msg.cachedTxid != nil {
		return *msg.cachedTxid
	}
	var buf bytes.Buffer
	_ = msg.serialize(&buf, false)
	h := chainhash.DoubleHashH(buf.Bytes())
	msg.cachedTxid = &h
	return h
}

// Txid is an alias for TxHash matching the ChainCodec naming in the
// indexing layer.
func (msg *Transaction) Txid() chainhash.Hash {
	return msg.TxHash()
}

// Serialize encodes the transaction, including witness data if present, to
// w.
func (msg *Transaction) Serialize(w io.Writer) er.R {
	return msg.serialize(w, msg.hasWitness())
}

// SerializeNoWitness encodes the transaction using the legacy, pre-segwit
// wire format; this is the form that is hashed to produce the txid.
func (msg *Transaction) SerializeNoWitness(w io.Writer) er.R {
	return msg.serialize(w, false)
}

func (msg *Transaction) serialize(w io.Writer, witness bool) er.R {
	if err := writeUint32(w, uint32(msg.Version)); err != nil {
		return err
	}
	if witness {
		if _, err := w.Write([]byte{witnessMarker, witnessFlag}); err != nil {
			return er.E(err)
		}
	}
	if err := WriteVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeTxIn(w, ti); err != nil {
			return err
		}
	}
	if err := WriteVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := writeTxOut(w, to); err != nil {
			return err
		}
	}
	if witness {
		for _, ti := range msg.TxIn {
			if err := WriteVarInt(w, uint64(len(ti.Witness))); err != nil {
				return err
			}
			for _, item := range ti.Witness {
				if err := WriteVarBytes(w, item); err != nil {
					return err
				}
			}
		}
	}
	return writeUint32(w, msg.LockTime)
}

func writeTxIn(w io.Writer, ti *TxIn) er.R {
	if _, err := w.Write(ti.PreviousOutPoint.Hash[:]); err != nil {
		return er.E(err)
	}
	if err := writeUint32(w, ti.PreviousOutPoint.Index); err != nil {
		return err
	}
	if err := WriteVarBytes(w, ti.SignatureScript); err != nil {
		return err
	}
	return writeUint32(w, ti.Sequence)
}

func writeTxOut(w io.Writer, to *TxOut) er.R {
	if err := writeInt64(w, to.Value); err != nil {
		return err
	}
	if err := WriteVarBytes(w, to.PkScript); err != nil {
		return err
	}
	return WriteVarBytes(w, to.ExtraData)
}

// Deserialize decodes a transaction, including optional witness data, from
// r.
func Deserialize(r io.Reader) (*Transaction, er.R) {
	msg := &Transaction{}
	version, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	msg.Version = int32(version)

	var marker [1]byte
	if _, errr := io.ReadFull(r, marker[:]); errr != nil {
		return nil, er.E(errr)
	}
	witness := false
	count := uint64(marker[0])
	if marker[0] == witnessMarker {
		var flag [1]byte
		if _, errr := io.ReadFull(r, flag[:]); errr != nil {
			return nil, er.E(errr)
		}
		if flag[0] != witnessFlag {
			return nil, er.Errorf("invalid witness flag %x", flag[0])
		}
		witness = true
		count, err = ReadVarInt(r)
		if err != nil {
			return nil, err
		}
	} else {
		// the byte already consumed was the first byte of the varint;
		// re-derive the full count by pushing it back through a small
		// buffer reader.
		r = io.MultiReader(bytes.NewReader(marker[:]), r)
		count, err = ReadVarInt(r)
		if err != nil {
			return nil, err
		}
	}

	msg.TxIn = make([]*TxIn, count)
	for i := range msg.TxIn {
		ti, err := readTxIn(r)
		if err != nil {
			return nil, err
		}
		msg.TxIn[i] = ti
	}

	outCount, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	msg.TxOut = make([]*TxOut, outCount)
	for i := range msg.TxOut {
		to, err := readTxOut(r)
		if err != nil {
			return nil, err
		}
		msg.TxOut[i] = to
	}

	if witness {
		for _, ti := range msg.TxIn {
			witCount, err := ReadVarInt(r)
			if err != nil {
				return nil, err
			}
			ti.Witness = make([][]byte, witCount)
			for j := range ti.Witness {
				item, err := ReadVarBytes(r, MaxMessagePayload, "witness item")
				if err != nil {
					return nil, err
				}
				ti.Witness[j] = item
			}
		}
	}

	lockTime, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	msg.LockTime = lockTime

	return msg, nil
}

func readTxIn(r io.Reader) (*TxIn, er.R) {
	ti := &TxIn{}
	if _, err := io.ReadFull(r, ti.PreviousOutPoint.Hash[:]); err != nil {
		return nil, er.E(err)
	}
	idx, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	ti.PreviousOutPoint.Index = idx
	sigScript, err := ReadVarBytes(r, MaxMessagePayload, "signature script")
	if err != nil {
		return nil, err
	}
	ti.SignatureScript = sigScript
	seq, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	ti.Sequence = seq
	return ti, nil
}

func readTxOut(r io.Reader) (*TxOut, er.R) {
	to := &TxOut{}
	val, err := readInt64(r)
	if err != nil {
		return nil, err
	}
	to.Value = val
	pkScript, err := ReadVarBytes(r, MaxMessagePayload, "pk script")
	if err != nil {
		return nil, err
	}
	to.PkScript = pkScript
	extraData, err := ReadVarBytes(r, MaxMessagePayload, "extra data")
	if err != nil {
		return nil, err
	}
	to.ExtraData = extraData
	return to, nil
}

// BaseSize returns the serialized size of the transaction without any
// witness data.
func (msg *Transaction) BaseSize() int {
	var buf bytes.Buffer
	_ = msg.serialize(&buf, false)
	return buf.Len()
}

// TotalSize returns the serialized size of the transaction including
// witness data, if any.
func (msg *Transaction) TotalSize() int {
	var buf bytes.Buffer
	_ = msg.serialize(&buf, msg.hasWitness())
	return buf.Len()
}

// Weight computes the transaction weight as defined by BIP 141:
// base size * 3 + total size.  Non-segwit transactions have weight equal to
// four times their size.
func (msg *Transaction) Weight() int {
	return msg.BaseSize()*(witnessScaleFactor-1) + msg.TotalSize()
}

// VSize returns the virtual size of the transaction: ceil(weight / 4).
func (msg *Transaction) VSize() int {
	w := msg.Weight()
	return (w + witnessScaleFactor - 1) / witnessScaleFactor
}
