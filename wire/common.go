// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkt-cash/memindex/btcutil/er"
)

var littleEndian = binary.LittleEndian

// MaxVarIntPayload is the maximum payload size for a variable length integer.
const MaxVarIntPayload = 9

// MaxMessagePayload guards reads of variable length byte arrays against
// memory exhaustion from malformed input.
const MaxMessagePayload = 32 * 1024 * 1024

// ReadVarInt reads a variable length integer from r and returns it as a
// uint64.
func ReadVarInt(r io.Reader) (uint64, er.R) {
	var b [9]byte
	if _, err := io.ReadFull(r, b[:1]); err != nil {
		return 0, er.E(err)
	}

	switch b[0] {
	case 0xff:
		if _, err := io.ReadFull(r, b[1:9]); err != nil {
			return 0, er.E(err)
		}
		return littleEndian.Uint64(b[1:9]), nil
	case 0xfe:
		if _, err := io.ReadFull(r, b[1:5]); err != nil {
			return 0, er.E(err)
		}
		return uint64(littleEndian.Uint32(b[1:5])), nil
	case 0xfd:
		if _, err := io.ReadFull(r, b[1:3]); err != nil {
			return 0, er.E(err)
		}
		return uint64(littleEndian.Uint16(b[1:3])), nil
	default:
		return uint64(b[0]), nil
	}
}

// WriteVarInt serializes val to w using a variable number of bytes depending
// on its value.
func WriteVarInt(w io.Writer, val uint64) er.R {
	if val < 0xfd {
		_, err := w.Write([]byte{byte(val)})
		return er.E(err)
	}
	if val <= math.MaxUint16 {
		var b [3]byte
		b[0] = 0xfd
		littleEndian.PutUint16(b[1:], uint16(val))
		_, err := w.Write(b[:])
		return er.E(err)
	}
	if val <= math.MaxUint32 {
		var b [5]byte
		b[0] = 0xfe
		littleEndian.PutUint32(b[1:], uint32(val))
		_, err := w.Write(b[:])
		return er.E(err)
	}
	var b [9]byte
	b[0] = 0xff
	littleEndian.PutUint64(b[1:], val)
	_, err := w.Write(b[:])
	return er.E(err)
}

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	if val < 0xfd {
		return 1
	}
	if val <= math.MaxUint16 {
		return 3
	}
	if val <= math.MaxUint32 {
		return 5
	}
	return 9
}

// ReadVarBytes reads a variable length byte array.  maxAllowed bounds the
// length to protect against memory exhaustion from malformed input.
func ReadVarBytes(r io.Reader, maxAllowed uint32, fieldName string) ([]byte, er.R) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if count > uint64(maxAllowed) {
		return nil, er.Errorf("%s is larger than the max allowed size [count %d, max %d]",
			fieldName, count, maxAllowed)
	}
	b := make([]byte, count)
	if _, errr := io.ReadFull(r, b); errr != nil {
		return nil, er.E(errr)
	}
	return b, nil
}

// WriteVarBytes serializes a variable length byte array to w as a varint
// containing the number of bytes, followed by the bytes themselves.
func WriteVarBytes(w io.Writer, b []byte) er.R {
	if err := WriteVarInt(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return er.E(err)
}

func readUint32(r io.Reader) (uint32, er.R) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, er.E(err)
	}
	return littleEndian.Uint32(b[:]), nil
}

func writeUint32(w io.Writer, v uint32) er.R {
	var b [4]byte
	littleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return er.E(err)
}

func readInt64(r io.Reader) (int64, er.R) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, er.E(err)
	}
	return int64(littleEndian.Uint64(b[:])), nil
}

func writeInt64(w io.Writer, v int64) er.R {
	var b [8]byte
	littleEndian.PutUint64(b[:], uint64(v))
	_, err := w.Write(b[:])
	return er.E(err)
}
