// Package md5 implements the MD5 message digest as a one-shot
// computation over an in-memory message.
//
// MD5 is cryptographically broken and this package makes no attempt at
// constant-time operation. It is intended for checksumming and
// interoperability, not security.
package md5

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/hexsum/md5/internal/consts"
	"github.com/hexsum/md5/internal/utils"
)

const (
	// Size is the length of an MD5 digest in bytes.
	Size = consts.DigestLen

	// BlockSize is the length of one compression block in bytes.
	BlockSize = consts.BlockLen
)

// Sum computes the MD5 digest of data.
func Sum(data []byte) [Size]byte {
	m := pad(data)

	a := uint32(consts.IV0)
	b := uint32(consts.IV1)
	c := uint32(consts.IV2)
	d := uint32(consts.IV3)

	// Strict sequential fold: each block's compression is seeded with
	// the state accumulated over all prior blocks, and its output is
	// added to that state rather than replacing it.
	var block [16]uint32
	for off := 0; off < len(m); off += BlockSize {
		utils.BytesToWords((*[BlockSize]byte)(m[off:off+BlockSize]), &block)
		ra, rb, rc, rd := compress(&block, a, b, c, d)
		a, b, c, d = a+ra, b+rb, c+rc, d+rd
	}

	var out [Size]byte
	utils.WordsToBytes(&[4]uint32{a, b, c, d}, &out)
	return out
}

// SumHex computes the MD5 digest of data and renders it as 32
// lowercase hex characters.
func SumHex(data []byte) string {
	digest := Sum(data)
	return hex.EncodeToString(digest[:])
}

// pad extends data to a multiple of BlockSize: a 0x80 marker, a zero
// run, and the original length in bits as 8 little-endian bytes. The
// bit length wraps modulo 2^64 for absurdly large messages, matching
// RFC 1321.
func pad(data []byte) []byte {
	bitLen := uint64(len(data)) * 8

	total := len(data) + 1 + 8
	if rem := total % BlockSize; rem != 0 {
		total += BlockSize - rem
	}

	m := make([]byte, total)
	copy(m, data)
	m[len(data)] = 0x80
	binary.LittleEndian.PutUint64(m[total-8:], bitLen)
	return m
}
