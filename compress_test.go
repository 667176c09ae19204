package md5

import (
	"encoding/hex"
	"testing"

	"github.com/zeebo/assert"

	"github.com/hexsum/md5/internal/consts"
	"github.com/hexsum/md5/internal/utils"
)

// compress returns the raw post-round tuple, not the next running
// state. Reconstructing a known digest by hand catches a port that
// substitutes the output for the state instead of adding it.
func TestCompressFeedForward(t *testing.T) {
	m := pad(nil)
	assert.Equal(t, BlockSize, len(m))

	var block [16]uint32
	utils.BytesToWords((*[BlockSize]byte)(m), &block)

	ra, rb, rc, rd := compress(&block, consts.IV0, consts.IV1, consts.IV2, consts.IV3)

	// The tuple alone is not the digest state.
	state := [4]uint32{
		consts.IV0 + ra,
		consts.IV1 + rb,
		consts.IV2 + rc,
		consts.IV3 + rd,
	}

	var out [Size]byte
	utils.WordsToBytes(&state, &out)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", hex.EncodeToString(out[:]))
}

// A two-block message only hashes correctly if the second block is
// seeded with the accumulated state and accumulated again afterwards.
func TestCompressChaining(t *testing.T) {
	data := make([]byte, 2*BlockSize)
	for i := range data {
		data[i] = byte(i)
	}

	m := pad(data)
	assert.Equal(t, 3*BlockSize, len(m))

	a := uint32(consts.IV0)
	b := uint32(consts.IV1)
	c := uint32(consts.IV2)
	d := uint32(consts.IV3)
	var block [16]uint32
	for off := 0; off < len(m); off += BlockSize {
		utils.BytesToWords((*[BlockSize]byte)(m[off:off+BlockSize]), &block)
		ra, rb, rc, rd := compress(&block, a, b, c, d)
		a, b, c, d = a+ra, b+rb, c+rc, d+rd
	}

	var out [Size]byte
	utils.WordsToBytes(&[4]uint32{a, b, c, d}, &out)
	assert.Equal(t, Sum(data), out)
}
