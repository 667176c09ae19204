package md5

import (
	"math/bits"

	"github.com/hexsum/md5/internal/consts"
)

// compress runs the 64-round MD5 compression of one block against the
// entering state (a, b, c, d). The returned tuple is the state after
// round 63 only; the caller must add it, word-wise mod 2^32, to the
// entering state (Davies-Meyer feed-forward).
func compress(m *[16]uint32, a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	for i := 0; i < 64; i++ {
		var f, x uint32
		switch {
		case i < 16:
			f = (b & c) | (^b & d)
			x = m[i]
		case i < 32:
			f = (d & b) | (^d & c)
			x = m[(5*i+1)%16]
		case i < 48:
			f = b ^ c ^ d
			x = m[(3*i+5)%16]
		default:
			f = c ^ (b | ^d)
			x = m[(7*i)%16]
		}
		a, b, c, d = d, bits.RotateLeft32(f+a+x+consts.K[i], consts.S[i])+b, b, c
	}
	return a, b, c, d
}
