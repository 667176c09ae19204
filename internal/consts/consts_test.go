package consts

import (
	"math"
	"testing"

	"github.com/zeebo/assert"
)

func TestKSineDerivation(t *testing.T) {
	for i := range K {
		exp := uint32(math.Floor(math.Abs(math.Sin(float64(i+1))) * (1 << 32)))
		assert.Equal(t, exp, K[i])
	}
}

func TestSQuartileCycle(t *testing.T) {
	for i := range S {
		assert.Equal(t, S[i%4+i/16*16], S[i])
		assert.That(t, S[i] >= 1 && S[i] <= 31)
	}
}
