package probe

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pqe369/qcgen/circuit"
)

// anglesWithin reports whether every parametric gate's angle lies in
// [-bound, bound].
func anglesWithin(c *circuit.Circuit, bound float64) bool {
	const eps = 1e-9
	for _, g := range c.Gates {
		if g.Angle == nil {
			continue
		}
		if math.Abs(*g.Angle) > bound+eps {
			return false
		}
	}
	return true
}

func TestAllBuildersAngleRange(t *testing.T) {
	assert := require.New(t)

	rng := rand.New(rand.NewSource(1))
	for _, tt := range Types() {
		c, err := tt.Generate(rng)
		assert.NoError(err, "type %s", tt)
		assert.True(anglesWithin(c, 2*math.Pi), "type %s emitted an angle outside [-2π, 2π]", tt)
	}
}

func TestClamp(t *testing.T) {
	assert := require.New(t)

	assert.Equal(2, clamp(0, 2, 5))
	assert.Equal(2, clamp(2, 2, 5))
	assert.Equal(4, clamp(4, 2, 5))
	assert.Equal(5, clamp(9, 2, 5))
}

func TestRandomSeedRange(t *testing.T) {
	assert := require.New(t)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		s := randomSeed(rng)
		assert.GreaterOrEqual(s, int64(0))
		assert.Less(s, int64(1000000))
	}
}

func TestByteAngle(t *testing.T) {
	assert := require.New(t)

	assert.Zero(byteAngle(0, 2*math.Pi))
	assert.InDelta(2*math.Pi, byteAngle(255, 2*math.Pi), 1e-12)
	assert.InDelta(math.Pi/8, byteAngle(127, math.Pi/4), 1e-2)
}
