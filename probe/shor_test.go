package probe

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/pqe369/qcgen/circuit"
)

func TestShorOptimizedInvariants(t *testing.T) {
	assert := require.New(t)

	rng := rand.New(rand.NewSource(1))
	c := ShorOptimized(rng, 15, 2)
	assert.NoError(c.Validate())
	assert.Equal(4, c.NumQubits)

	// 4×(rz+h) + 4 crz + (4 h + 6 cp) + 4 rz + (2 h + 4 measure)
	assert.Len(c.Gates, 32)

	assert.NotNil(c.Algorithm)
	assert.Equal("period_finding_optimized", c.Algorithm.Type)
	assert.Equal(15, c.Algorithm.TargetNumber)
	assert.Equal(2, c.Algorithm.Base)
	assert.NotNil(c.Execution)
	assert.Equal(1, c.Execution.Priority)
	assert.Equal(8192, c.Execution.Shots)
	assert.InDelta(0.85, c.Execution.SuccessRate, 1e-12)
}

func TestShorOptimizedGateDeterminism(t *testing.T) {
	// different random sources must not change gate structure, only the seed
	a := ShorOptimized(rand.New(rand.NewSource(1)), 15, 2)
	b := ShorOptimized(rand.New(rand.NewSource(999)), 15, 2)

	if diff := cmp.Diff(a.Gates, b.Gates); diff != "" {
		t.Fatalf("gate structure varied with the random source (-a +b):\n%s", diff)
	}
	require.Len(t, b.Gates, len(a.Gates))
}

func TestShorOptimizedPhaseLadder(t *testing.T) {
	assert := require.New(t)

	c := ShorOptimized(rand.New(rand.NewSource(3)), 15, 2)

	var ladder []float64
	for _, g := range c.Gates {
		if g.Name == circuit.GateCP {
			ladder = append(ladder, *g.Angle)
		}
	}
	want := []float64{
		math.Pi / 2, math.Pi / 4, math.Pi / 8,
		math.Pi / 2, math.Pi / 4,
		math.Pi / 2,
	}
	assert.Len(ladder, len(want))
	for i := range want {
		assert.InDelta(want[i], ladder[i], 1e-12)
	}
}

func TestModPow(t *testing.T) {
	assert := require.New(t)

	assert.Equal(2, modPow(2, 1, 15))
	assert.Equal(4, modPow(2, 2, 15))
	assert.Equal(8, modPow(2, 3, 15))
	assert.Equal(1, modPow(2, 4, 15))
	assert.Equal(4, modPow(3, 4, 7))
	assert.Equal(1, modPow(5, 0, 3))
	assert.Equal(0, modPow(0, 3, 7))
}
