package probe

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/pqe369/qcgen/circuit"
)

func TestHardeningStructure(t *testing.T) {
	assert := require.New(t)

	// len 4 -> clamp(4 mod 9, 3, 8) == 4 qubits
	c, err := Hardening([]byte("abcd"))
	assert.NoError(err)
	assert.NoError(c.Validate())
	assert.Equal(4, c.NumQubits)

	counts := c.GateCounts()
	n := c.NumQubits
	assert.Equal(n, counts[circuit.GateH])
	assert.Equal(2*(n-1), counts[circuit.GateCX]) // forward chain + reversed chain
	assert.Equal(n-2, counts[circuit.GateCCX])    // all consecutive Toffolis
	assert.Equal(n, counts[circuit.GateMeasure])
	assert.Zero(counts[circuit.GateRZ]) // no data-derived phases in this builder
}

func TestHardeningDeterminism(t *testing.T) {
	assert := require.New(t)

	a, err := Hardening([]byte("hardened ciphertext"))
	assert.NoError(err)
	b, err := Hardening([]byte("hardened ciphertext"))
	assert.NoError(err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("identical inputs produced different circuits (-a +b):\n%s", diff)
	}
}

func TestHardeningEmptyInput(t *testing.T) {
	assert := require.New(t)

	_, err := Hardening(nil)
	assert.True(errors.Is(err, ErrEmptyInput))
}

func TestHardeningProps(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("qubit count in [3,8] and circuit valid for any non-empty sample", prop.ForAll(
		func(sample []byte) bool {
			c, err := Hardening(sample)
			if err != nil {
				return false
			}
			if c.NumQubits < 3 || c.NumQubits > 8 {
				return false
			}
			return c.Validate() == nil && anglesWithin(c, 2*math.Pi)
		},
		gen.SliceOf(gen.UInt8()).SuchThat(func(b []byte) bool { return len(b) > 0 }),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
