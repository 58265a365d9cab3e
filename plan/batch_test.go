package plan

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/pqe369/qcgen/probe"
)

func TestBatchRotation(t *testing.T) {
	assert := require.New(t)

	circuits, err := Batch(rand.New(rand.NewSource(1)), 12)
	assert.NoError(err)
	assert.Len(circuits, 12)

	assert.Len(probe.Types(), 8)
	for i, c := range circuits {
		assert.NoError(c.Validate())
		assert.NotNil(c.Batch, "circuit %d", i)
		assert.Equal(i+1, c.Batch.ID, "circuit %d", i)
		assert.Equal(12, c.Batch.Total, "circuit %d", i)
		assert.Equal("enhanced", c.Batch.Generation, "circuit %d", i)
	}

	// position i mod 8 selects the type: position 3 is the
	// non-commutativity circuit, position 11 wraps back to position 3's type
	assert.Equal("non_commutativity", circuits[3].TestType)
	assert.Equal("non_commutativity", circuits[11].TestType)
	assert.Contains(circuits[4].Description, "Shor")
	assert.Contains(circuits[8].Description, "Randomness")
}

func TestBatchReproducible(t *testing.T) {
	assert := require.New(t)

	a, err := Batch(rand.New(rand.NewSource(42)), 16)
	assert.NoError(err)
	b, err := Batch(rand.New(rand.NewSource(42)), 16)
	assert.NoError(err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same master seed produced different batches (-a +b):\n%s", diff)
	}
}

func TestBatchEmpty(t *testing.T) {
	assert := require.New(t)

	circuits, err := Batch(rand.New(rand.NewSource(1)), 0)
	assert.NoError(err)
	assert.Empty(circuits)
}
