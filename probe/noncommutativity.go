package probe

import (
	"math/rand"

	"github.com/pqe369/qcgen/circuit"
)

// NonCommutativity builds a fixed 3-qubit circuit applying the same gate
// set in two distinct orderings; the divergence between the two orderings
// is what makes the test meaningful. Gate structure is identical across
// calls.
func NonCommutativity(rng *rand.Rand) *circuit.Circuit {
	const n = 3

	c := &circuit.Circuit{
		NumQubits:   n,
		Description: "PQE-369 Non-Commutativity Test Circuit",
		Seed:        randomSeed(rng),
		TestType:    "non_commutativity",
	}

	for i := 0; i < n; i++ {
		c.Append(circuit.H(i))
	}

	// first ordering
	c.Append(circuit.CX(0, 1), circuit.CX(1, 2), circuit.CCX(0, 1, 2))
	// same operations, reversed roles
	c.Append(circuit.CX(2, 0), circuit.CCX(2, 1, 0))

	for i := 0; i < n; i++ {
		c.Append(circuit.Measure(i))
	}

	return c
}
