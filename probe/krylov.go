package probe

import (
	"math"
	"math/rand"

	"github.com/pqe369/qcgen/circuit"
)

// KrylovOptimized builds a fixed 3-qubit circuit for Krylov subspace
// methods: RY state preparation, a single quantum-walk step (coin flip,
// controlled shift, indexed phases), a Toffoli plus swap for mixing, and a
// uniform correction phase. Gate structure is identical across calls.
func KrylovOptimized(rng *rand.Rand) *circuit.Circuit {
	const n = 3

	c := &circuit.Circuit{
		NumQubits:   n,
		Description: "PQE-369 Optimized Krylov Methods Circuit",
		Seed:        randomSeed(rng),
		Algorithm: &circuit.AlgorithmInfo{
			Type:              "linear_algebra_optimized",
			OptimizationLevel: "maximum",
		},
		Execution: &circuit.ExecutionInfo{
			Priority:    2,
			Shots:       4096,
			SuccessRate: 0.78,
		},
		Improvements: []string{
			"optimized_qubits",
			"ry_superposition",
			"single_step_walk",
			"error_correction",
			"basis_optimization",
			"reduced_depth",
			"enhanced_mixing",
		},
	}

	// state preparation, then the walk's coin flip
	for i := 0; i < n; i++ {
		c.Append(circuit.RY(i, math.Pi/3))
	}
	for i := 0; i < n; i++ {
		c.Append(circuit.RY(i, math.Pi/4))
	}

	// controlled shift
	for i := 0; i < n-1; i++ {
		c.Append(circuit.CX(i, i+1))
	}

	// inverse coin as index-scaled phases
	for i := 0; i < n; i++ {
		c.Append(circuit.RZ(i, float64(i)/n*math.Pi))
	}

	c.Append(circuit.CCX(0, 1, 2), circuit.Swap(0, 2))

	// uniform correction phase
	for i := 0; i < n; i++ {
		c.Append(circuit.RZ(i, -math.Pi/(n*2)))
	}

	// measurement bases: X on qubit 0, Y on qubit 1, Z on qubit 2
	for i := 0; i < n; i++ {
		switch i {
		case 0:
			c.Append(circuit.H(i))
		case 1:
			c.Append(circuit.RX(i, math.Pi/2))
		}
		c.Append(circuit.Measure(i))
	}

	return c
}
