package probe

import (
	"math"
	"math/rand"

	"github.com/pqe369/qcgen/circuit"
)

// SuperpositionOptimized builds a fixed 3-qubit superposition-coherence
// circuit: heterogeneous state preparation (RY, RX, H), a GHZ-like CX
// chain, 120°-spaced phases, a controlled-phase mesh over all pairs, a
// mitigation phase and per-qubit X/Y/Z measurement bases. Gate structure is
// identical across calls.
func SuperpositionOptimized(rng *rand.Rand) *circuit.Circuit {
	const n = 3

	c := &circuit.Circuit{
		NumQubits:   n,
		Description: "PQE-369 Optimized Superposition Coherence Circuit",
		Seed:        randomSeed(rng),
		TestType:    "superposition_optimized",
		Algorithm: &circuit.AlgorithmInfo{
			OptimizationLevel: "maximum",
		},
		Execution: &circuit.ExecutionInfo{
			Priority:    3,
			Shots:       8192,
			SuccessRate: 0.82,
		},
		Improvements: []string{
			"ghz_state_preparation",
			"optimal_phase_angles",
			"error_mitigation",
			"multi_basis_measurement",
			"enhanced_interference",
			"coherence_optimization",
		},
	}

	// heterogeneous state preparation
	c.Append(circuit.RY(0, math.Pi/2), circuit.RX(1, math.Pi/2), circuit.H(2))

	// GHZ-like chain
	c.Append(circuit.CX(0, 1), circuit.CX(1, 2))

	// 120° phase spacing
	for i := 0; i < n; i++ {
		c.Append(circuit.RZ(i, float64(i)*2*math.Pi/3))
	}

	// controlled-phase mesh over all pairs
	c.Append(
		circuit.CP(0, 1, math.Pi/4),
		circuit.CP(1, 2, math.Pi/4),
		circuit.CP(0, 2, math.Pi/4),
	)

	// dephasing mitigation
	for i := 0; i < n; i++ {
		c.Append(circuit.RZ(i, -math.Pi/(n*3)))
	}

	// X, Y, Z measurement bases
	c.Append(circuit.H(0), circuit.Measure(0))
	c.Append(circuit.RX(1, math.Pi/2), circuit.Measure(1))
	c.Append(circuit.Measure(2))

	return c
}
