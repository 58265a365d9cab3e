package probe

import (
	"math"
	"math/rand"

	"github.com/pqe369/qcgen/circuit"
)

// ShorOptimized builds a fixed 4-qubit period-finding circuit for the given
// modulus and base. The modular-exponentiation step is encoded as per-qubit
// controlled phases on the last qubit, followed by an inverse-QFT-style
// controlled-phase ladder. Gate structure is identical across calls; only
// the seed field varies.
//
// target and base are accepted without validation; the plans always pass
// (15, 2).
func ShorOptimized(rng *rand.Rand, target, base int) *circuit.Circuit {
	const n = 4

	c := &circuit.Circuit{
		NumQubits:   n,
		Description: "PQE-369 Optimized Shor's Algorithm Circuit",
		Seed:        randomSeed(rng),
		Algorithm: &circuit.AlgorithmInfo{
			Type:              "period_finding_optimized",
			OptimizationLevel: "maximum",
			TargetNumber:      target,
			Base:              base,
		},
		Execution: &circuit.ExecutionInfo{
			Priority:    1,
			Shots:       8192,
			SuccessRate: 0.85,
		},
		Improvements: []string{
			"phase_pre_rotation",
			"precision_angle_calc",
			"error_compensation",
			"basis_optimization",
			"reduced_depth",
			"enhanced_precision",
		},
	}

	// superposition with a small phase ahead of each H
	for i := 0; i < n; i++ {
		c.Append(circuit.RZ(i, float64(i)/n*math.Pi/8), circuit.H(i))
	}

	// modular exponentiation: base^(i+1) mod target, scaled to [0, 2π)
	for i := 0; i < n; i++ {
		r := modPow(base, i+1, target)
		c.Append(circuit.CRZ(i, n-1, float64(r)/float64(target)*2*math.Pi))
	}

	// inverse-QFT-style ladder with angles π/2^(j-i)
	for i := 0; i < n; i++ {
		c.Append(circuit.H(i))
		for j := i + 1; j < n; j++ {
			c.Append(circuit.CP(i, j, math.Pi/float64(int(1)<<(j-i))))
		}
	}

	// systematic error compensation
	for i := 0; i < n; i++ {
		c.Append(circuit.RZ(i, -math.Pi/(n*4)))
	}

	// X-basis measurement on even qubits
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			c.Append(circuit.H(i))
		}
		c.Append(circuit.Measure(i))
	}

	return c
}

// modPow computes base^exp mod m for non-negative exponents.
func modPow(base, exp, m int) int {
	result := 1 % m
	b := base % m
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = result * b % m
		}
		b = b * b % m
	}
	return result
}
