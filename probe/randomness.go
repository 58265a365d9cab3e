package probe

import (
	"fmt"
	"math"

	"github.com/pqe369/qcgen/circuit"
	"github.com/pqe369/qcgen/logger"
)

// Randomness builds a circuit probing the statistical randomness of a
// ciphertext sample. The qubit count follows the sample length
// (clamp(len mod 6, 2, 5)); sample bytes drive per-qubit phase rotations in
// [0, 2π). Deterministic given the sample, seed included.
func Randomness(sample []byte) (*circuit.Circuit, error) {
	if len(sample) == 0 {
		return nil, fmt.Errorf("randomness: %w", ErrEmptyInput)
	}

	seed, fragment := digest(sample)
	n := clamp(len(sample)%6, 2, 5)

	c := &circuit.Circuit{
		NumQubits:   n,
		Description: "PQE-369 Enhanced Randomness Test Circuit",
		Seed:        seed,
		Digest:      &circuit.DigestInfo{Fragment: fragment},
		Improvements: []string{
			"phase_rotations",
			"toffoli_entanglement",
			"reverse_operations",
		},
	}

	for i := 0; i < n; i++ {
		c.Append(circuit.H(i))
	}
	for i := 0; i < n-1; i++ {
		c.Append(circuit.CX(i, i+1))
	}
	for i := 0; i < n; i++ {
		c.Append(circuit.RZ(i, byteAngle(sample[i%len(sample)], 2*math.Pi)))
	}

	// deeper entanglement only once three qubits are available
	if n >= 3 {
		c.Append(circuit.CCX(0, 1, 2), circuit.CX(2, 0))
	}

	for i := 0; i < n; i++ {
		c.Append(circuit.Measure(i))
	}

	log := logger.Logger()
	log.Debug().Int("qubits", n).Int("gates", len(c.Gates)).Str("fragment", fragment).Msg("built randomness circuit")
	return c, nil
}
