package probe

import (
	"fmt"
	"math"

	"github.com/pqe369/qcgen/circuit"
	"github.com/pqe369/qcgen/logger"
)

// KEMProperties builds a fixed 5-qubit circuit probing key/ciphertext
// correlations of the KEM under test. The concatenation of publicKey and
// ciphertext drives per-qubit phases both before and after the entangling
// layer; the concatenation must be non-empty.
func KEMProperties(publicKey, ciphertext []byte) (*circuit.Circuit, error) {
	combined := make([]byte, 0, len(publicKey)+len(ciphertext))
	combined = append(combined, publicKey...)
	combined = append(combined, ciphertext...)
	if len(combined) == 0 {
		return nil, fmt.Errorf("kem: %w", ErrEmptyInput)
	}

	seed, fragment := digest(combined)
	const n = 5

	c := &circuit.Circuit{
		NumQubits:   n,
		Description: "PQE-369 Enhanced KEM Properties Test Circuit",
		Seed:        seed,
		Digest:      &circuit.DigestInfo{Fragment: fragment},
		Improvements: []string{
			"phase_relationships",
			"multi_control",
			"cross_correlation",
			"basis_changes",
		},
	}

	// superposition with data-derived pre-phases
	for i := 0; i < n; i++ {
		c.Append(circuit.H(i))
		c.Append(circuit.RZ(i, byteAngle(combined[i%len(combined)], math.Pi/4)))
	}

	// key-to-ciphertext entanglement, then cross-correlation both ways
	c.Append(circuit.CX(0, 2), circuit.CX(1, 3), circuit.CCX(0, 1, 4))
	c.Append(circuit.CX(2, 3), circuit.CX(3, 2))

	// data-derived post-phases, strided through the combined sample
	for i := 0; i < n; i++ {
		c.Append(circuit.RZ(i, byteAngle(combined[(i*7)%len(combined)], 2*math.Pi)))
	}

	// even qubits measured in the X basis
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			c.Append(circuit.H(i))
		}
		c.Append(circuit.Measure(i))
	}

	log := logger.Logger()
	log.Debug().Int("gates", len(c.Gates)).Str("fragment", fragment).Msg("built kem circuit")
	return c, nil
}
