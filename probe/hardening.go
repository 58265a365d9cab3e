package probe

import (
	"fmt"

	"github.com/pqe369/qcgen/circuit"
	"github.com/pqe369/qcgen/logger"
)

// Hardening builds a circuit probing the hardening layer of the system
// under test. It uses more qubits than Randomness (clamp(len mod 9, 3, 8))
// and a denser entangling structure: a forward CX chain, every consecutive
// Toffoli, then a reversed CX chain.
func Hardening(sample []byte) (*circuit.Circuit, error) {
	if len(sample) == 0 {
		return nil, fmt.Errorf("hardening: %w", ErrEmptyInput)
	}

	seed, fragment := digest(sample)
	n := clamp(len(sample)%9, 3, 8)

	c := &circuit.Circuit{
		NumQubits:   n,
		Description: "PQE-369 Hardening Resistance Test Circuit",
		Seed:        seed,
		Digest:      &circuit.DigestInfo{Fragment: fragment},
	}

	for i := 0; i < n; i++ {
		c.Append(circuit.H(i))
	}
	for i := 0; i < n-1; i++ {
		c.Append(circuit.CX(i, i+1))
	}
	for i := 0; i < n-2; i++ {
		c.Append(circuit.CCX(i, i+1, i+2))
	}
	for i := 0; i < n-1; i++ {
		c.Append(circuit.CX((i+1)%n, i))
	}
	for i := 0; i < n; i++ {
		c.Append(circuit.Measure(i))
	}

	log := logger.Logger()
	log.Debug().Int("qubits", n).Int("gates", len(c.Gates)).Str("fragment", fragment).Msg("built hardening circuit")
	return c, nil
}
