package plan

import (
	"math/rand"

	"github.com/pqe369/qcgen/circuit"
	"github.com/pqe369/qcgen/probe"
)

// Layers returns six circuits, each tagged with the conceptual security
// layer it probes, the mathematical problem behind that layer and the
// property under test. The tags are purely descriptive; no behavior
// branches on them.
func Layers(rng *rand.Rand) ([]*circuit.Circuit, error) {
	randomness, err := probe.Randomness([]byte("layer1_lwe_test"))
	if err != nil {
		return nil, err
	}
	tag(randomness, 1, "Learning With Errors (LWE)", "A × s + e = t, find s", "LWE hardness")

	shor := probe.ShorOptimized(rng, 15, 2)
	tag(shor, 1, "Learning With Errors (LWE)", "Period finding in LWE", "Shor's algorithm resistance")

	hardening, err := probe.Hardening([]byte("layer2_hardening_test"))
	if err != nil {
		return nil, err
	}
	tag(hardening, 2, "Non-Abelian Innovation", "C × M × C^(-1), find M", "Matrix conjugation hardness")

	krylov := probe.KrylovOptimized(rng)
	tag(krylov, 2, "Non-Abelian Innovation", "Linear algebra in non-abelian space", "Non-commutative properties")

	superposition := probe.SuperpositionOptimized(rng)
	tag(superposition, 2, "Non-Abelian Innovation", "Coherence in conjugated space", "Quantum interference resistance")

	kem, err := probe.KEMProperties([]byte("public_key_test"), []byte("ciphertext_test"))
	if err != nil {
		return nil, err
	}
	tag(kem, 3, "Hybrid KEM-DEM System", "Full hybrid encryption security", "CCA security + quantum resistance")

	return []*circuit.Circuit{randomness, shor, hardening, krylov, superposition, kem}, nil
}

func tag(c *circuit.Circuit, index int, name, problem, property string) {
	c.Layer = &circuit.LayerInfo{
		Index:    index,
		Name:     name,
		Problem:  problem,
		Property: property,
	}
}
