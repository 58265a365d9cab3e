package probe

import (
	"fmt"
	"math/rand"

	"github.com/pqe369/qcgen/circuit"
)

// TestType enumerates the circuit variants used by the batch rotation. Each
// value is a tagged variant carrying its own topology through Generate;
// dispatch is exhaustive over the enum, never on string identifiers.
type TestType uint8

const (
	TypeRandomnessEnhanced TestType = iota
	TypeHardening
	TypeKEMEnhanced
	TypeNonCommutativity
	TypeShorEnhanced
	TypeKrylovEnhanced
	TypeRandomness
	TypeSuperpositionImproved
)

// Types returns every test type in batch-rotation order.
func Types() []TestType {
	return []TestType{
		TypeRandomnessEnhanced,
		TypeHardening,
		TypeKEMEnhanced,
		TypeNonCommutativity,
		TypeShorEnhanced,
		TypeKrylovEnhanced,
		TypeRandomness,
		TypeSuperpositionImproved,
	}
}

func (t TestType) String() string {
	switch t {
	case TypeRandomnessEnhanced:
		return "randomness_enhanced"
	case TypeHardening:
		return "hardening"
	case TypeKEMEnhanced:
		return "kem_enhanced"
	case TypeNonCommutativity:
		return "non_commutativity"
	case TypeShorEnhanced:
		return "shors_enhanced"
	case TypeKrylovEnhanced:
		return "krylov_enhanced"
	case TypeRandomness:
		return "randomness"
	case TypeSuperpositionImproved:
		return "superposition_improved"
	}
	return "unknown"
}

// Generate builds a fresh circuit of this type, drawing any byte samples
// the builder needs from rng: 32 bytes for enhanced randomness, 64 for
// hardening, 128+64 for KEM, 16 for the plain randomness comparison run.
func (t TestType) Generate(rng *rand.Rand) (*circuit.Circuit, error) {
	switch t {
	case TypeRandomnessEnhanced:
		return Randomness(randomBytes(rng, 32))
	case TypeHardening:
		return Hardening(randomBytes(rng, 64))
	case TypeKEMEnhanced:
		return KEMProperties(randomBytes(rng, 128), randomBytes(rng, 64))
	case TypeNonCommutativity:
		return NonCommutativity(rng), nil
	case TypeShorEnhanced:
		return ShorOptimized(rng, 15, 2), nil
	case TypeKrylovEnhanced:
		return KrylovOptimized(rng), nil
	case TypeRandomness:
		return Randomness(randomBytes(rng, 16))
	case TypeSuperpositionImproved:
		return SuperpositionOptimized(rng), nil
	}
	return nil, fmt.Errorf("unknown test type %d", t)
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}
