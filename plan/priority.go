// Package plan composes probe builders into ordered test plans: a
// priority-ranked sequence for constrained execution time, a mapping of
// circuits onto the security layers they probe, and a rotating batch
// generator.
package plan

import (
	"math/rand"

	"github.com/pqe369/qcgen/circuit"
	"github.com/pqe369/qcgen/logger"
	"github.com/pqe369/qcgen/probe"
)

// Priority returns the recommended execution order under a constrained time
// budget: five circuits annotated post-hoc with priority 1-5 (1 runs
// first), a shot count and a rough wall-clock estimate. The ordering is
// advisory, not a correctness requirement.
func Priority(rng *rand.Rand) ([]*circuit.Circuit, error) {
	shor := probe.ShorOptimized(rng, 15, 2)
	annotate(shor, 1, 8192, "2-3 minutes")

	krylov := probe.KrylovOptimized(rng)
	annotate(krylov, 2, 4096, "1-2 minutes")

	superposition := probe.SuperpositionOptimized(rng)
	annotate(superposition, 3, 8192, "2-3 minutes")

	randomness, err := probe.Randomness([]byte("optimized_test"))
	if err != nil {
		return nil, err
	}
	annotate(randomness, 4, 2048, "1 minute")

	kem, err := probe.KEMProperties([]byte("key_test"), []byte("ciphertext_test"))
	if err != nil {
		return nil, err
	}
	annotate(kem, 5, 2048, "1 minute")

	circuits := []*circuit.Circuit{shor, krylov, superposition, randomness, kem}

	log := logger.Logger()
	log.Info().Int("circuits", len(circuits)).Msg("built priority plan")
	return circuits, nil
}

// annotate overrides the execution advice post-hoc, preserving any
// success-rate estimate the builder attached.
func annotate(c *circuit.Circuit, priority, shots int, estimated string) {
	if c.Execution == nil {
		c.Execution = &circuit.ExecutionInfo{}
	}
	c.Execution.Priority = priority
	c.Execution.Shots = shots
	c.Execution.EstimatedTime = estimated
}
