package plan

import (
	"fmt"
	"math/rand"

	"github.com/pqe369/qcgen/circuit"
	"github.com/pqe369/qcgen/logger"
	"github.com/pqe369/qcgen/probe"
)

// Batch generates n circuits by cycling through the test-type rotation
// (position i gets type i mod 8), drawing fresh byte samples from rng for
// the data-driven builders and tagging each circuit with its batch
// position. Given a fixed master seed the whole batch is reproducible;
// fixed-structure circuits are gate-deterministic regardless, their seed
// field being the only random component.
func Batch(rng *rand.Rand, n int) ([]*circuit.Circuit, error) {
	types := probe.Types()
	circuits := make([]*circuit.Circuit, 0, n)

	log := logger.Logger()
	for i := 0; i < n; i++ {
		t := types[i%len(types)]
		c, err := t.Generate(rng)
		if err != nil {
			return nil, fmt.Errorf("batch circuit %d (%s): %w", i+1, t, err)
		}
		c.Batch = &circuit.BatchInfo{
			ID:         i + 1,
			Total:      n,
			Generation: "enhanced",
		}
		circuits = append(circuits, c)
		log.Debug().Int("batch_id", i+1).Stringer("type", t).Int("gates", len(c.Gates)).Msg("generated batch circuit")
	}

	return circuits, nil
}
