// Package circuit defines the quantum-circuit description exchanged with an
// external execution service: an ordered gate list over a fixed qubit count,
// plus advisory metadata attached by the builders.
package circuit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// DigestInfo identifies the input bytes a data-derived circuit was built
// from.
type DigestInfo struct {
	// Fragment is the first 16 hex characters of the SHA-256 digest of the
	// input.
	Fragment string `json:"fragment"`
}

// AlgorithmInfo describes the algorithm family a fixed-structure circuit
// implements. All fields are static annotations chosen by the builder, not
// derived values.
type AlgorithmInfo struct {
	Type              string `json:"type,omitempty"`
	OptimizationLevel string `json:"optimization_level,omitempty"`
	TargetNumber      int    `json:"target_number,omitempty"`
	Base              int    `json:"base,omitempty"`
}

// ExecutionInfo carries scheduling advice for the execution service:
// priority 1 runs first under a constrained time budget.
type ExecutionInfo struct {
	Priority      int     `json:"priority"`
	Shots         int     `json:"shots"`
	SuccessRate   float64 `json:"success_rate,omitempty"`
	EstimatedTime string  `json:"estimated_time,omitempty"`
}

// LayerInfo tags a circuit with the conceptual security layer it probes.
// Purely descriptive; nothing branches on it.
type LayerInfo struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Problem  string `json:"problem"`
	Property string `json:"property"`
}

// BatchInfo records a circuit's position within a generated batch.
type BatchInfo struct {
	ID         int    `json:"id"`
	Total      int    `json:"total"`
	Generation string `json:"generation,omitempty"`
}

// Circuit is a self-contained, serializable circuit description. Gates are
// append-only during construction and must not be mutated once the circuit
// is returned by a builder.
//
// Gates, NumQubits, Description and Seed are common to every builder; the
// remaining fields are optional extensions set by specific builder families
// (data-derived, fixed-topology, batch-tagged).
type Circuit struct {
	Gates       []Gate `json:"gates"`
	NumQubits   int    `json:"num_qubits"`
	Description string `json:"description"`
	Seed        int64  `json:"seed"`

	TestType     string   `json:"test_type,omitempty"`
	Improvements []string `json:"improvements,omitempty"`

	Digest    *DigestInfo    `json:"digest,omitempty"`
	Algorithm *AlgorithmInfo `json:"algorithm,omitempty"`
	Execution *ExecutionInfo `json:"execution,omitempty"`
	Layer     *LayerInfo     `json:"layer,omitempty"`
	Batch     *BatchInfo     `json:"batch,omitempty"`
}

// Append adds gates to the circuit.
func (c *Circuit) Append(gates ...Gate) {
	c.Gates = append(c.Gates, gates...)
}

// Validate checks the circuit invariants: a positive qubit count, known gate
// names, operand counts matching each gate's arity, qubit indices in
// [0, NumQubits), angles present exactly on parametric gates, and each qubit
// measured at most once.
func (c *Circuit) Validate() error {
	if c.NumQubits <= 0 {
		return fmt.Errorf("invalid qubit count %d", c.NumQubits)
	}
	measured := bitset.New(uint(c.NumQubits))
	for i, g := range c.Gates {
		arity := g.Name.Arity()
		if arity == 0 {
			return fmt.Errorf("gate %d: unknown gate %q", i, g.Name)
		}
		if len(g.Qubits) != arity {
			return fmt.Errorf("gate %d: %s takes %d qubits, got %d", i, g.Name, arity, len(g.Qubits))
		}
		for _, q := range g.Qubits {
			if q < 0 || q >= c.NumQubits {
				return fmt.Errorf("gate %d: qubit %d out of range [0, %d)", i, q, c.NumQubits)
			}
		}
		if g.Name.Parametric() != (g.Angle != nil) {
			if g.Angle != nil {
				return fmt.Errorf("gate %d: %s does not take an angle", i, g.Name)
			}
			return fmt.Errorf("gate %d: %s missing angle", i, g.Name)
		}
		if g.Name == GateMeasure {
			q := uint(g.Qubits[0])
			if measured.Test(q) {
				return fmt.Errorf("gate %d: qubit %d measured twice", i, g.Qubits[0])
			}
			measured.Set(q)
		}
	}
	return nil
}

// GateCounts returns the number of occurrences of each gate name.
func (c *Circuit) GateCounts() map[Name]int {
	counts := make(map[Name]int, len(Names()))
	for _, g := range c.Gates {
		counts[g.Name]++
	}
	return counts
}

// MeasuredQubits returns the measured qubit indices in ascending order.
func (c *Circuit) MeasuredQubits() []int {
	measured := bitset.New(uint(c.NumQubits))
	for _, g := range c.Gates {
		if g.Name == GateMeasure && len(g.Qubits) == 1 && g.Qubits[0] >= 0 {
			measured.Set(uint(g.Qubits[0]))
		}
	}
	qubits := make([]int, 0, measured.Count())
	for q, ok := measured.NextSet(0); ok; q, ok = measured.NextSet(q + 1) {
		qubits = append(qubits, int(q))
	}
	return qubits
}

// Summary returns a human-readable description of the circuit and its gate
// breakdown.
func (c *Circuit) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", c.Description)
	fmt.Fprintf(&sb, "  qubits: %d\n", c.NumQubits)
	fmt.Fprintf(&sb, "  gates: %d\n", len(c.Gates))
	fmt.Fprintf(&sb, "  seed: %d\n", c.Seed)

	counts := c.GateCounts()
	names := make([]Name, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	sb.WriteString("  gate breakdown:\n")
	for _, n := range names {
		fmt.Fprintf(&sb, "    %s: %d\n", n, counts[n])
	}

	if c.TestType != "" {
		fmt.Fprintf(&sb, "  test type: %s\n", c.TestType)
	}
	return sb.String()
}
