// Package circuit holds the decoded form of a synthesized reversible
// circuit: an initial layer of NOT gates followed by an ordered
// sequence of arbitrarily-controlled NOT gates.
package circuit

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Gate is one arbitrarily-controlled NOT: it flips Target iff every
// bit in Controls is currently 1. An empty control list is a bare NOT.
type Gate struct {
	Target   int
	Controls []int
}

// Arity returns the number of control bits.
func (g Gate) Arity() int {
	return len(g.Controls)
}

// Class names the gate by its control arity: NOT, CNOT, CCNOT, and so
// on, one C per control.
func (g Gate) Class() string {
	return strings.Repeat("C", len(g.Controls)) + "NOT"
}

// Circuit is a decoded reversible circuit over Width bits.
type Circuit struct {
	Width      int
	InitialNot *bitset.BitSet
	Gates      []Gate
}

// Simulate applies the circuit to one input value and returns the
// resulting output value. Bit b of a value sits at position
// Width-1-b, matching the truth-table convention.
func (c *Circuit) Simulate(input uint64) uint64 {
	v := input
	for b := 0; b < c.Width; b++ {
		if c.InitialNot.Test(uint(b)) {
			v ^= c.mask(b)
		}
	}
	for _, g := range c.Gates {
		fire := true
		for _, ctrl := range g.Controls {
			if v&c.mask(ctrl) == 0 {
				fire = false
				break
			}
		}
		if fire {
			v ^= c.mask(g.Target)
		}
	}
	return v
}

// GateCounts tallies the sequence gates by class. The counts sum to
// the gate budget; the initial-NOT layer is not included.
func (c *Circuit) GateCounts() map[string]int {
	counts := make(map[string]int)
	for _, g := range c.Gates {
		counts[g.Class()]++
	}
	return counts
}

func (c *Circuit) mask(b int) uint64 {
	return 1 << uint(c.Width-1-b)
}
