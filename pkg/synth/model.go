// Package synth encodes "a reversible circuit with G gates realizes
// truth table T" as a boolean formula, hands it to a solving oracle,
// and decodes a satisfying assignment back into a concrete circuit.
package synth

import (
	"github.com/pkg/errors"
)

// Model enumerates the boolean decision variables describing a
// candidate circuit of a given width and gate budget. Variables are
// numbered from 1 in a fixed layout: first the control family, then
// the per-row gate outputs, then the initial-NOT layer. Auxiliary
// variables introduced during clause generation are numbered above
// Vars().
//
// A Model is immutable once constructed; the target-bit binding and
// the variable layout are pure functions of (width, budget, rows).
type Model struct {
	width  int
	budget int
	rows   int
}

// NewModel validates the run configuration and fixes the variable
// layout. The budget must be at least the bit width: the last width
// gates are the output gates, bound one per bit, and a smaller budget
// cannot bind them all.
func NewModel(width, budget, rows int) (*Model, error) {
	if width < 1 {
		return nil, errors.Errorf("width must be positive, got %d", width)
	}
	if rows != 1<<uint(width) {
		return nil, errors.Errorf("%d-bit model needs %d rows, got %d", width, 1<<uint(width), rows)
	}
	if budget < width {
		return nil, errors.Errorf("gate budget %d is below the bit width %d; every bit needs an output gate", budget, width)
	}
	return &Model{width: width, budget: budget, rows: rows}, nil
}

// Width returns the bit width of the modelled circuit.
func (m *Model) Width() int { return m.width }

// Budget returns the total number of gates in the modelled circuit.
func (m *Model) Budget() int { return m.budget }

// Rows returns the number of truth-table rows the model covers.
func (m *Model) Rows() int { return m.rows }

// Target returns the bit that gate i acts on. Targets are assigned
// round-robin over the width bits, anchored so that the final width
// gates land on bits 0..width-1 in index order; those are the output
// gates whose post-gate values must match the truth table. No ancilla
// bit indices are introduced when the budget exceeds the width —
// earlier gates wrap over the same bits.
func (m *Model) Target(i int) int {
	return ((i-m.budget)%m.width + m.width) % m.width
}

// ControlAllowed reports whether gate i may be controlled on bit b.
// The control structure is triangular: a gate is never controlled on
// a bit with index at or above its own gate index, and never on its
// own target bit.
func (m *Model) ControlAllowed(i, b int) bool {
	return b < i && b != m.Target(i)
}

// Control returns the variable stating that gate i is controlled on
// bit b. Indices outside the model or forbidden by the triangular
// structure are errors.
func (m *Model) Control(i, b int) (int, error) {
	if i < 0 || i >= m.budget || b < 0 || b >= m.width {
		return 0, errors.Errorf("control (gate %d, bit %d) out of range", i, b)
	}
	if !m.ControlAllowed(i, b) {
		return 0, errors.Errorf("gate %d cannot be controlled on bit %d", i, b)
	}
	return m.controlVar(i, b), nil
}

// OutputVar returns the variable holding the value of gate i's target
// bit for truth-table row r, immediately after gate i.
func (m *Model) OutputVar(i, r int) (int, error) {
	if i < 0 || i >= m.budget || r < 0 || r >= m.rows {
		return 0, errors.Errorf("output (gate %d, row %d) out of range", i, r)
	}
	return m.outputVar(i, r), nil
}

// InitialNot returns the variable stating that bit b is complemented
// before any gate acts.
func (m *Model) InitialNot(b int) (int, error) {
	if b < 0 || b >= m.width {
		return 0, errors.Errorf("initial-NOT bit %d out of range", b)
	}
	return m.initialNotVar(b), nil
}

// Vars returns the number of model variables. Every variable in
// [1, Vars()] belongs to one of the three families.
func (m *Model) Vars() int {
	return m.budget*m.width + m.budget*m.rows + m.width
}

// The raw accessors cover the full (gate, bit) rectangle, including
// pairs the triangular structure forbids; those variables exist so
// the clause generator can pin them false and the decoder can detect
// an assignment that violates the structure.

func (m *Model) controlVar(i, b int) int {
	return i*m.width + b + 1
}

func (m *Model) outputVar(i, r int) int {
	return m.budget*m.width + i*m.rows + r + 1
}

func (m *Model) initialNotVar(b int) int {
	return m.budget*m.width + m.budget*m.rows + b + 1
}
