package synth

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"

	"github.com/revsynth/revsynth/pkg/circuit"
	"github.com/revsynth/revsynth/pkg/cnf"
)

// InconsistentModelError reports an assignment that sets a control the
// clause generator was supposed to pin false. It signals a bug in the
// encoding or a corrupt oracle result, never a recoverable condition.
type InconsistentModelError struct {
	Gate int
	Bit  int
}

func (e *InconsistentModelError) Error() string {
	return fmt.Sprintf("assignment violates the triangular control structure: gate %d controlled on bit %d", e.Gate, e.Bit)
}

// Decode reconstructs the circuit described by a satisfying
// assignment. Only the control and initial-NOT families are read:
// gate outputs and the solver's auxiliary variables are bookkeeping,
// so any two assignments agreeing on controls and initial NOTs decode
// to the same circuit. An assignment missing any of those variables,
// or setting a structurally forbidden control, is an error.
func Decode(m *Model, a cnf.Assignment) (*circuit.Circuit, error) {
	initial := bitset.New(uint(m.Width()))
	for b := 0; b < m.Width(); b++ {
		set, err := a.Value(m.initialNotVar(b))
		if err != nil {
			return nil, errors.Wrap(err, "decoding initial-NOT layer")
		}
		if set {
			initial.Set(uint(b))
		}
	}

	gates := make([]circuit.Gate, 0, m.Budget())
	for i := 0; i < m.Budget(); i++ {
		var controls []int
		for b := 0; b < m.Width(); b++ {
			set, err := a.Value(m.controlVar(i, b))
			if err != nil {
				return nil, errors.Wrapf(err, "decoding controls of gate %d", i)
			}
			if !set {
				continue
			}
			if !m.ControlAllowed(i, b) {
				return nil, &InconsistentModelError{Gate: i, Bit: b}
			}
			controls = append(controls, b)
		}
		gates = append(gates, circuit.Gate{Target: m.Target(i), Controls: controls})
	}

	return &circuit.Circuit{
		Width:      m.Width(),
		InitialNot: initial,
		Gates:      gates,
	}, nil
}
