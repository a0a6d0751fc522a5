package synth

import (
	"github.com/pkg/errors"

	"github.com/revsynth/revsynth/pkg/cnf"
	"github.com/revsynth/revsynth/pkg/truthtable"
)

// BuildFormula emits the constraint families tying a Model to a truth
// table. It is a pure function: identical (table, width, budget)
// inputs always produce syntactically identical clause lists, so
// solved runs are reproducible.
//
// Three families are emitted, in order:
//
//  1. Triangularity: every control forbidden by the triangular
//     structure is pinned false with a unit clause.
//  2. Output binding: for each of the last width gates and each row,
//     a unit clause fixing the gate's output to the table's bit (the
//     biconditional with a constant folds to a unit).
//  3. Recurrence: for each gate and row, the gate's output equals the
//     pre-gate value of its target bit XOR a fire condition, where
//     fire holds iff every controlled bit reads 1 just before the
//     gate. Fire and its per-control implication terms get auxiliary
//     variables so the XOR-of-AND does not blow up; both directions
//     of every biconditional are emitted as clause pairs.
//
// The pre-gate value of a bit resolves through a per-bit last-writer
// table, maintained left to right over gate indices, to either the
// output variable of the most recent earlier gate on that bit or to
// the initial-NOT variable with the row's input bit folded in.
func BuildFormula(m *Model, t *truthtable.Table) (*cnf.Formula, error) {
	if t.Width != m.Width() || t.NumRows() != m.Rows() {
		return nil, errors.Errorf("table is %d bits with %d rows, model wants %d bits with %d rows",
			t.Width, t.NumRows(), m.Width(), m.Rows())
	}

	width, budget, rows := m.Width(), m.Budget(), m.Rows()
	f := &cnf.Formula{Vars: m.Vars()}

	// Family 1: triangularity.
	for i := 0; i < budget; i++ {
		for b := 0; b < width; b++ {
			if !m.ControlAllowed(i, b) {
				f.AddClause(-m.controlVar(i, b))
			}
		}
	}

	// Family 2: output binding on the last width gates.
	for i := budget - width; i < budget; i++ {
		for r := 0; r < rows; r++ {
			v := m.outputVar(i, r)
			if t.Bit(t.Rows[r].Output, m.Target(i)) {
				f.AddClause(v)
			} else {
				f.AddClause(-v)
			}
		}
	}

	// Family 3: recurrence. lastWriter[b] is the most recent gate
	// index targeting bit b, or -1 before any gate has.
	lastWriter := make([]int, width)
	for b := range lastWriter {
		lastWriter[b] = -1
	}
	pre := func(b, r int) int {
		if j := lastWriter[b]; j >= 0 {
			return m.outputVar(j, r)
		}
		// No writer yet: the bit reads its row input XOR the
		// initial NOT, which folds to a literal over the
		// initial-NOT variable.
		if t.Bit(t.Rows[r].Input, b) {
			return -m.initialNotVar(b)
		}
		return m.initialNotVar(b)
	}

	for i := 0; i < budget; i++ {
		for r := 0; r < rows; r++ {
			// term ⇔ (¬control ∨ preValue), one per permitted
			// control bit.
			var terms []int
			for b := 0; b < width; b++ {
				if !m.ControlAllowed(i, b) {
					continue
				}
				c := m.controlVar(i, b)
				p := pre(b, r)
				term := f.NewVar()
				f.AddClause(-term, -c, p)
				f.AddClause(term, c)
				f.AddClause(term, -p)
				terms = append(terms, term)
			}

			// fire ⇔ AND of terms. With no permitted controls the
			// conjunction is empty and the gate fires
			// unconditionally, a bare NOT.
			fire := f.NewVar()
			for _, term := range terms {
				f.AddClause(-fire, term)
			}
			back := make([]int, 0, len(terms)+1)
			back = append(back, fire)
			for _, term := range terms {
				back = append(back, -term)
			}
			f.AddClause(back...)

			// output ⇔ pre(target) XOR fire.
			out := m.outputVar(i, r)
			p := pre(m.Target(i), r)
			f.AddClause(-out, p, fire)
			f.AddClause(-out, -p, -fire)
			f.AddClause(out, -p, fire)
			f.AddClause(out, p, -fire)
		}
		lastWriter[m.Target(i)] = i
	}

	return f, nil
}
