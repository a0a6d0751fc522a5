package synth

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/revsynth/revsynth/pkg/circuit"
	"github.com/revsynth/revsynth/pkg/cnf"
	"github.com/revsynth/revsynth/pkg/truthtable"
)

// Incomplete is returned when the oracle was cancelled or timed out
// before a solution could be found. It is distinct from
// NotSatisfiable: no conclusion about feasibility may be drawn from
// it.
var Incomplete = errors.New("cancelled before a solution could be found")

// NotSatisfiable reports that the oracle proved no circuit of the
// requested width exists at the requested gate budget. It is a
// definitive negative result, not a failure.
type NotSatisfiable struct {
	Width  int
	Budget int
}

func (e NotSatisfiable) Error() string {
	return fmt.Sprintf("no %d-bit circuit with %d gates realizes the table; try a larger gate budget", e.Width, e.Budget)
}

// Synthesizer runs the encode-solve-decode pipeline. Each Synthesize
// call owns its own model, formula and assignment, so a single
// Synthesizer may serve independent runs concurrently.
type Synthesizer struct {
	oracle cnf.Oracle
	logger logrus.FieldLogger
}

// New constructs a Synthesizer, applying options over the defaults (a
// gini-backed oracle, discarded logs).
func New(options ...Option) (*Synthesizer, error) {
	var s Synthesizer
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Synthesizer) error

// WithOracle substitutes the solving oracle, e.g. a stub returning
// canned assignments in tests.
func WithOracle(o cnf.Oracle) Option {
	return func(s *Synthesizer) error {
		if o == nil {
			return errors.New("oracle must not be nil")
		}
		s.oracle = o
		return nil
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Synthesizer) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		s.logger = l
		return nil
	}
}

var defaults = []Option{
	func(s *Synthesizer) error {
		if s.oracle == nil {
			s.oracle = cnf.Gini{}
		}
		return nil
	},
	func(s *Synthesizer) error {
		if s.logger == nil {
			l := logrus.New()
			l.SetOutput(io.Discard)
			s.logger = l
		}
		return nil
	},
}

// Synthesize builds the formula for the table at the given gate
// budget, issues one blocking call to the oracle, and decodes the
// result. It returns NotSatisfiable when no circuit exists at the
// budget and Incomplete when the context ends first. Configuration
// problems (budget below the bit width) are reported before any
// solving.
func (s *Synthesizer) Synthesize(ctx context.Context, t *truthtable.Table, budget int) (*circuit.Circuit, error) {
	m, err := NewModel(t.Width, budget, t.NumRows())
	if err != nil {
		return nil, err
	}

	f, err := BuildFormula(m, t)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"width":     m.Width(),
		"budget":    m.Budget(),
		"variables": f.Vars,
		"clauses":   len(f.Clauses),
	}).Info("formula built")

	a, err := s.oracle.Solve(ctx, f)
	switch {
	case errors.Is(err, cnf.ErrUnsat):
		return nil, NotSatisfiable{Width: t.Width, Budget: budget}
	case errors.Is(err, cnf.ErrIncomplete):
		return nil, Incomplete
	case err != nil:
		return nil, errors.Wrap(err, "solving")
	}
	s.logger.Info("model is satisfiable")

	c, err := Decode(m, a)
	if err != nil {
		return nil, err
	}
	return c, nil
}
