package cnf

import (
	"context"
	"errors"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// ErrUnsat is returned by an Oracle that has proven the formula has no
// satisfying assignment. It is a definitive negative answer, distinct
// from ErrIncomplete.
var ErrUnsat = errors.New("formula is unsatisfiable")

// ErrIncomplete is returned when solving was cancelled or timed out
// before a definitive answer could be found.
var ErrIncomplete = errors.New("cancelled before a definitive answer could be found")

// Oracle decides satisfiability. Solve blocks until it has a total
// satisfying assignment over the formula's variables, has proven the
// formula unsatisfiable (ErrUnsat), or the context ends
// (ErrIncomplete). Implementations perform a single search with no
// internal retries.
type Oracle interface {
	Solve(ctx context.Context, f *Formula) (Assignment, error)
}

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// solvePollInterval is how long a Gini oracle lets the background
// solve run between context checks.
const solvePollInterval = 50 * time.Millisecond

// Gini is an Oracle backed by the gini SAT solver. The zero value is
// ready to use; each Solve call builds a fresh solver so concurrent
// runs share no state.
type Gini struct{}

func (Gini) Solve(ctx context.Context, f *Formula) (Assignment, error) {
	g := gini.NewVc(f.Vars, len(f.Clauses))
	for _, clause := range f.Clauses {
		for _, l := range clause {
			g.Add(toLit(l))
		}
		g.Add(z.LitNull)
	}

	if ctx.Err() != nil {
		return nil, ErrIncomplete
	}
	conn := g.GoSolve()
	for {
		switch conn.Try(solvePollInterval) {
		case satisfiable:
			a := make(Assignment, f.Vars+1)
			for v := 1; v <= f.Vars; v++ {
				a[v] = g.Value(z.Var(v).Pos())
			}
			return a, nil
		case unsatisfiable:
			return nil, ErrUnsat
		}
		select {
		case <-ctx.Done():
			conn.Stop()
			return nil, ErrIncomplete
		default:
		}
	}
}

func toLit(l int) z.Lit {
	if l < 0 {
		return z.Var(-l).Neg()
	}
	return z.Var(l).Pos()
}
