// Package cnf holds the boolean-formula representation handed to a
// solving oracle, and the oracle contract itself.
package cnf

import (
	"github.com/pkg/errors"
)

// Formula is a conjunction of clauses over integer literals in the
// DIMACS convention: variables are numbered from 1, a positive literal
// is the variable number, and a negative literal is its negation.
type Formula struct {
	// Vars is the highest variable number in use. Every variable in
	// [1, Vars] is considered part of the formula whether or not it
	// appears in a clause.
	Vars int

	Clauses [][]int
}

// NewVar allocates the next variable and returns its number.
func (f *Formula) NewVar() int {
	f.Vars++
	return f.Vars
}

// AddClause appends one clause. Literals referencing variables above
// Vars grow the variable range so assignments stay total.
func (f *Formula) AddClause(lits ...int) {
	for _, l := range lits {
		v := l
		if v < 0 {
			v = -v
		}
		if v > f.Vars {
			f.Vars = v
		}
	}
	f.Clauses = append(f.Clauses, lits)
}

// Assignment is a total valuation of a formula's variables. Index 0 is
// unused so that Assignment[v] is the value of variable v.
type Assignment []bool

// Value returns the value assigned to variable v, or an error if the
// assignment does not cover v. A missing variable indicates a
// structurally incomplete model rather than a recoverable condition.
func (a Assignment) Value(v int) (bool, error) {
	if v < 1 || v >= len(a) {
		return false, errors.Errorf("assignment has no variable %d", v)
	}
	return a[v], nil
}
