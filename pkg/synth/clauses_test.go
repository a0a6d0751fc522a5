package synth

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsynth/revsynth/pkg/truthtable"
)

func mustTable(t *testing.T, csv string) *truthtable.Table {
	t.Helper()
	table, err := truthtable.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	return table
}

func TestBuildFormulaIsDeterministic(t *testing.T) {
	table := mustTable(t, "00,0,0\n01,0,1\n10,1,1\n11,1,0\n")
	m, err := NewModel(table.Width, 4, table.NumRows())
	require.NoError(t, err)

	f1, err := BuildFormula(m, table)
	require.NoError(t, err)
	f2, err := BuildFormula(m, table)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(f1, f2), "identical inputs must produce syntactically identical formulas")
}

func TestBuildFormulaRejectsMismatchedTable(t *testing.T) {
	table := mustTable(t, "0,0\n1,1\n")
	m, err := NewModel(2, 2, 4)
	require.NoError(t, err)

	_, err = BuildFormula(m, table)
	assert.Error(t, err)
}

func TestBuildFormulaSingleBit(t *testing.T) {
	table := mustTable(t, "0,1\n1,0\n")
	m, err := NewModel(1, 1, 2)
	require.NoError(t, err)

	f, err := BuildFormula(m, table)
	require.NoError(t, err)

	// One triangularity unit (the lone gate cannot control its own
	// bit), two output-binding units, and per row one fire unit plus
	// the four XOR clauses.
	assert.Len(t, f.Clauses, 1+2+2*5)
	// Model variables plus one fire auxiliary per row.
	assert.Equal(t, m.Vars()+2, f.Vars)

	cv := m.controlVar(0, 0)
	assert.Contains(t, f.Clauses, []int{-cv})

	// The NOT table binds the output gate to ¬in for both rows.
	v0, err := m.OutputVar(0, 0)
	require.NoError(t, err)
	v1, err := m.OutputVar(0, 1)
	require.NoError(t, err)
	assert.Contains(t, f.Clauses, []int{v0})
	assert.Contains(t, f.Clauses, []int{-v1})
}

func TestBuildFormulaPinsForbiddenControls(t *testing.T) {
	table := mustTable(t, "00,0,0\n01,0,1\n10,1,1\n11,1,0\n")
	m, err := NewModel(table.Width, 3, table.NumRows())
	require.NoError(t, err)

	f, err := BuildFormula(m, table)
	require.NoError(t, err)

	for i := 0; i < m.Budget(); i++ {
		for b := 0; b < m.Width(); b++ {
			if m.ControlAllowed(i, b) {
				continue
			}
			assert.Contains(t, f.Clauses, []int{-m.controlVar(i, b)},
				"forbidden control (gate %d, bit %d) must be pinned false", i, b)
		}
	}
}

func TestBuildFormulaAuxiliariesAboveModelVars(t *testing.T) {
	table := mustTable(t, "00,0,0\n01,0,1\n10,1,1\n11,1,0\n")
	m, err := NewModel(table.Width, 4, table.NumRows())
	require.NoError(t, err)

	f, err := BuildFormula(m, table)
	require.NoError(t, err)
	assert.Greater(t, f.Vars, m.Vars())
	for _, clause := range f.Clauses {
		require.NotEmpty(t, clause)
	}
}
