package circuit

import (
	"strings"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagram(t *testing.T) {
	initial := bitset.New(2)
	initial.Set(0)
	c := &Circuit{
		Width:      2,
		InitialNot: initial,
		Gates: []Gate{
			{Target: 0},
			{Target: 1, Controls: []int{0}},
		},
	}

	want := "" +
		"q0: -X--X--o-\n" +
		"q1: -------X-\n"
	assert.Equal(t, want, c.Diagram())
}

func TestDiagramConnectors(t *testing.T) {
	c := &Circuit{
		Width:      3,
		InitialNot: bitset.New(3),
		Gates: []Gate{
			{Target: 2, Controls: []int{0}},
		},
	}

	want := "" +
		"q0: ----o-\n" +
		"q1: ----|-\n" +
		"q2: ----X-\n"
	assert.Equal(t, want, c.Diagram())
}

func TestWriteReport(t *testing.T) {
	initial := bitset.New(2)
	initial.Set(1)
	c := &Circuit{
		Width:      2,
		InitialNot: initial,
		Gates: []Gate{
			{Target: 0},
			{Target: 1, Controls: []int{0}},
		},
	}

	var sb strings.Builder
	require.NoError(t, WriteReport(&sb, c))
	got := sb.String()

	assert.True(t, strings.HasPrefix(got, c.Diagram()))
	assert.Contains(t, got, "===Gate Counts====\n")
	assert.Contains(t, got, "NOT gates: 1\n")
	assert.Contains(t, got, "CNOT gates: 1\n")
	assert.Contains(t, got, "Initial NOT gates: 1\n")

	// Deterministic ordering: equal counts sort by class name.
	cnot := strings.Index(got, "CNOT gates:")
	not := strings.Index(got, "\nNOT gates:")
	require.GreaterOrEqual(t, cnot, 0)
	require.GreaterOrEqual(t, not, 0)
	assert.Less(t, cnot, not)
}
