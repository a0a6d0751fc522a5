package truthtable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	type tc struct {
		Name    string
		Input   string
		Width   int
		Outputs []uint64
		Error   string
	}

	for _, tt := range []tc{
		{
			Name:    "single bit identity",
			Input:   "0,0\n1,1\n",
			Width:   1,
			Outputs: []uint64{0, 1},
		},
		{
			Name:    "cnot",
			Input:   "00,0,0\n01,0,1\n10,1,1\n11,1,0\n",
			Width:   2,
			Outputs: []uint64{0, 1, 3, 2},
		},
		{
			Name:    "rows in any order",
			Input:   "11,1,0\n00,0,0\n01,0,1\n10,1,1\n",
			Width:   2,
			Outputs: []uint64{0, 1, 3, 2},
		},
		{
			Name:  "empty",
			Input: "",
			Error: "empty",
		},
		{
			Name:  "missing rows",
			Input: "00,0,0\n01,0,1\n",
			Error: "needs 4 rows",
		},
		{
			Name:  "duplicate input",
			Input: "00,0,0\n01,0,1\n01,1,1\n11,1,0\n",
			Error: "duplicate input",
		},
		{
			Name:  "input wider than output columns",
			Input: "000,0,0\n001,0,1\n010,1,1\n011,1,0\n",
			Error: "not 2 bits wide",
		},
		{
			Name:  "non-binary input",
			Input: "0x,0,0\n01,0,1\n10,1,1\n11,1,0\n",
			Error: "not a binary string",
		},
		{
			Name:  "non-bit output",
			Input: "00,0,2\n01,0,1\n10,1,1\n11,1,0\n",
			Error: "not a bit",
		},
		{
			Name:  "no output columns",
			Input: "0\n1\n",
			Error: "at least one output bit",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			table, err := ReadCSV(strings.NewReader(tt.Input))
			if tt.Error != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.Width, table.Width)
			require.Len(t, table.Rows, 1<<uint(tt.Width))
			for r, row := range table.Rows {
				assert.Equal(t, uint64(r), row.Input, "row %d input", r)
				assert.Equal(t, tt.Outputs[r], row.Output, "row %d output", r)
			}
		})
	}
}

func TestBitIsMSBFirst(t *testing.T) {
	table := &Table{Width: 3}
	assert.True(t, table.Bit(0b100, 0))
	assert.False(t, table.Bit(0b100, 1))
	assert.False(t, table.Bit(0b100, 2))
	assert.True(t, table.Bit(0b001, 2))
}
