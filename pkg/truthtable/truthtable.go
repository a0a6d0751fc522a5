// Package truthtable reads and validates the truth tables that drive a
// synthesis run.
//
// The on-disk format is CSV with one row per input combination: the
// first field is the input written as a binary string, and each
// remaining field is one output bit. For example, a two-bit table:
//
//	00,0,0
//	01,0,1
//	10,1,1
//	11,1,0
//
// Bit 0 is the most significant position of the binary string, so row
// inputs read left to right as bit 0, bit 1, and so on.
package truthtable

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

// Row is a single entry of a truth table: an n-bit input value and the
// n-bit output value it maps to.
type Row struct {
	Input  uint64
	Output uint64
}

// Table is a complete truth table over Width-bit values. Every
// Width-bit input appears in Rows exactly once, in ascending order.
type Table struct {
	Width int
	Rows  []Row
}

// MaxWidth bounds the bit width of a table; row values are packed into
// uint64s.
const MaxWidth = 16

// Bit reports the value of bit b of v under the table's MSB-first
// convention: bit 0 is the leftmost position of a Width-bit value.
func (t *Table) Bit(v uint64, b int) bool {
	return v&(1<<uint(t.Width-1-b)) != 0
}

// NumRows returns the number of rows, always 1<<Width for a valid
// table.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ReadFile reads a truth table from the CSV file at path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening truth table")
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading truth table %s", path)
	}
	return t, nil
}

// ReadCSV parses and validates a truth table from CSV input. The bit
// width is derived from the output column count, and the input column
// must have the same width: the synthesizer works on square tables,
// where a meaningful request is a bijection on n-bit values. The
// reader checks domain coverage (every n-bit input exactly once) but
// not bijectivity of the outputs; a non-bijective table is simply
// unsatisfiable downstream.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parsing csv")
	}
	if len(records) == 0 {
		return nil, errors.New("truth table is empty")
	}

	width := len(records[0]) - 1
	if width < 1 {
		return nil, errors.New("rows need an input field and at least one output bit")
	}
	if width > MaxWidth {
		return nil, errors.Errorf("width %d exceeds the maximum of %d bits", width, MaxWidth)
	}
	if want := 1 << uint(width); len(records) != want {
		return nil, errors.Errorf("%d-bit table needs %d rows, got %d", width, want, len(records))
	}

	t := &Table{
		Width: width,
		Rows:  make([]Row, len(records)),
	}
	seen := bitset.New(uint(len(records)))
	for i, record := range records {
		if len(record) != width+1 {
			return nil, errors.Errorf("row %d has %d fields, want %d", i, len(record), width+1)
		}
		input, err := parseBits(record[0], width)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d input", i)
		}
		if seen.Test(uint(input)) {
			return nil, errors.Errorf("row %d: duplicate input %q", i, record[0])
		}
		seen.Set(uint(input))

		var output uint64
		for b, field := range record[1:] {
			bit, err := parseBit(field)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d output bit %d", i, b)
			}
			if bit {
				output |= 1 << uint(width-1-b)
			}
		}
		t.Rows[input] = Row{Input: input, Output: output}
	}
	// 2^n rows with no duplicate inputs covers the whole domain.
	return t, nil
}

func parseBits(s string, width int) (uint64, error) {
	if len(s) != width {
		return 0, errors.Errorf("input %q is not %d bits wide", s, width)
	}
	var v uint64
	for _, c := range s {
		switch c {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, errors.Errorf("input %q is not a binary string", s)
		}
	}
	return v, nil
}

func parseBit(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, errors.Errorf("%q is not a bit", s)
}
