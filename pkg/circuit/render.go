package circuit

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Diagram symbols.
const (
	targetMark  = "X"
	controlMark = "o"
	connector   = "|"
	wire        = "-"
)

// Diagram renders the circuit as ASCII art: one row per bit, a leading
// column for the initial-NOT layer, then one column per gate in
// sequence. Targets are drawn as X, controls as o, with | connecting
// controls to their target within a column.
func (c *Circuit) Diagram() string {
	cols := len(c.Gates) + 1
	grid := make([][]string, c.Width)
	for b := range grid {
		grid[b] = make([]string, cols)
		for col := range grid[b] {
			grid[b][col] = wire
		}
	}

	for b := 0; b < c.Width; b++ {
		if c.InitialNot.Test(uint(b)) {
			grid[b][0] = targetMark
		}
	}
	for i, g := range c.Gates {
		col := i + 1
		grid[g.Target][col] = targetMark
		lo, hi := g.Target, g.Target
		for _, ctrl := range g.Controls {
			grid[ctrl][col] = controlMark
			if ctrl < lo {
				lo = ctrl
			}
			if ctrl > hi {
				hi = ctrl
			}
		}
		for b := lo + 1; b < hi; b++ {
			if grid[b][col] == wire {
				grid[b][col] = connector
			}
		}
	}

	labelWidth := len(fmt.Sprintf("q%d:", c.Width-1))
	var sb strings.Builder
	for b := 0; b < c.Width; b++ {
		fmt.Fprintf(&sb, "%-*s ", labelWidth, fmt.Sprintf("q%d:", b))
		for col := 0; col < cols; col++ {
			sb.WriteString(wire)
			sb.WriteString(grid[b][col])
			sb.WriteString(wire)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// WriteReport writes the diagram followed by per-class gate counts,
// most frequent class first with ties broken by name so the output is
// deterministic. The initial-NOT layer is reported on its own line;
// the class counts cover exactly the budgeted gate sequence.
func WriteReport(w io.Writer, c *Circuit) error {
	var sb strings.Builder
	sb.WriteString(c.Diagram())
	sb.WriteString("\n\n===Gate Counts====\n")

	counts := c.GateCounts()
	classes := make([]string, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool {
		if counts[classes[i]] != counts[classes[j]] {
			return counts[classes[i]] > counts[classes[j]]
		}
		return classes[i] < classes[j]
	})
	for _, class := range classes {
		fmt.Fprintf(&sb, "%s gates: %d\n", class, counts[class])
	}
	fmt.Fprintf(&sb, "Initial NOT gates: %d\n", c.InitialNot.Count())

	_, err := io.WriteString(w, sb.String())
	return err
}
