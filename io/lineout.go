package io

import (
	"fmt"
	"os"
)

// WriteLineout writes columns of equal length to a whitespace table that
// table.ReadTable and standard plotting tools can read back. The first
// column is conventionally the coordinate axis.
func WriteLineout(file string, names []string, cols ...[]float64) error {
	if len(names) != len(cols) {
		return fmt.Errorf("%d column names for %d columns", len(names), len(cols))
	}
	n := 0
	for i, col := range cols {
		if i == 0 {
			n = len(col)
		} else if len(col) != n {
			return fmt.Errorf("column '%s' has length %d, expected %d",
				names[i], len(col), n)
		}
	}

	f, err := os.Create(file)
	if err != nil { return err }
	defer f.Close()

	fmt.Fprintf(f, "#")
	for _, name := range names { fmt.Fprintf(f, " %s", name) }
	fmt.Fprintf(f, "\n")
	for row := 0; row < n; row++ {
		for i := range cols {
			if i > 0 { fmt.Fprintf(f, " ") }
			fmt.Fprintf(f, "%.10g", cols[i][row])
		}
		fmt.Fprintf(f, "\n")
	}
	return nil
}
