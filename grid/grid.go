/*package grid provides the 2D (slice, radial cell) field arrays used by the
wakefield solver. Every grid carries a fixed two-cell guard band on all four
sides so deposition stencils and gathers never need bounds branches.
*/
package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Guard is the number of guard cells on each side of each axis.
const Guard = 2

// Grid is a (NXi + 2*Guard) x (NR + 2*Guard) slice-major array of cell
// values. Interior cells are addressed with indices in [0, NXi) x [0, NR);
// guard cells with indices in [-Guard, 0) and [n, n+Guard).
type Grid struct {
	NXi, NR int
	vals    []float64
}

func New(nXi, nR int) *Grid {
	if nXi <= 0 || nR <= 0 {
		panic(fmt.Sprintf("non-positive grid size %d x %d", nXi, nR))
	}
	return &Grid{
		NXi: nXi, NR: nR,
		vals: make([]float64, (nXi+2*Guard)*(nR+2*Guard)),
	}
}

func (g *Grid) idx(i, j int) int {
	return (i+Guard)*(g.NR+2*Guard) + (j + Guard)
}

// At returns the value of cell (i, j). Guard cells may be read.
func (g *Grid) At(i, j int) float64 { return g.vals[g.idx(i, j)] }

// Set writes cell (i, j). Guard cells may be written.
func (g *Grid) Set(i, j int, v float64) { g.vals[g.idx(i, j)] = v }

// Add accumulates into cell (i, j). Guard cells may be targeted, which is
// what keeps near-boundary deposits from being lost.
func (g *Grid) Add(i, j int, v float64) { g.vals[g.idx(i, j)] += v }

// SetRow copies vals into the interior of slice row i.
func (g *Grid) SetRow(i int, vals []float64) {
	if len(vals) != g.NR {
		panic(fmt.Sprintf("row length %d != NR %d", len(vals), g.NR))
	}
	copy(g.vals[g.idx(i, 0):g.idx(i, g.NR)], vals)
}

// Row returns the interior of slice row i as a shared slice.
func (g *Grid) Row(i int) []float64 {
	return g.vals[g.idx(i, 0):g.idx(i, g.NR)]
}

// Interior returns a fresh row-major copy of the interior cells.
func (g *Grid) Interior() [][]float64 {
	out := make([][]float64, g.NXi)
	for i := range out {
		out[i] = make([]float64, g.NR)
		copy(out[i], g.Row(i))
	}
	return out
}

// MaxAbs returns the largest absolute interior value.
func (g *Grid) MaxAbs() float64 {
	max := 0.0
	for i := 0; i < g.NXi; i++ {
		for _, v := range g.Row(i) {
			if v > max { max = v }
			if -v > max { max = -v }
		}
	}
	return max
}

// Sum returns the total of every cell, guard cells included. Because
// deposits accumulate into guard cells rather than being clipped, this is
// the full deposited charge.
func (g *Grid) Sum() float64 { return floats.Sum(g.vals) }

// AddGrid accumulates the full contents of o, guard cells included.
func (g *Grid) AddGrid(o *Grid) {
	if g.NXi != o.NXi || g.NR != o.NR {
		panic(fmt.Sprintf("grid size mismatch: %dx%d != %dx%d",
			g.NXi, g.NR, o.NXi, o.NR))
	}
	floats.Add(g.vals, o.vals)
}

// Coords returns n uniformly spaced values from lo to hi inclusive.
func Coords(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// CellCenters returns the n radial cell-center coordinates for cell
// width d, i.e. d/2, 3d/2, ...
func CellCenters(d float64, n int) []float64 {
	return floats.Span(make([]float64, n), d/2, (float64(n)-0.5)*d)
}
