package deposit

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/gowake/grid"
)

// BeamCharge deposits beam macro-particles onto a fresh charge grid. The
// particle coordinates and weights must already be in normalized units and
// azimuthally reduced, i.e. r = hypot(x, y). Unlike the plasma deposit,
// every particle carries its own longitudinal coordinate.
func BeamCharge(
	xi, r, w []float64,
	xiMin, rMin, dXi, dR float64,
	nXi, nR int, shape Shape,
) *grid.Grid {
	g := grid.New(nXi, nR)
	var wXi, wR [4]float64
	span := shape.Span()

	for k := range xi {
		i0 := shape.weights((xi[k]-xiMin)/dXi, &wXi)
		j0 := shape.weights((r[k]-rMin)/dR, &wR)
		if i0 < -grid.Guard || i0+span > nXi+grid.Guard { continue }
		if j0 < -grid.Guard || j0+span > nR+grid.Guard { continue }

		for a := 0; a < span; a++ {
			for b := 0; b < span; b++ {
				g.Add(i0+a, j0+b, w[k]*wXi[a]*wR[b])
			}
		}
	}
	return g
}

// FieldFromCharge derives the static azimuthal magnetic field from a beam
// charge grid by a cumulative radial integral. At each cell the integral
// runs only to the cell center, so half the cell's own charge is
// subtracted; the innermost cell loses an extra quarter, which enforces
// zero charge density on axis. Guard cells of the result stay zero.
func FieldFromCharge(q *grid.Grid, dR float64) *grid.Grid {
	b := grid.New(q.NXi, q.NR)
	rCell := grid.CellCenters(dR, q.NR)

	cum := make([]float64, q.NR)
	row := make([]float64, q.NR)
	for i := 0; i < q.NXi; i++ {
		src := q.Row(i)
		floats.CumSum(cum, src)
		for j := range row {
			sub := src[j] / 2
			if j == 0 { sub += src[0] / 4 }
			row[j] = (cum[j] - sub) * dR / math.Abs(rCell[j])
		}
		b.SetRow(i, row)
	}
	return b
}
