package wake

import (
	"math"

	"github.com/phil-mansfield/gowake/deposit"
	"github.com/phil-mansfield/gowake/grid"
	"github.com/phil-mansfield/gowake/units"
)

// beamSource deposits the drive beam onto the grid once, before the sweep,
// and derives the static azimuthal magnetic field it drives. The beam
// macro-particles are azimuthally reduced to their radius and weighted so
// that the cumulative radial integral of the deposited distribution gives
// the field directly.
func beamSource(
	beam Beam, scale units.Scale, np float64,
	nXi, nR int, xiMin, dXi, dR float64, shape deposit.Shape,
) *grid.Grid {
	n := len(beam.X)
	xi := make([]float64, n)
	r := make([]float64, n)
	w := make([]float64, n)

	sd := scale.SkinDepth
	wNorm := -1 / (units.ElemQ * 2 * math.Pi * dR * dXi * sd * sd * sd * np)
	for i := 0; i < n; i++ {
		xi[i] = beam.Xi[i] / sd
		r[i] = math.Hypot(beam.X[i], beam.Y[i]) / sd
		w[i] = beam.Q[i] * wNorm
	}

	q := deposit.BeamCharge(xi, r, w, xiMin, dR/2, dXi, dR, nXi, nR, shape)
	return deposit.FieldFromCharge(q, dR)
}
