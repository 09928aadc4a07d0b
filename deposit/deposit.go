package deposit

import (
	"github.com/phil-mansfield/gowake/grid"
)

// Plasma deposits one weight per particle onto g at longitudinal
// coordinate xi, which is shared by the whole plasma column of the current
// slice. Grid rows sit at xi = xiMin + i*dXi and radial cell centers at
// r = rMin + j*dR. Deposits landing in the guard band are kept there, so
// charge near the box boundary is not lost.
func Plasma(
	xi float64, r, w []float64,
	xiMin, rMin, dXi, dR float64,
	shape Shape, g *grid.Grid,
) {
	var wXi, wR [4]float64
	span := shape.Span()

	i0 := shape.weights((xi-xiMin)/dXi, &wXi)
	for k, rk := range r {
		j0 := shape.weights((rk-rMin)/dR, &wR)
		if j0 < -grid.Guard || j0+span > g.NR+grid.Guard { continue }

		for a := 0; a < span; a++ {
			for b := 0; b < span; b++ {
				g.Add(i0+a, j0+b, w[k]*wXi[a]*wR[b])
			}
		}
	}
}
