package push

import (
	"github.com/phil-mansfield/gowake/interp"
	"github.com/phil-mansfield/gowake/plasma"
)

// abCoeffs[k-1] is the order-k Adams-Bashforth coefficient row, newest
// derivative sample first.
var abCoeffs = [5][]float64{
	{1},
	{3. / 2, -1. / 2},
	{23. / 12, -16. / 12, 5. / 12},
	{55. / 24, -59. / 24, 37. / 24, -9. / 24},
	{1901. / 720, -2774. / 720, 2616. / 720, -1274. / 720, 251. / 720},
}

// ab5 is the order-5 explicit multistep pusher. It consumes the derived
// slice arrays the driver has already solved, so a step costs a single
// derivative evaluation and no extra gathers. The startup policy is
// reduced order: with k < 5 stored samples the order-k coefficient row is
// used, so the first steps are deterministic without falling back to a
// different integrator.
type ab5 struct {
	histR, histPr [5][]float64
	depth         int
}

func (ab *ab5) init(n int) {
	for d := 0; d < 5; d++ {
		ab.histR[d] = make([]float64, n)
		ab.histPr[d] = make([]float64, n)
	}
}

func (ab *ab5) Step(p *plasma.Particles, m *interp.Meshes, xi, dXi float64) {
	if ab.histR[0] == nil { ab.init(p.N()) }

	// Shift the history down and store the newest sample at depth 0.
	last := ab.histR[4]
	lastPr := ab.histPr[4]
	for d := 4; d > 0; d-- {
		ab.histR[d] = ab.histR[d-1]
		ab.histPr[d] = ab.histPr[d-1]
	}
	ab.histR[0], ab.histPr[0] = last, lastPr
	Derivatives(p, ab.histR[0], ab.histPr[0])
	if ab.depth < 5 { ab.depth++ }

	c := abCoeffs[ab.depth-1]
	for i := range p.R {
		dr, dpr := 0.0, 0.0
		for d, cd := range c {
			dr += cd * ab.histR[d][i]
			dpr += cd * ab.histPr[d][i]
		}
		p.R[i] += dXi * dr
		p.Pr[i] += dXi * dpr
	}
	Reflect(p.R, p.Pr)
}
