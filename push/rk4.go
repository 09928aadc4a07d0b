package push

import (
	"github.com/phil-mansfield/gowake/interp"
	"github.com/phil-mansfield/gowake/plasma"
)

// rk4 is the self-starting 4-stage Runge-Kutta pusher. Each stage
// evaluates the full within-slice field pipeline on a scratch copy of the
// column at an intermediate slice offset, which makes it roughly four
// times as expensive per step as the multistep pusher but free of any
// history requirement.
type rk4 struct {
	scratch                *plasma.Particles
	k1r, k2r, k3r, k4r     []float64
	k1pr, k2pr, k3pr, k4pr []float64
}

func (rk *rk4) init(p *plasma.Particles) {
	n := p.N()
	rk.scratch = p.Clone()
	bufs := make([]float64, 8*n)
	rk.k1r, rk.k2r = bufs[0:n], bufs[n:2*n]
	rk.k3r, rk.k4r = bufs[2*n:3*n], bufs[3*n:4*n]
	rk.k1pr, rk.k2pr = bufs[4*n:5*n], bufs[5*n:6*n]
	rk.k3pr, rk.k4pr = bufs[6*n:7*n], bufs[7*n:8*n]
}

// stage loads the candidate state (r0 + h*dr, pr0 + h*dpr) into the
// scratch column, solves the slice fields there at coordinate xi, and
// writes the resulting derivatives into dROut, dPrOut.
func (rk *rk4) stage(
	p *plasma.Particles, m *interp.Meshes, xi, h float64,
	dRIn, dPrIn, dROut, dPrOut []float64,
) {
	s := rk.scratch
	if dRIn == nil {
		copy(s.R, p.R)
		copy(s.Pr, p.Pr)
	} else {
		for i := range s.R {
			s.R[i] = p.R[i] + h*dRIn[i]
			s.Pr[i] = p.Pr[i] + h*dPrIn[i]
		}
		Reflect(s.R, s.Pr)
	}
	solveSlice(s, m, xi)
	Derivatives(s, dROut, dPrOut)
}

func (rk *rk4) Step(p *plasma.Particles, m *interp.Meshes, xi, dXi float64) {
	if rk.scratch == nil { rk.init(p) }
	half := dXi / 2

	rk.stage(p, m, xi, 0, nil, nil, rk.k1r, rk.k1pr)
	rk.stage(p, m, xi-half, half, rk.k1r, rk.k1pr, rk.k2r, rk.k2pr)
	rk.stage(p, m, xi-half, half, rk.k2r, rk.k2pr, rk.k3r, rk.k3pr)
	rk.stage(p, m, xi-dXi, dXi, rk.k3r, rk.k3pr, rk.k4r, rk.k4pr)

	w := dXi / 6
	for i := range p.R {
		p.R[i] += w * (rk.k1r[i] + 2*rk.k2r[i] + 2*rk.k3r[i] + rk.k4r[i])
		p.Pr[i] += w * (rk.k1pr[i] + 2*rk.k2pr[i] + 2*rk.k3pr[i] + rk.k4pr[i])
	}
	Reflect(p.R, p.Pr)
}
