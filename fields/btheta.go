package fields

import (
	"github.com/phil-mansfield/gowake/plasma"
)

// BThetaSolution holds the piecewise solution for the plasma part of the
// azimuthal magnetic field at one slice. Between consecutive particle
// rings the field is a*r + b/r; a0 is the slope of the innermost region,
// where regularity on axis forces the 1/r part to vanish.
type BThetaSolution struct {
	a, b []float64 // region coefficients, indexed by sort position
	a0   float64
}

// SolveBTheta computes the piecewise field coefficients from the current
// particle state. Each ring contributes three source coefficients: one
// proportional to the field at the ring itself (the radial-current
// response to the magnetic force), one from the xi-variation of the ring's
// radial current (carrying dpsi/dr, dpsi/dxi, the ponderomotive gradient
// and the beam field), and one from its longitudinal current (the jump of
// the field across the ring). The region coefficients then follow from a
// single inward-to-outward recurrence, written as a linear system in the
// unknown axis slope a0, which is fixed at the end by requiring the field
// to decay outside the last ring. Requires p.Psi, p.DrPsi, p.DxiPsi and
// the gamma/pz update for the current slice.
func SolveBTheta(p *plasma.Particles, order []int) *BThetaSolution {
	n := len(order)
	s := &BThetaSolution{a: make([]float64, n), b: make([]float64, n)}
	if n == 0 { return s }

	// Carry (K, U): the dependence of (a, b) on a0, and accumulate the
	// inhomogeneous parts (T, P) into s.a, s.b.
	kc, uc := make([]float64, n), make([]float64, n)
	K, U, T, P := 1.0, 0.0, 0.0, 0.0
	for k, i := range order {
		ri, pri, qi := p.R[i], p.Pr[i], p.Q[i]
		ai := 1 + p.Psi[i]
		ai2, ai3 := ai*ai, ai*ai*ai
		pr2 := pri * pri

		A := qi / (ri * ai)
		B := qi * (-p.Gamma[i]*p.DrPsi[i]/(ri*ai2) +
			pr2*p.DrPsi[i]/(ri*ai3) +
			pri*p.DxiPsi[i]/(ri*ai2) +
			pr2/(ri*ri*ai2) +
			p.BTheta0[i]/(ri*ai) +
			p.NablaA2[i]/(2*ri*ai2))
		C := qi * (pr2/(ri*ai2) - (p.Gamma[i]/ai-1)/ri)

		l := 1 + A*ri/2
		m := A / (2 * ri)
		nn := -A * ri * ri * ri / 2
		o := 1 - A*ri/2

		K, U = l*K+m*U, nn*K+o*U
		T, P = l*T+m*P+(2*B+A*C)/4, nn*T+o*P+ri*(4*C-2*B*ri-A*C*ri)/4

		kc[k], uc[k] = K, U
		s.a[k], s.b[k] = T, P
	}

	// No growing solution outside the last ring: a_{n-1} = 0.
	s.a0 = -s.a[n-1] / kc[n-1]
	for k := range s.a {
		s.a[k] += kc[k] * s.a0
		s.b[k] += uc[k] * s.a0
	}
	return s
}

// at evaluates the field of region k (k = -1 is the innermost region) at
// radius r.
func (s *BThetaSolution) at(k int, r float64) float64 {
	if k < 0 { return s.a0 * r }
	return s.a[k]*r + s.b[k]/r
}

// AtParticles evaluates the field at every particle position, writing into
// p.BTheta. The field jumps across each ring, so the value at the ring is
// the average of the two neighboring regions.
func (s *BThetaSolution) AtParticles(p *plasma.Particles, order []int) {
	for k, i := range order {
		ri := p.R[i]
		p.BTheta[i] = (s.at(k-1, ri) + s.at(k, ri)) / 2
	}
}

// AtGrid evaluates the field at the fixed increasing radii rFld by merging
// the region lookups into a single walk over the sorted particles.
func (s *BThetaSolution) AtGrid(rFld []float64, p *plasma.Particles, order []int, out []float64) {
	k := -1
	for j, rj := range rFld {
		for k+1 < len(order) {
			if p.R[order[k+1]] >= rj { break }
			k++
		}
		out[j] = s.at(k, rj)
	}
}
