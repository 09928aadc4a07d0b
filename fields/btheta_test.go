package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/gowake/plasma"
)

// A column at rest with psi = 0 has no source at all: every coefficient
// is exactly zero.
func TestBThetaZeroSource(t *testing.T) {
	p := quiescentColumn()
	order := p.Sorted()

	sol := SolveBTheta(p, order)
	sol.AtParticles(p, order)
	for i := 0; i < p.N(); i++ { assert.Equal(t, 0.0, p.BTheta[i]) }

	rFld := []float64{0.5, 2, 6}
	b := make([]float64, len(rFld))
	sol.AtGrid(rFld, p, order, b)
	for j := range b { assert.Equal(t, 0.0, b[j]) }
}

// One ring with a known longitudinal current: the whole solve reduces to
// scalars that can be checked by hand. With r = 1, q = 0.1, pz = 0.2
// (gamma - pz = 1 + psi with psi = 0) the field is a0*r inside the ring
// and b/r outside, and it jumps by the ring current across it.
func TestBThetaSingleRing(t *testing.T) {
	p := plasma.New(2, 0, 2.0, 1)
	q, pz := 0.1, 0.2
	p.Q[0] = q
	p.Pz[0] = pz
	p.Gamma[0] = 1 + pz
	order := p.Sorted()

	A := q       // q/(r*(1+psi)) at r = 1
	C := -q * pz // current jump, pr = 0
	K := 1 + A/2
	T := A * C / 4
	P := C - A*C/4
	a0 := -T / K
	bOut := -A/2*a0 + P

	sol := SolveBTheta(p, order)
	sol.AtParticles(p, order)
	assert.InDelta(t, (a0+bOut)/2, p.BTheta[0], 1e-15,
		"ring sees the average of both sides")

	rFld := []float64{0.5, 2, 4}
	b := make([]float64, len(rFld))
	sol.AtGrid(rFld, p, order, b)
	assert.InDelta(t, a0*0.5, b[0], 1e-15)
	assert.InDelta(t, bOut/2, b[1], 1e-15)
	assert.InDelta(t, bOut/4, b[2], 1e-15)

	// Extrapolating both regions to the ring radius recovers the
	// current jump exactly.
	assert.InDelta(t, C, 2*b[1]-2*b[0], 1e-15)
}

// Outside the last ring the growing solution is suppressed, so the field
// decays as 1/r: r*b is constant there.
func TestBThetaFarFieldDecay(t *testing.T) {
	p := quiescentColumn()
	for i := 0; i < p.N(); i++ {
		p.Pz[i] = 0.2
		p.Gamma[i] = 1.2
	}
	order := p.Sorted()
	sol := SolveBTheta(p, order)

	rFld := []float64{6, 8, 12}
	b := make([]float64, len(rFld))
	sol.AtGrid(rFld, p, order, b)
	assert.InDelta(t, b[0]*6, b[1]*8, 1e-12)
	assert.InDelta(t, b[0]*6, b[2]*12, 1e-12)
}

// The full per-slice pipeline on an undisturbed column: the only sources
// are the quadrature residuals of psi, so the field stays small.
func TestBThetaQuiescentPipeline(t *testing.T) {
	p := quiescentColumn()
	order := p.Sorted()
	PsiAtParticles(p, order)
	UpdateGammaPz(p.Pr, p.A2, p.Psi, p.Gamma, p.Pz, 0, p.N())

	sol := SolveBTheta(p, order)
	sol.AtParticles(p, order)
	for i := 0; i < p.N(); i++ {
		assert.InDelta(t, 0, p.BTheta[i], 5e-2)
	}
}
