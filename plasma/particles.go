/*package plasma owns the state of the plasma macro-particle column used by
the quasi-static wakefield solver. Particles are stored struct-of-arrays
and their storage order is fixed at creation; radial ordering is expressed
as a separate index permutation so that history-dependent pushers can rely
on particle identity.
*/
package plasma

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Particles holds the state of every plasma macro-particle in a slice
// column, plus the per-slice derived quantities gathered or solved at the
// particle positions.
type Particles struct {
	// Phase space. R > 0 for every particle.
	R, Pr, Pz, Gamma []float64
	// Fixed charge weights. Never modified after initialization.
	Q []float64

	// Per-slice gathered source terms.
	A2, NablaA2, BTheta0 []float64
	// Per-slice solved fields.
	BTheta, Psi, DrPsi, DxiPsi []float64

	// Geometry of the column.
	RMaxPlasma float64 // outer radius of the plasma
	DrP        float64 // nominal inter-particle spacing
	Parabolic  float64 // transverse parabolic density coefficient

	order []int
}

// New creates the plasma column for a box of radial extent rMax with cell
// width dr and ppc particles per cell. The plasma itself extends to
// rMaxPlasma <= rMax. All quantities are in skin-depth units. Particles
// start at rest on a uniform radial lattice, with charge weights matching
// the (possibly parabolic) transverse density profile.
func New(rMaxPlasma, parabolic, dr float64, ppc int) *Particles {
	drP := dr / float64(ppc)
	n := int(rMaxPlasma/drP + 0.5)

	p := &Particles{
		R: make([]float64, n), Pr: make([]float64, n),
		Pz: make([]float64, n), Gamma: make([]float64, n),
		Q: make([]float64, n),

		A2: make([]float64, n), NablaA2: make([]float64, n),
		BTheta0: make([]float64, n), BTheta: make([]float64, n),
		Psi: make([]float64, n), DrPsi: make([]float64, n),
		DxiPsi: make([]float64, n),

		RMaxPlasma: rMaxPlasma,
		DrP:        drP,
		Parabolic:  parabolic,

		order: make([]int, n),
	}

	for i := 0; i < n; i++ {
		r := (float64(i) + 0.5) * drP
		p.R[i] = r
		p.Gamma[i] = 1
		p.Q[i] = drP * r * (1 + parabolic*r*r)
	}
	return p
}

func (p *Particles) N() int { return len(p.R) }

// Sorted returns the indices of the particles in increasing radial order.
// The sort is stable so that coincident radii keep creation order, and the
// permutation buffer is reused across slices. Particle storage never moves.
func (p *Particles) Sorted() []int {
	if len(p.order) != len(p.R) { p.order = make([]int, len(p.R)) }
	for i := range p.order { p.order[i] = i }
	sort.SliceStable(p.order, func(a, b int) bool {
		return p.R[p.order[a]] < p.R[p.order[b]]
	})
	return p.order
}

// Freeze puts every particle whose gamma reached maxGamma back at rest.
// Such particles violate the quasistatic condition; zeroing their momenta
// while keeping their charge weight preserves total charge and behaves
// better than removing them. Non-finite phase-space values count as
// divergence too: the particle is frozen and, if its radius was lost, put
// back on its birth lattice site. Returns the number of particles frozen.
func (p *Particles) Freeze(maxGamma float64) int {
	n := 0
	for i, g := range p.Gamma {
		ok := g < maxGamma && finite(g) && finite(p.R[i]) && finite(p.Pr[i])
		if ok { continue }
		p.Gamma[i] = 1
		p.Pr[i] = 0
		p.Pz[i] = 0
		if !finite(p.R[i]) { p.R[i] = (float64(i) + 0.5) * p.DrP }
		n++
	}
	return n
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// TotalCharge returns the sum of all charge weights.
func (p *Particles) TotalCharge() float64 { return floats.Sum(p.Q) }

// Clone returns a deep copy sharing no storage with p. Used by the RK4
// pusher for intermediate stage evaluations.
func (p *Particles) Clone() *Particles {
	c := New(p.RMaxPlasma, p.Parabolic, p.DrP, 1)
	// New() with ppc=1 and dr=DrP reproduces the particle count.
	copyAll := func(dst, src []float64) { copy(dst, src) }
	copyAll(c.R, p.R)
	copyAll(c.Pr, p.Pr)
	copyAll(c.Pz, p.Pz)
	copyAll(c.Gamma, p.Gamma)
	copyAll(c.Q, p.Q)
	copyAll(c.A2, p.A2)
	copyAll(c.NablaA2, p.NablaA2)
	copyAll(c.BTheta0, p.BTheta0)
	copyAll(c.BTheta, p.BTheta)
	copyAll(c.Psi, p.Psi)
	copyAll(c.DrPsi, p.DrPsi)
	copyAll(c.DxiPsi, p.DxiPsi)
	return c
}
