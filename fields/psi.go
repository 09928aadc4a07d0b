/*package fields solves the wakefield potential psi and the azimuthal
magnetic field of the quasi-static slice model. Both solvers share the
same structure: the field at any radius depends on the cumulative
charge or current of all material at smaller radii, so each solve is a
single ordered walk over the particles sorted by radius, carrying the
running sums forward and evaluating queries merged into the same walk.
*/
package fields

import (
	"math"

	"github.com/phil-mansfield/gowake/plasma"
)

// Values of psi below this are clamped. The gamma/pz relations are
// singular at psi = -1, and near the peak of strong blowouts the
// discrete solve can overshoot past it.
const minPsi = -0.90

// deltaPsi evaluates the potential at radius r given the running electron
// sums s1 = sum q and s2 = sum q*ln(r_i) over the particles enclosed by r.
// The ion background is the uniform (plus optionally parabolic) column of
// radius rMax; outside it only its logarithmic far field remains.
func deltaPsi(r, s1, s2, rMax, pc float64) float64 {
	elec := s1*math.Log(r) - s2
	var ion float64
	if r <= rMax {
		ion = 0.25*r*r + pc*r*r*r*r/16
	} else {
		ion = 0.25*rMax*rMax + pc*rMax*rMax*rMax*rMax/16 +
			(0.5*rMax*rMax+0.25*pc*rMax*rMax*rMax*rMax)*math.Log(r/rMax)
	}
	return elec - ion
}

// dPsiDr evaluates dpsi/dr at radius r from the enclosed charge: s1/r for
// the electrons minus the enclosed ion column over r. On the initial
// lattice the two cancel exactly, so an unperturbed column feels no
// radial force.
func dPsiDr(r, s1, rMax, pc float64) float64 {
	if r <= rMax {
		return s1/r - 0.5*r - pc*r*r*r/4
	}
	ionEnc := 0.5*rMax*rMax + 0.25*pc*rMax*rMax*rMax*rMax
	return (s1 - ionEnc) / r
}

// PsiAtParticles solves psi and its two derivatives at every particle
// position, writing into p.Psi, p.DrPsi and p.DxiPsi. order must be the
// radial permutation from p.Sorted(). Returns the boundary constant that
// was subtracted so that psi vanishes far outside the column; PsiAtGrid
// reuses it for the same slice.
//
// psi and dpsi/dr at a particle are linearly interpolated between their
// values at the midpoints to each radial neighbor, where the running sums
// are unambiguous. The innermost particle interpolates from the axis
// (psi and dpsi/dr both zero there); the outermost extrapolates half a
// nominal spacing beyond itself.
func PsiAtParticles(p *plasma.Particles, order []int) float64 {
	n := len(order)
	if n == 0 { return 0 }

	s1, s2 := 0.0, 0.0
	rRight := 0.0
	for is, i := range order {
		ri, qi := p.R[i], p.Q[i]
		s1New := s1 + qi
		s2New := s2 + qi*math.Log(ri)

		rLeft, psiLeft, drPsiLeft := 0.0, 0.0, 0.0
		if is > 0 {
			rLeft = (p.R[order[is-1]] + ri) / 2
			psiLeft = deltaPsi(rLeft, s1, s2, p.RMaxPlasma, p.Parabolic)
			drPsiLeft = dPsiDr(rLeft, s1, p.RMaxPlasma, p.Parabolic)
		}
		rRight = ri + p.DrP/2
		if is < n-1 { rRight = (ri + p.R[order[is+1]]) / 2 }
		psiRight := deltaPsi(rRight, s1New, s2New, p.RMaxPlasma, p.Parabolic)
		drPsiRight := dPsiDr(rRight, s1New, p.RMaxPlasma, p.Parabolic)

		t := (ri - rLeft) / (rRight - rLeft)
		p.Psi[i] = psiLeft + t*(psiRight-psiLeft)
		p.DrPsi[i] = drPsiLeft + t*(drPsiRight-drPsiLeft)

		s1, s2 = s1New, s2New
	}

	// psi -> 0 at the plasma edge or past the last particle, whichever
	// is further out.
	rBnd := rRight
	if p.RMaxPlasma > rBnd { rBnd = p.RMaxPlasma }
	bnd := deltaPsi(rBnd, s1, s2, p.RMaxPlasma, p.Parabolic)
	for _, i := range order {
		p.Psi[i] -= bnd
		if p.Psi[i] < minPsi { p.Psi[i] = minPsi }
	}

	// dpsi/dxi follows from the companion sum of q*pr/(r*(1+psi)), again
	// carried along the same radial walk; the total is added back so the
	// derivative vanishes outside the column.
	s3 := 0.0
	for _, i := range order {
		s3New := s3 + p.Q[i]*p.Pr[i]/(p.R[i]*(1+p.Psi[i]))
		p.DxiPsi[i] = -(s3 + s3New) / 2
		s3 = s3New
	}
	for _, i := range order { p.DxiPsi[i] += s3 }

	return bnd
}

// PsiAtGrid solves psi at the fixed radii rFld, which must be increasing.
// The query radii are merged into the same increasing-r walk over the
// sorted particles, so the whole evaluation is a single pass. bnd is the
// boundary constant returned by PsiAtParticles for this slice.
func PsiAtGrid(rFld []float64, p *plasma.Particles, order []int, bnd float64, out []float64) {
	s1, s2 := 0.0, 0.0
	is := 0
	for j, rj := range rFld {
		for is < len(order) {
			i := order[is]
			if p.R[i] >= rj { break }
			s1 += p.Q[i]
			s2 += p.Q[i] * math.Log(p.R[i])
			is++
		}
		out[j] = deltaPsi(rj, s1, s2, p.RMaxPlasma, p.Parabolic) - bnd
	}
}
