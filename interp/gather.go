/*package interp gathers the precomputed source meshes (laser intensity,
its radial gradient, and the static beam magnetic field) onto the radial
positions of the plasma particles at a given longitudinal slice.
*/
package interp

import (
	"github.com/phil-mansfield/gowake/grid"
)

// Meshes bundles the read-only source grids and the box geometry needed to
// evaluate them. All coordinates are in skin-depth units.
type Meshes struct {
	A2, NablaA2, BTheta0 *grid.Grid
	XiMin, XiMax         float64
	RMin, RMax           float64
	DXi, DR              float64
}

// Gather bilinearly interpolates the three source meshes at slice
// coordinate xi onto every particle radius in r, writing the results into
// a2, nablaA2 and bTheta0. Coordinates are clamped to the mesh node range;
// radial clamping at the axis is consistent with the even symmetry of the
// sources, and guard cells make the stencil branchless everywhere else.
func (m *Meshes) Gather(xi float64, r, a2, nablaA2, bTheta0 []float64) {
	// Inverted comparisons so NaN coordinates clamp instead of producing
	// a garbage cell index.
	if !(xi > m.XiMin) { xi = m.XiMin }
	if xi > m.XiMax { xi = m.XiMax }

	// Fractional slice index and xi weights, shared by all particles.
	xc := (xi - m.XiMin) / m.DXi
	i0 := int(xc)
	if i0 > m.A2.NXi-2 { i0 = m.A2.NXi - 2 }
	u := xc - float64(i0)

	for k, rk := range r {
		if !(rk > m.RMin) { rk = m.RMin }
		if rk > m.RMax { rk = m.RMax }
		rc := (rk - m.RMin) / m.DR
		j0 := int(rc)
		if j0 > m.A2.NR-2 { j0 = m.A2.NR - 2 }
		v := rc - float64(j0)

		w00 := (1 - u) * (1 - v)
		w01 := (1 - u) * v
		w10 := u * (1 - v)
		w11 := u * v

		a2[k] = w00*m.A2.At(i0, j0) + w01*m.A2.At(i0, j0+1) +
			w10*m.A2.At(i0+1, j0) + w11*m.A2.At(i0+1, j0+1)
		nablaA2[k] = w00*m.NablaA2.At(i0, j0) + w01*m.NablaA2.At(i0, j0+1) +
			w10*m.NablaA2.At(i0+1, j0) + w11*m.NablaA2.At(i0+1, j0+1)
		bTheta0[k] = w00*m.BTheta0.At(i0, j0) + w01*m.BTheta0.At(i0, j0+1) +
			w10*m.BTheta0.At(i0+1, j0) + w11*m.BTheta0.At(i0+1, j0+1)
	}
}
