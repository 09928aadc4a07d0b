package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/gowake/grid"
)

func testMeshes(nXi, nR int, f func(xi, r float64) float64) *Meshes {
	dXi, dR := 0.5, 0.25
	xiMin := -2.0
	rMin := dR / 2

	g := grid.New(nXi, nR)
	for i := 0; i < nXi; i++ {
		for j := 0; j < nR; j++ {
			g.Set(i, j, f(xiMin+float64(i)*dXi, rMin+float64(j)*dR))
		}
	}
	return &Meshes{
		A2: g, NablaA2: g, BTheta0: g,
		XiMin: xiMin, XiMax: xiMin + float64(nXi-1)*dXi,
		RMin: rMin, RMax: rMin + float64(nR-1)*dR,
		DXi: dXi, DR: dR,
	}
}

// Bilinear interpolation reproduces any affine mesh exactly inside the
// node range.
func TestGatherAffine(t *testing.T) {
	f := func(xi, r float64) float64 { return 2*xi + 3*r + 1 }
	m := testMeshes(8, 10, f)

	r := []float64{0.125, 0.3, 1.11, 2.2}
	a2 := make([]float64, len(r))
	nabla := make([]float64, len(r))
	b0 := make([]float64, len(r))

	xi := -1.37
	m.Gather(xi, r, a2, nabla, b0)
	for k, rk := range r {
		assert.InDelta(t, f(xi, rk), a2[k], 1e-12)
		assert.InDelta(t, f(xi, rk), nabla[k], 1e-12)
		assert.InDelta(t, f(xi, rk), b0[k], 1e-12)
	}
}

// Coordinates outside the node range clamp to the nearest node, which for
// the radial axis respects the even symmetry of the sources on axis.
func TestGatherClamps(t *testing.T) {
	f := func(xi, r float64) float64 { return 10*xi + r }
	m := testMeshes(6, 6, f)

	r := []float64{1e-4, m.RMax + 5}
	a2 := make([]float64, 2)
	buf := make([]float64, 2)

	m.Gather(m.XiMin-3, r, a2, buf, buf)
	assert.InDelta(t, f(m.XiMin, m.RMin), a2[0], 1e-12)
	assert.InDelta(t, f(m.XiMin, m.RMax), a2[1], 1e-12)

	m.Gather(m.XiMax+1, r, a2, buf, buf)
	assert.InDelta(t, f(m.XiMax, m.RMin), a2[0], 1e-12)
}

// A diverged particle can carry a non-finite radius into the gather; it
// must clamp like any out-of-range coordinate instead of indexing off the
// grid.
func TestGatherNonFinite(t *testing.T) {
	f := func(xi, r float64) float64 { return 10*xi + r }
	m := testMeshes(6, 6, f)

	r := []float64{math.NaN(), math.Inf(1), math.Inf(-1)}
	a2 := make([]float64, 3)
	buf := make([]float64, 3)

	assert.NotPanics(t, func() { m.Gather(-1, r, a2, buf, buf) })
	assert.InDelta(t, f(-1, m.RMin), a2[0], 1e-12)
	assert.InDelta(t, f(-1, m.RMax), a2[1], 1e-12)
	assert.InDelta(t, f(-1, m.RMin), a2[2], 1e-12)

	assert.NotPanics(t, func() {
		m.Gather(math.NaN(), r[:1], a2[:1], buf[:1], buf[:1])
	})
	assert.InDelta(t, f(m.XiMin, m.RMin), a2[0], 1e-12)
}
