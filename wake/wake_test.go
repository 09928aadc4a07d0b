package wake

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/gowake/deposit"
	"github.com/phil-mansfield/gowake/grid"
	"github.com/phil-mansfield/gowake/units"
)

const testDensity = 1e24 // m^-3

func testParams(nXi, nR int) Params {
	sd := units.SkinDepth(testDensity)
	return Params{
		RMax: 5 * sd, XiMin: -4 * sd, XiMax: 0,
		NR: nR, NXi: nXi, PPC: 2,
		Density: testDensity,
		Shape:   "linear", Pusher: "rk4",
	}
}

// gaussianLaser samples a laser intensity profile on the solver grid, in
// normalized units already.
func gaussianLaser(par Params, a0Sq, waist, length, center float64) [][]float64 {
	sd := units.SkinDepth(par.Density)
	dR := par.RMax / sd / float64(par.NR)
	xiMin := par.XiMin / sd
	dXi := (par.XiMax - par.XiMin) / sd / float64(par.NXi-1)

	mesh := make([][]float64, par.NXi)
	for i := range mesh {
		xi := xiMin + float64(i)*dXi - center
		ampl := a0Sq * math.Exp(-xi*xi/(2*length*length))
		mesh[i] = make([]float64, par.NR)
		for j := range mesh[i] {
			r := (float64(j) + 0.5) * dR
			mesh[i][j] = ampl * math.Exp(-2*r*r/(waist*waist))
		}
	}
	return mesh
}

func TestConfigErrors(t *testing.T) {
	par := testParams(8, 16)

	bad := par
	bad.Pusher = "verlet"
	_, err := CalculateWakefields(nil, Beam{}, bad)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "verlet")

	bad = par
	bad.Shape = "spline9"
	_, err = CalculateWakefields(nil, Beam{}, bad)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "spline9")

	bad = par
	bad.NR = 0
	_, err = CalculateWakefields(nil, Beam{}, bad)
	assert.Error(t, err)

	// The radial gradient stencil needs three columns, so tiny grids are
	// rejected up front instead of panicking after the sweep.
	bad = par
	bad.NR = 2
	_, err = CalculateWakefields(nil, Beam{}, bad)
	assert.Error(t, err)

	bad = par
	bad.XiMax = bad.XiMin
	_, err = CalculateWakefields(nil, Beam{}, bad)
	assert.Error(t, err)

	bad = par
	bad.Density = -1
	_, err = CalculateWakefields(nil, Beam{}, bad)
	assert.Error(t, err)

	// Mismatched beam arrays.
	beam := Beam{X: []float64{0, 0}, Y: []float64{0}, Xi: []float64{0}, Q: []float64{0}}
	_, err = CalculateWakefields(nil, beam, par)
	assert.Error(t, err)

	// Mis-shaped laser mesh.
	mesh := make([][]float64, par.NXi-1)
	for i := range mesh { mesh[i] = make([]float64, par.NR) }
	_, err = CalculateWakefields(mesh, Beam{}, par)
	assert.Error(t, err)
}

// With no drive at all the plasma stays quiescent: the output fields
// vanish up to the quadrature residual of the column discretization, and
// the density grids hold the unperturbed background.
func TestQuiescentPlasma(t *testing.T) {
	par := testParams(8, 32)
	res, err := CalculateWakefields(nil, Beam{}, par)
	assert.NoError(t, err)

	// Ez is flat to the log-quadrature residual of psi; Er differences
	// that residual across a cell, so it carries an extra factor 1/dR.
	assert.InDelta(t, 0, res.Ez.MaxAbs(), 5e-3)
	assert.InDelta(t, 0, res.Er.MaxAbs(), 7e-2)
	assert.InDelta(t, 0, res.BTheta.MaxAbs(), 5e-2)

	// Background density away from the box edges.
	for i := 1; i < par.NXi-1; i++ {
		assert.InDelta(t, 1.0, res.Rho.At(i, 16), 0.05)
		assert.InDelta(t, 1.0, res.Chi.At(i, 16), 0.05)
	}
}

// A narrow on-axis beam: the static field it drives must match the
// enclosed-charge prediction at every radius outside the beam, Ampere's
// law on the grid.
func TestBeamFieldAmpere(t *testing.T) {
	par := testParams(32, 64)
	scale, err := units.NewScale(par.Density)
	assert.NoError(t, err)
	sd := scale.SkinDepth

	dR := 5.0 / 64
	dXi := 4.0 / 31
	xiMin := -4.0

	// 100 identical macro-particles on a ring at the center of radial
	// cell 1, at the xi node of slice 10.
	n := 100
	qTot := -1e-12
	beam := Beam{
		X: make([]float64, n), Y: make([]float64, n),
		Xi: make([]float64, n), Q: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		beam.X[i] = 1.5 * dR * sd
		beam.Xi[i] = (xiMin + 10*dXi) * sd
		beam.Q[i] = qTot / float64(n)
	}

	b := beamSource(beam, scale, par.Density,
		par.NXi, par.NR, xiMin, dXi, dR, deposit.Linear)

	wTot := -qTot / (units.ElemQ * 2 * math.Pi * dR * dXi *
		sd * sd * sd * par.Density)
	// Compare at the radii the deposit itself uses, not a re-derived
	// lattice that can differ by an ulp.
	rCell := grid.CellCenters(dR, par.NR)
	for j := 3; j < par.NR; j++ {
		assert.InEpsilon(t, wTot*dR/rCell[j], b.At(10, j), 1e-9)
	}

	// Single-sign charge: r*b grows monotonically, up to roundoff.
	for j := 1; j < par.NR; j++ {
		assert.True(t, b.At(10, j)*rCell[j] >= b.At(10, j-1)*rCell[j-1]-1e-9)
	}

	// Slices without beam charge stay field-free.
	assert.Equal(t, 0.0, b.At(20, 30))
}

// The two particle shapes must converge to the same density profile as
// the grid is refined.
func TestShapeConvergence(t *testing.T) {
	diff := func(nR int) float64 {
		par := testParams(16, nR)
		par.PPC = 4
		mesh := gaussianLaser(par, 1.0, 1.5, 1.0, -2.0)

		par.Shape = "linear"
		lin, err := CalculateWakefields(mesh, Beam{}, par)
		assert.NoError(t, err)
		par.Shape = "cubic"
		cub, err := CalculateWakefields(mesh, Beam{}, par)
		assert.NoError(t, err)

		max := 0.0
		for i := 1; i < par.NXi-1; i++ {
			rowL, rowC := lin.Rho.Row(i), cub.Rho.Row(i)
			for j := range rowL {
				d := math.Abs(rowL[j] - rowC[j])
				if d > max { max = d }
			}
		}
		return max
	}

	d32, d64 := diff(32), diff(64)
	assert.Less(t, d64, d32, "shape difference must shrink with resolution")
}

// The self-starting and multistep integrators agree on the wakefield of a
// moderate laser drive.
func TestPusherAgreement(t *testing.T) {
	par := testParams(64, 32)
	mesh := gaussianLaser(par, 0.5, 1.5, 1.0, -2.0)

	par.Pusher = "rk4"
	rk, err := CalculateWakefields(mesh, Beam{}, par)
	assert.NoError(t, err)
	par.Pusher = "ab5"
	ab, err := CalculateWakefields(mesh, Beam{}, par)
	assert.NoError(t, err)

	scale := rk.Ez.MaxAbs()
	assert.Greater(t, scale, 0.0)
	maxDiff := 0.0
	for i := 0; i < par.NXi; i++ {
		rowRK, rowAB := rk.Ez.Row(i), ab.Ez.Row(i)
		for j := range rowRK {
			d := math.Abs(rowRK[j] - rowAB[j])
			if d > maxDiff { maxDiff = d }
		}
	}
	assert.Less(t, maxDiff, 0.05*scale+1e-4)
}

// chi = rho / gamma cell by cell, so gamma >= 1 shows up as chi <= rho
// wherever the deposits are positive.
func TestChiBoundedByRho(t *testing.T) {
	par := testParams(16, 32)
	mesh := gaussianLaser(par, 0.5, 1.5, 1.0, -2.0)
	res, err := CalculateWakefields(mesh, Beam{}, par)
	assert.NoError(t, err)

	for i := 0; i < par.NXi; i++ {
		rowR, rowC := res.Rho.Row(i), res.Chi.Row(i)
		for j := range rowR {
			assert.True(t, rowC[j] <= rowR[j]+1e-12,
				"chi exceeds rho at (%d, %d)", i, j)
		}
	}
}

func TestResultGeometry(t *testing.T) {
	par := testParams(8, 16)
	res, err := CalculateWakefields(nil, Beam{}, par)
	assert.NoError(t, err)

	assert.Equal(t, par.NXi, len(res.Xi))
	assert.Equal(t, par.NR, len(res.R))
	for j := 1; j < len(res.R); j++ {
		assert.True(t, res.R[j] > res.R[j-1] && res.R[j-1] > 0)
	}
	assert.InDelta(t, par.XiMin, res.Scale.SI(res.Xi[0]), 1e-12)
	assert.InDelta(t, par.XiMax, res.Scale.SI(res.Xi[len(res.Xi)-1]), 1e-12)
}
