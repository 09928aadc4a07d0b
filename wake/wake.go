package wake

import (
	"fmt"

	"github.com/phil-mansfield/gowake/deposit"
	"github.com/phil-mansfield/gowake/fields"
	"github.com/phil-mansfield/gowake/grid"
	"github.com/phil-mansfield/gowake/interp"
	"github.com/phil-mansfield/gowake/plasma"
	"github.com/phil-mansfield/gowake/push"
	"github.com/phil-mansfield/gowake/units"
)

// Result holds the output of a wakefield calculation. The grids and
// coordinate arrays are in skin-depth units; Scale converts them back to
// SI lengths.
type Result struct {
	// Rho is the plasma charge density and Chi its 1/gamma-weighted
	// companion (the plasma susceptibility source).
	Rho, Chi *grid.Grid
	// Er, Ez are the radial and longitudinal field components and BTheta
	// the total azimuthal magnetic field, beam contribution included.
	Er, Ez, BTheta *grid.Grid

	// Xi, R are the grid node coordinates along both axes.
	Xi, R []float64

	Scale units.Scale
}

// CalculateWakefields computes the plasma wakefields driven by the given
// laser pulse and beam. laserA2 is the square of the normalized laser
// envelope on the NXi x NR solver grid (nil for no laser); beam may hold
// zero particles.
//
// The sweep runs from the head of the box (maximum xi) backward. Per
// slice the stages run in a fixed order: gather, radial sort, psi solve,
// gamma/pz update, b_theta solve, freeze, grid evaluation, deposition,
// push. After the sweep the output fields are derived from the potential
// grid by second-order differentiation.
func CalculateWakefields(laserA2 [][]float64, beam Beam, par Params) (*Result, error) {
	shape, kind, err := par.Validate()
	if err != nil { return nil, err }
	par = par.withDefaults()
	if err := beam.validate(); err != nil { return nil, err }
	if laserA2 != nil {
		if len(laserA2) != par.NXi {
			return nil, fmt.Errorf("laser mesh has %d slices, grid has %d",
				len(laserA2), par.NXi)
		}
		for i, row := range laserA2 {
			if len(row) != par.NR {
				return nil, fmt.Errorf(
					"laser mesh row %d has %d cells, grid has %d",
					i, len(row), par.NR)
			}
		}
	}

	scale, err := units.NewScale(par.Density)
	if err != nil { return nil, err }

	// Skin-depth-normalized geometry.
	rMax := scale.Norm(par.RMax)
	xiMin, xiMax := scale.Norm(par.XiMin), scale.Norm(par.XiMax)
	rMaxPlasma := scale.Norm(par.RMaxPlasma)
	pc := scale.NormArea(par.Parabolic)
	dR := rMax / float64(par.NR)
	dXi := (xiMax - xiMin) / float64(par.NXi-1)

	p := plasma.New(rMaxPlasma, pc, dR, par.PPC)

	// Precompute the source meshes, guard cells included.
	a2 := grid.New(par.NXi, par.NR)
	nablaA2 := grid.New(par.NXi, par.NR)
	if laserA2 != nil {
		nabla := grid.RadialGradient(laserA2, dR)
		for i := 0; i < par.NXi; i++ {
			a2.SetRow(i, laserA2[i])
			nablaA2.SetRow(i, nabla[i])
		}
	}

	rFld := grid.CellCenters(dR, par.NR)
	xiFld := grid.Coords(xiMin, xiMax, par.NXi)

	bTheta0 := beamSource(
		beam, scale, par.Density, par.NXi, par.NR, xiMin, dXi, dR, shape)

	meshes := &interp.Meshes{
		A2: a2, NablaA2: nablaA2, BTheta0: bTheta0,
		XiMin: xiMin, XiMax: xiMax,
		RMin: rFld[0], RMax: rFld[par.NR-1],
		DXi: dXi, DR: dR,
	}

	// Persistent grids filled during the sweep.
	rho := grid.New(par.NXi, par.NR)
	chi := grid.New(par.NXi, par.NR)
	psi := grid.New(par.NXi, par.NR)
	bThetaBar := grid.New(par.NXi, par.NR)

	pusher := push.New(kind)

	n := p.N()
	psiRow := make([]float64, par.NR)
	bRow := make([]float64, par.NR)
	wRho := make([]float64, n)
	wChi := make([]float64, n)

	// Main loop, from the last slice down to the first.
	for i := par.NXi - 1; i >= 0; i-- {
		xi := xiFld[i]

		// 1. Gather source terms at the particle radii.
		parallelFor(n, func(lo, hi int) {
			meshes.Gather(xi, p.R[lo:hi],
				p.A2[lo:hi], p.NablaA2[lo:hi], p.BTheta0[lo:hi])
		})

		// 2. Radial ordering for the boundary-integral solves.
		order := p.Sorted()

		// 3. Potential and derivatives at the particles.
		bnd := fields.PsiAtParticles(p, order)

		// 4. Closed-form gamma and pz update.
		parallelFor(n, func(lo, hi int) {
			fields.UpdateGammaPz(p.Pr, p.A2, p.Psi, p.Gamma, p.Pz, lo, hi)
		})

		// 5. Azimuthal magnetic field: one piecewise solve serves both
		// the particles and the grid row below.
		sol := fields.SolveBTheta(p, order)
		sol.AtParticles(p, order)

		// 6. Particles violating the quasistatic condition go back to
		// rest; their charge stays.
		p.Freeze(par.MaxGamma)

		// 7. Evaluate fields at the fixed grid radii.
		fields.PsiAtGrid(rFld, p, order, bnd, psiRow)
		psi.SetRow(i, psiRow)
		sol.AtGrid(rFld, p, order, bRow)
		bThetaBar.SetRow(i, bRow)

		// 8. Deposit the plasma moments.
		for k := 0; k < n; k++ {
			wRho[k] = p.Q[k] / (dR * p.R[k] * (1 - p.Pz[k]/p.Gamma[k]))
			wChi[k] = wRho[k] / p.Gamma[k]
		}
		deposit.Plasma(xi, p.R, wRho, xiMin, rFld[0], dXi, dR, shape, rho)
		deposit.Plasma(xi, p.R, wChi, xiMin, rFld[0], dXi, dR, shape, chi)

		// 9. Advance the column to the next slice. A step that diverged
		// is frozen immediately so the next slice's ordered solves never
		// see a non-finite radius.
		if i > 0 {
			pusher.Step(p, meshes, xi, dXi)
			p.Freeze(par.MaxGamma)
		}
	}

	// Derive E_z, W_r and E_r from the potential grid.
	dXiPsi := grid.New(par.NXi, par.NR)
	dRPsi := grid.New(par.NXi, par.NR)
	psi.Gradient(dXi, dR, dXiPsi, dRPsi)

	ez := negate(dXiPsi)
	er := negate(dRPsi) // W_r until the field combination below
	bTheta := grid.New(par.NXi, par.NR)
	bTheta.AddGrid(bThetaBar)
	bTheta.AddGrid(bTheta0)
	er.AddGrid(bTheta)

	return &Result{
		Rho: rho, Chi: chi,
		Er: er, Ez: ez, BTheta: bTheta,
		Xi: xiFld, R: rFld,
		Scale: scale,
	}, nil
}

func negate(g *grid.Grid) *grid.Grid {
	out := grid.New(g.NXi, g.NR)
	for i := 0; i < g.NXi; i++ {
		src, dst := g.Row(i), out.Row(i)
		for j := range src { dst[j] = -src[j] }
	}
	return out
}
