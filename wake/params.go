/*package wake computes quasi-static plasma wakefields on an axisymmetric
(r, xi) grid, following the reduced model of Baxevanis & Stupakov: a
backward sweep over longitudinal slices, each solving a self-consistent
column of plasma macro-particles.
*/
package wake

import (
	"fmt"

	"github.com/phil-mansfield/gowake/deposit"
	"github.com/phil-mansfield/gowake/push"
)

// Params describes the simulation box and numerical options. All physical
// quantities are in SI units; the solver converts to skin-depth units
// internally.
type Params struct {
	RMax         float64 // radial box extent [m]
	XiMin, XiMax float64 // longitudinal box extents [m]
	NR, NXi      int     // grid cells along r and xi
	PPC          int     // plasma particles per radial cell
	Density      float64 // on-axis plasma density [m^-3]

	// RMaxPlasma is the radial extent of the plasma column [m]. Zero means
	// the plasma fills the box.
	RMaxPlasma float64
	// Parabolic is the transverse parabolic density coefficient [m^-2]:
	// n(r) = Density * (1 + Parabolic*r^2).
	Parabolic float64

	// MaxGamma is the quasistatic validity threshold; particles reaching
	// it are put back at rest. Zero means the default of 10.
	MaxGamma float64

	// Shape is the deposition particle shape, "linear" or "cubic".
	// Empty means "cubic".
	Shape string
	// Pusher selects the plasma pusher, "rk4" or "ab5". Empty means "rk4".
	Pusher string
}

// withDefaults returns a copy of par with the documented defaults filled
// in.
func (par Params) withDefaults() Params {
	if par.MaxGamma == 0 { par.MaxGamma = 10 }
	if par.Shape == "" { par.Shape = "cubic" }
	if par.Pusher == "" { par.Pusher = "rk4" }
	if par.RMaxPlasma == 0 { par.RMaxPlasma = par.RMax }
	return par
}

// Validate checks par and resolves the closed shape and pusher
// enumerations. It fails before any sweep work starts, naming the invalid
// value.
func (par Params) Validate() (deposit.Shape, push.Kind, error) {
	par = par.withDefaults()

	shape, err := deposit.ParseShape(par.Shape)
	if err != nil { return 0, 0, err }
	kind, err := push.ParseKind(par.Pusher)
	if err != nil { return 0, 0, err }

	switch {
	case par.RMax <= 0:
		err = fmt.Errorf("RMax must be positive, got %g", par.RMax)
	case par.XiMax <= par.XiMin:
		err = fmt.Errorf("XiMax (%g) must exceed XiMin (%g)",
			par.XiMax, par.XiMin)
	case par.NR < 3:
		err = fmt.Errorf("NR must be at least 3, got %d", par.NR)
	case par.NXi < 3:
		err = fmt.Errorf("NXi must be at least 3, got %d", par.NXi)
	case par.PPC <= 0:
		err = fmt.Errorf("PPC must be positive, got %d", par.PPC)
	case par.Density <= 0:
		err = fmt.Errorf("Density must be positive, got %g", par.Density)
	case par.RMaxPlasma < 0 || par.RMaxPlasma > par.RMax:
		err = fmt.Errorf("RMaxPlasma (%g) must lie in (0, RMax]",
			par.RMaxPlasma)
	case par.MaxGamma <= 1:
		err = fmt.Errorf("MaxGamma must exceed 1, got %g", par.MaxGamma)
	}
	if err != nil { return 0, 0, err }
	return shape, kind, nil
}

// Beam holds the macro-particles of the drive beam: Cartesian transverse
// positions, longitudinal positions and charges, all in SI units. Beam
// particles are a fixed external source; they are never evolved here.
type Beam struct {
	X, Y, Xi []float64 // [m]
	Q        []float64 // [C]
}

func (b Beam) validate() error {
	n := len(b.X)
	if len(b.Y) != n || len(b.Xi) != n || len(b.Q) != n {
		return fmt.Errorf(
			"beam array lengths differ: X=%d Y=%d Xi=%d Q=%d",
			len(b.X), len(b.Y), len(b.Xi), len(b.Q))
	}
	return nil
}
