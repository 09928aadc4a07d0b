/*package units handles the boundary between SI quantities and the
skin-depth-normalized units used by the wakefield solver. Every spatial
quantity crosses that boundary through a single Scale value, so a
round trip reproduces the input to floating point precision.
*/
package units

import (
	"fmt"
	"math"
)

// SI values of the physical constants used by the solver (CODATA 2018).
const (
	C        = 299792458.0     // speed of light [m/s]
	ElemQ    = 1.602176634e-19 // elementary charge [C]
	MElec    = 9.1093837015e-31 // electron mass [kg]
	Epsilon0 = 8.8541878128e-12 // vacuum permittivity [F/m]
)

// SkinDepth returns the plasma skin depth c/omega_p for an electron
// density np in m^-3.
func SkinDepth(np float64) float64 {
	omegaP := math.Sqrt(np * ElemQ * ElemQ / (MElec * Epsilon0))
	return C / omegaP
}

// Scale converts lengths between SI and skin-depth units for a fixed
// plasma density.
type Scale struct {
	SkinDepth float64
}

func NewScale(np float64) (Scale, error) {
	if np <= 0 {
		return Scale{}, fmt.Errorf("plasma density must be positive, got %g", np)
	}
	return Scale{SkinDepth: SkinDepth(np)}, nil
}

// Norm converts a length in meters to skin-depth units.
func (s Scale) Norm(x float64) float64 { return x / s.SkinDepth }

// SI converts a length in skin-depth units back to meters.
func (s Scale) SI(x float64) float64 { return x * s.SkinDepth }

// NormArea converts a quantity with dimensions of length^2, e.g. the
// parabolic density-profile coefficient, which multiplies r^2.
func (s Scale) NormArea(x float64) float64 { return x * s.SkinDepth * s.SkinDepth }
