/*package push advances the plasma column from one longitudinal slice to
the next. Two interchangeable integrators are provided: a self-starting
4-stage Runge-Kutta pusher that re-gathers sources at every intermediate
stage, and a 5th-order Adams-Bashforth pusher that reuses stored
derivative history and costs one derivative evaluation per step.
*/
package push

import (
	"fmt"

	"github.com/phil-mansfield/gowake/fields"
	"github.com/phil-mansfield/gowake/interp"
	"github.com/phil-mansfield/gowake/plasma"
)

// Kind selects the pusher implementation.
type Kind int

const (
	RK4 Kind = iota
	AB5
)

// ParseKind converts a pusher name into a Kind. Unrecognized names are a
// configuration error reported before any sweep starts.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "rk4":
		return RK4, nil
	case "ab5":
		return AB5, nil
	}
	return 0, fmt.Errorf("plasma pusher '%s' not recognized", name)
}

func (k Kind) String() string {
	switch k {
	case RK4:
		return "rk4"
	case AB5:
		return "ab5"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Pusher advances particle state by one slice step. Step is called with
// the slice coordinate being left and the (positive) step width; the sweep
// moves toward decreasing xi. The derived per-particle arrays of p must
// hold valid values for the current slice when Step is called.
type Pusher interface {
	Step(p *plasma.Particles, m *interp.Meshes, xi, dXi float64)
}

// New returns a pusher of the given kind.
func New(k Kind) Pusher {
	if k == AB5 { return &ab5{} }
	return &rk4{}
}

// Derivatives evaluates the slice equations of motion
//
//	dr/ds  = pr / (1 + psi)
//	dpr/ds = gamma (dpsi/dr) / (1 + psi) - (grad a^2) / (2 (1 + psi))
//	         - b_theta - b_theta,beam
//
// for every particle, from the derived arrays already stored on p.
func Derivatives(p *plasma.Particles, dR, dPr []float64) {
	for i := range dR {
		onePsi := 1 + p.Psi[i]
		dR[i] = p.Pr[i] / onePsi
		dPr[i] = p.Gamma[i]*p.DrPsi[i]/onePsi -
			p.NablaA2[i]/(2*onePsi) - p.BTheta[i] - p.BTheta0[i]
	}
}

// Reflect applies the on-axis boundary rule: a step that crossed r = 0 is
// folded back to positive radius with its radial momentum reversed. The
// charge weight is untouched, so reflection conserves total charge.
func Reflect(r, pr []float64) {
	for i, ri := range r {
		if ri < 0 {
			r[i] = -ri
			pr[i] = -pr[i]
		}
	}
}

// solveSlice runs the within-slice field pipeline on p at slice coordinate
// xi: source gather, radial ordering, psi solve, gamma/pz update and
// b_theta solve, in that fixed order. Used by the RK4 pusher for its
// intermediate stages; the main driver runs the same sequence stage by
// stage so it can interleave grid evaluation and deposition.
func solveSlice(p *plasma.Particles, m *interp.Meshes, xi float64) {
	m.Gather(xi, p.R, p.A2, p.NablaA2, p.BTheta0)
	order := p.Sorted()
	fields.PsiAtParticles(p, order)
	fields.UpdateGammaPz(p.Pr, p.A2, p.Psi, p.Gamma, p.Pz, 0, p.N())
	fields.SolveBTheta(p, order).AtParticles(p, order)
}
