/*package deposit spreads particle quantities onto the field grids using
selectable particle shapes, and derives the static beam magnetic field from
the deposited beam charge.
*/
package deposit

import (
	"fmt"
)

// Shape selects the particle shape used for deposition.
type Shape int

const (
	// Linear is the order-1 (cloud-in-cell) shape spanning 2 cells per axis.
	Linear Shape = iota
	// Cubic is the order-3 B-spline shape spanning 4 cells per axis.
	Cubic
)

// ParseShape converts a shape name into a Shape. Unrecognized names are a
// configuration error reported before any sweep starts.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "cubic":
		return Cubic, nil
	}
	return 0, fmt.Errorf("particle shape '%s' not recognized", name)
}

func (s Shape) String() string {
	switch s {
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Span returns the stencil width of the shape along one axis.
func (s Shape) Span() int {
	if s == Cubic { return 4 }
	return 2
}

// weights fills w with the shape factors for a particle at fractional cell
// coordinate x (node-centered), and returns the index of the first stencil
// node. The factors sum to 1 for any x, which is what makes deposition
// conserve charge.
func (s Shape) weights(x float64, w *[4]float64) int {
	i0 := int(x)
	if x < 0 { i0-- } // floor for slightly negative guard coordinates
	d := x - float64(i0)

	if s == Linear {
		w[0], w[1] = 1-d, d
		w[2], w[3] = 0, 0
		return i0
	}

	// Cubic B-spline factors over nodes i0-1 .. i0+2.
	e := 1 - d
	w[0] = e * e * e / 6
	w[1] = (4 - 6*d*d + 3*d*d*d) / 6
	w[2] = (4 - 6*e*e + 3*e*e*e) / 6
	w[3] = d * d * d / 6
	return i0 - 1
}
