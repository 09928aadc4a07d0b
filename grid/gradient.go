package grid

// gradient1D writes the second-order finite difference derivative of vals
// with spacing h into out: central differences in the interior, one-sided
// three-point stencils at the two edges.
func gradient1D(vals []float64, h float64, out []float64) {
	n := len(vals)
	if n < 3 {
		panic("gradient requires at least 3 points")
	}
	inv2h := 1 / (2 * h)
	out[0] = (-3*vals[0] + 4*vals[1] - vals[2]) * inv2h
	for i := 1; i < n-1; i++ {
		out[i] = (vals[i+1] - vals[i-1]) * inv2h
	}
	out[n-1] = (3*vals[n-1] - 4*vals[n-2] + vals[n-3]) * inv2h
}

// Gradient differentiates the interior of g along both axes and writes the
// results into the interiors of dXiOut and dROut.
func (g *Grid) Gradient(dXi, dR float64, dXiOut, dROut *Grid) {
	// d/dr: rows are contiguous.
	buf := make([]float64, g.NR)
	for i := 0; i < g.NXi; i++ {
		gradient1D(g.Row(i), dR, buf)
		dROut.SetRow(i, buf)
	}

	// d/dxi: walk columns.
	col := make([]float64, g.NXi)
	dcol := make([]float64, g.NXi)
	for j := 0; j < g.NR; j++ {
		for i := 0; i < g.NXi; i++ { col[i] = g.At(i, j) }
		gradient1D(col, dXi, dcol)
		for i := 0; i < g.NXi; i++ { dXiOut.Set(i, j, dcol[i]) }
	}
}

// RadialGradient returns the second-order radial derivative of a row-major
// nXi x nR mesh with cell width dR. Used to precompute the gradient of the
// laser intensity mesh.
func RadialGradient(mesh [][]float64, dR float64) [][]float64 {
	out := make([][]float64, len(mesh))
	for i, row := range mesh {
		out[i] = make([]float64, len(row))
		gradient1D(row, dR, out[i])
	}
	return out
}
