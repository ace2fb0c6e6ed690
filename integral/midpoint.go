// SPDX-License-Identifier: MIT

package integral

import "github.com/katalvlaran/quadra/grid"

// midpoint2D applies the midpoint rule to a two-axis box directly, without
// the odometer engine. Each row is summed on its own before joining the total.
func midpoint2D(f func(p []float64) float64, b grid.Box) float64 {
	if b.Empty() {
		return 0
	}

	p := make([]float64, 2)
	sum := 0.0
	for i := 0; i < b.Counts[0]; i++ {
		p[0] = b.Midpoint(0, i)
		row := 0.0
		for j := 0; j < b.Counts[1]; j++ {
			p[1] = b.Midpoint(1, j)
			row += f(p)
		}
		sum += row
	}

	return sum * b.CellVolume()
}
