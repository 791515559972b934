package coverage

import (
	"math"

	"github.com/JulianWebber/VLCNetPlanner/pkg/geo"
	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
)

const (
	// coarseGridSize is the per-axis sample count of the optimizer's fast
	// coverage estimate. Much coarser than the full analyzer grid: this
	// score runs thousands of times per optimization.
	coarseGridSize = 100

	// coarseFalloff is the Gaussian length scale of the smooth coverage
	// field, standing in for the hard coverage-radius cutoff.
	coarseFalloff = 3.0

	// coarseThreshold marks a grid point as covered when the summed field
	// exceeds it.
	coarseThreshold = 0.2
)

// CoarseScore estimates the covered fraction of the floor in [0,1] for a set
// of candidate emitter positions. It trades the Lambertian/reflection model
// for a smooth Gaussian falloff so the placement optimizer can afford to
// call it in its inner loop. Not suitable for final reporting; use Analyze.
func CoarseScore(fp plan.FloorPlan, positions []geo.Point2D) float64 {
	if len(positions) == 0 {
		return 0
	}

	dx := fp.Width / (coarseGridSize - 1)
	dy := fp.Height / (coarseGridSize - 1)

	covered := 0
	for iy := 0; iy < coarseGridSize; iy++ {
		y := float64(iy) * dy
		for ix := 0; ix < coarseGridSize; ix++ {
			x := float64(ix) * dx

			field := 0.0
			for _, p := range positions {
				ddx := x - p.X
				ddy := y - p.Y
				d2 := ddx*ddx + ddy*ddy
				field += math.Exp(-0.5 * d2 / (coarseFalloff * coarseFalloff))
				if field > coarseThreshold {
					break
				}
			}
			if field > coarseThreshold {
				covered++
			}
		}
	}
	return float64(covered) / float64(coarseGridSize*coarseGridSize)
}
