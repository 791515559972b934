package optimize

import "math"

const (
	// refineMaxIterations caps the local polish stage.
	refineMaxIterations = 100

	// refineInitialStep is the first compass poll step in meters.
	refineInitialStep = 0.5

	// refineTolerance ends refinement once the poll step contracts below
	// it: the point is a local minimum at that scale.
	refineTolerance = 1e-3
)

// refine performs a bounded compass search from the start point: poll every
// axis direction at the current step, move to the best improvement, halve
// the step on failure. Deterministic, derivative-free, and clamped to the
// per-dimension bounds throughout.
//
// It returns the refined position, its score, and whether the search
// converged (step contracted below tolerance) within the iteration cap.
func refine(obj Objectiver, start []float64, lower, upper []float64, maxIter int) (pos []float64, val float64, converged bool, err error) {
	ndim := len(start)
	pos = append([]float64{}, start...)

	val, err = obj.Objective(pos)
	if err != nil {
		return start, math.Inf(1), false, err
	}

	step := refineInitialStep
	trial := make([]float64, ndim)

	for iter := 0; iter < maxIter; iter++ {
		if step < refineTolerance {
			return pos, val, true, nil
		}

		improved := false
		bestVal := val
		bestDim, bestDir := -1, 0.0

		for j := 0; j < ndim; j++ {
			for _, dir := range [2]float64{1, -1} {
				copy(trial, pos)
				trial[j] = clampTo(trial[j]+dir*step, lower[j], upper[j])
				if trial[j] == pos[j] {
					continue
				}
				tv, terr := obj.Objective(trial)
				if terr != nil {
					return pos, val, false, terr
				}
				if tv < bestVal {
					bestVal = tv
					bestDim, bestDir = j, dir
					improved = true
				}
			}
		}

		if improved {
			pos[bestDim] = clampTo(pos[bestDim]+bestDir*step, lower[bestDim], upper[bestDim])
			val = bestVal
		} else {
			step *= 0.5
		}
	}

	return pos, val, step < refineTolerance, nil
}

func clampTo(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
