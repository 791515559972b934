package optimize

import (
	"context"
	"math/rand"

	"github.com/JulianWebber/VLCNetPlanner/pkg/geo"
	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
)

// Result is the outcome of one placement optimization.
type Result struct {
	// Components carries the input components with updated positions only;
	// ids, kinds, and properties pass through unchanged, in input order.
	Components []plan.Component

	BestScore   float64
	Iterations  int
	Evaluations int

	// RefinerConverged is false when the local polish stage hit its
	// iteration cap before settling. The swarm result still stands; this
	// is a warning, never a failure.
	RefinerConverged bool
}

// Option configures a Placement call.
type Option func(*runner)

// WithTrace records the swarm's best score and position after every
// iteration, for offline inspection of a run.
func WithTrace(rec TraceRecorder) Option {
	return func(r *runner) { r.trace = rec }
}

type runner struct {
	trace TraceRecorder
}

// Placement optimizes the positions of all components on the floor plan.
// The swarm searches globally, then a compass refiner polishes the best
// candidate against the same objective and bounds. Cancellation is checked
// once per swarm iteration and once before refinement begins.
func Placement(ctx context.Context, fp plan.FloorPlan, comps []plan.Component, cfg plan.OptimizationConfig, opts ...Option) (*Result, error) {
	if err := fp.Validate(); err != nil {
		return nil, err
	}
	if err := plan.ValidateComponents(comps); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var run runner
	for _, opt := range opts {
		opt(&run)
	}

	if len(comps) == 0 {
		return &Result{Components: []plan.Component{}, RefinerConverged: true}, nil
	}

	lower, upper := bounds(fp, cfg, len(comps))
	obj := NewLayoutObjective(fp, comps, cfg)
	rng := rand.New(rand.NewSource(cfg.Seed))
	sw := newSwarm(swarmSize(len(comps)), lower, upper, rng)

	iterations := 0
	for i := 0; i < cfg.MaxIterations; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := sw.step(obj); err != nil {
			return nil, err
		}
		iterations++

		if run.trace != nil {
			if err := run.trace.RecordIteration(iterations, sw.bestVal, sw.bestPos); err != nil {
				return nil, err
			}
		}

		if sw.bestVal < earlyExitScore {
			break
		}
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	bestPos := sw.bestPos
	bestVal := sw.bestVal
	refined, refinedVal, converged, err := refine(obj, bestPos, lower, upper, refineMaxIterations)
	if err == nil && refinedVal <= bestVal {
		bestPos = refined
		bestVal = refinedVal
	} else {
		// Refinement is a polish step, never a required one: fall back to
		// the swarm's best candidate.
		converged = false
	}

	return &Result{
		Components:       reshape(fp, comps, bestPos),
		BestScore:        bestVal,
		Iterations:       iterations,
		Evaluations:      sw.nevals,
		RefinerConverged: converged,
	}, nil
}

// bounds builds the flat per-dimension search bounds: every coordinate is
// kept a wall margin away from its wall. Floors too small for the margin
// fall back to the full extent.
func bounds(fp plan.FloorPlan, cfg plan.OptimizationConfig, n int) (lower, upper []float64) {
	loX, hiX := marginBound(fp.Width, cfg.WallMargin)
	loY, hiY := marginBound(fp.Height, cfg.WallMargin)

	lower = make([]float64, 2*n)
	upper = make([]float64, 2*n)
	for i := 0; i < n; i++ {
		lower[2*i], upper[2*i] = loX, hiX
		lower[2*i+1], upper[2*i+1] = loY, hiY
	}
	return lower, upper
}

func marginBound(extent, margin float64) (float64, float64) {
	lo, hi := margin, extent-margin
	if hi <= lo {
		return 0, extent
	}
	return lo, hi
}

// reshape carries the input components through with updated positions,
// clamped into the floor bounds. Ids and properties are untouched.
func reshape(fp plan.FloorPlan, comps []plan.Component, pos []float64) []plan.Component {
	out := make([]plan.Component, len(comps))
	copy(out, comps)
	min := geo.Origin
	max := geo.Pt(fp.Width, fp.Height)
	for i := range out {
		out[i].Position = geo.Pt(pos[2*i], pos[2*i+1]).Clamp(min, max)
	}
	return out
}
