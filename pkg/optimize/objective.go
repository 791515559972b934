// Package optimize searches component placements against a multi-objective
// score: a particle swarm explores the floor globally and a compass-search
// refiner polishes the best candidate. Lower scores are better.
package optimize

import (
	"math"

	"github.com/JulianWebber/VLCNetPlanner/pkg/coverage"
	"github.com/JulianWebber/VLCNetPlanner/pkg/geo"
	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
)

// penaltyWeight multiplies the wall and spacing penalties so the optimizer
// treats them as near-constraints rather than trade-offs against coverage.
const penaltyWeight = 5.0

// Objectiver evaluates a flat position vector (x0,y0,x1,y1,...) and returns
// the objective value. Lower values are better.
type Objectiver interface {
	Objective(v []float64) (float64, error)
}

// LayoutObjective scores a candidate layout for one floor plan and weighting
// configuration. It is a pure function of the position vector.
type LayoutObjective struct {
	FloorPlan plan.FloorPlan
	Config    plan.OptimizationConfig

	// TotalSourcePower is the summed emitter power in W, used for the
	// power-efficiency term. Zero when the layout has no light sources.
	TotalSourcePower float64
}

// NewLayoutObjective builds the scorer for the given components.
func NewLayoutObjective(fp plan.FloorPlan, comps []plan.Component, cfg plan.OptimizationConfig) *LayoutObjective {
	total := 0.0
	for _, c := range comps {
		if c.Kind == plan.KindLightSource && c.Source != nil {
			total += c.Source.Power
		}
	}
	return &LayoutObjective{FloorPlan: fp, Config: cfg, TotalSourcePower: total}
}

// Objective scores the flat position vector. The vector length must be even;
// each pair is one component position in component-list order.
func (o *LayoutObjective) Objective(v []float64) (float64, error) {
	positions := unflatten(v)
	cfg := o.Config

	coverageScore := coverage.CoarseScore(o.FloorPlan, positions)

	powerEfficiency := 0.0
	if o.TotalSourcePower > 0 {
		powerEfficiency = coverageScore / o.TotalSourcePower
	}

	score := -cfg.CoverageWeight*coverageScore +
		cfg.InterferenceWeight*o.interferencePenalty(positions) +
		cfg.PowerWeight*(1-powerEfficiency) +
		penaltyWeight*o.wallPenalty(positions) +
		penaltyWeight*o.spacingPenalty(positions)

	return score, nil
}

// interferencePenalty is a smooth proxy for pairwise interference: every
// pair closer than the minimum distance contributes exp(-distance). Cheap
// and differentiable, unlike the analyzer's discrete interference count.
func (o *LayoutObjective) interferencePenalty(positions []geo.Point2D) float64 {
	penalty := 0.0
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			d := positions[i].Distance(positions[j])
			if d < o.Config.MinDistance {
				penalty += math.Exp(-d)
			}
		}
	}
	return penalty
}

func (o *LayoutObjective) wallPenalty(positions []geo.Point2D) float64 {
	penalty := 0.0
	for _, p := range positions {
		wallDist := math.Min(
			math.Min(p.X, o.FloorPlan.Width-p.X),
			math.Min(p.Y, o.FloorPlan.Height-p.Y),
		)
		if gap := o.Config.WallMargin - wallDist; gap > 0 {
			penalty += gap * gap
		}
	}
	return penalty
}

func (o *LayoutObjective) spacingPenalty(positions []geo.Point2D) float64 {
	penalty := 0.0
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			if gap := o.Config.MinDistance - positions[i].Distance(positions[j]); gap > 0 {
				penalty += gap * gap
			}
		}
	}
	return penalty
}

func unflatten(v []float64) []geo.Point2D {
	positions := make([]geo.Point2D, len(v)/2)
	for i := range positions {
		positions[i] = geo.Pt(v[2*i], v[2*i+1])
	}
	return positions
}

func flatten(comps []plan.Component) []float64 {
	v := make([]float64, 0, 2*len(comps))
	for _, c := range comps {
		v = append(v, c.Position.X, c.Position.Y)
	}
	return v
}
