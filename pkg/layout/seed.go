// Package layout generates initial component placements: deterministic grid
// seeds that give the placement optimizer a sensible starting layout.
package layout

import (
	"fmt"
	"math"

	"github.com/JulianWebber/VLCNetPlanner/pkg/geo"
	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
	"github.com/JulianWebber/VLCNetPlanner/pkg/validation"
)

// SeedLightSources places n light sources with default properties on a
// near-square grid inside the wall margin. Ids are assigned from nextID
// upward. Placement is deterministic.
func SeedLightSources(fp plan.FloorPlan, n, nextID int, margin float64) ([]plan.Component, *validation.Report) {
	report := validation.NewReport()

	if n <= 0 {
		report.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "source count must be positive",
			Path:        "seed.count",
			ActualValue: n,
			Expected:    "> 0",
		})
		return nil, report
	}

	positions := gridPositions(fp, n, margin)
	comps := make([]plan.Component, 0, n)
	for i, pos := range positions {
		c, err := plan.NewLightSource(nextID+i, pos, plan.DefaultLightSourceProps())
		if err != nil {
			report.AddError(validation.Result{
				Level:   validation.LevelSchema,
				Message: err.Error(),
				Path:    fmt.Sprintf("seed[%d]", i),
			})
			continue
		}
		comps = append(comps, c)
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("seeded %d light sources on a grid", len(comps)),
	})
	return comps, report
}

// SeedReceivers places n receivers with default properties on the grid cell
// centers, offset from the source grid so paired deployments interleave.
func SeedReceivers(fp plan.FloorPlan, n, nextID int, margin float64) ([]plan.Component, *validation.Report) {
	report := validation.NewReport()

	if n <= 0 {
		report.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "receiver count must be positive",
			Path:        "seed.count",
			ActualValue: n,
			Expected:    "> 0",
		})
		return nil, report
	}

	positions := gridPositions(fp, n, margin)
	offset := geo.Pt(fp.Width, fp.Height).Scale(0.5 / float64(gridCols(n)))

	comps := make([]plan.Component, 0, n)
	for i, pos := range positions {
		at := pos.Add(offset).Clamp(geo.Pt(margin, margin), geo.Pt(fp.Width-margin, fp.Height-margin))
		c, err := plan.NewReceiver(nextID+i, at, plan.DefaultReceiverProps())
		if err != nil {
			report.AddError(validation.Result{
				Level:   validation.LevelSchema,
				Message: err.Error(),
				Path:    fmt.Sprintf("seed[%d]", i),
			})
			continue
		}
		comps = append(comps, c)
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("seeded %d receivers on an offset grid", len(comps)),
	})
	return comps, report
}

// gridPositions returns n points on a near-square grid covering the floor
// inside the margin, row-major from the bottom-left.
func gridPositions(fp plan.FloorPlan, n int, margin float64) []geo.Point2D {
	cols := gridCols(n)
	rows := (n + cols - 1) / cols

	loX, hiX := marginSpan(fp.Width, margin)
	loY, hiY := marginSpan(fp.Height, margin)

	out := make([]geo.Point2D, 0, n)
	for i := 0; i < n; i++ {
		col := i % cols
		row := i / cols
		x := cellCenter(loX, hiX, col, cols)
		y := cellCenter(loY, hiY, row, rows)
		out = append(out, geo.Pt(x, y))
	}
	return out
}

func gridCols(n int) int {
	return int(math.Ceil(math.Sqrt(float64(n))))
}

func marginSpan(extent, margin float64) (float64, float64) {
	lo, hi := margin, extent-margin
	if hi <= lo {
		return 0, extent
	}
	return lo, hi
}

func cellCenter(lo, hi float64, idx, count int) float64 {
	cell := (hi - lo) / float64(count)
	return lo + cell*(float64(idx)+0.5)
}
