// Package coverage discretizes a floor plan into an evaluation grid and
// aggregates the signal model over all components into coverage,
// interference, and SINR maps with scalar network-quality metrics.
package coverage

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/JulianWebber/VLCNetPlanner/pkg/geo"
	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
	"github.com/JulianWebber/VLCNetPlanner/pkg/signal"
)

const (
	// DefaultResolution is the evaluation grid spacing in meters.
	DefaultResolution = 0.1

	// NoisePower is the thermal noise floor in W/m². A grid point counts as
	// covered when its received power exceeds it.
	NoisePower = 1e-9

	// interferenceRatio marks a point as interference-limited when
	// interference exceeds this fraction of its coverage.
	interferenceRatio = 0.1
)

// Result holds the per-point maps and scalar aggregates of one analysis.
// Maps are indexed (row, col) = (y, x).
type Result struct {
	Resolution float64
	Rows, Cols int

	Coverage     *mat.Dense // W/m² received signal power
	Interference *mat.Dense // W/m² power from other light sources
	SINR         *mat.Dense // dB; 0 is a sentinel for uncovered points

	CoveragePercentage     float64
	InterferencePointCount int
	AverageSINR            float64
	MinSINR                float64
	MaxSINR                float64
}

// Analyze evaluates the signal model over the floor plan at the given grid
// resolution. An empty component list yields zero coverage and interference.
// Invalid inputs fail before any grid point is evaluated.
func Analyze(fp plan.FloorPlan, comps []plan.Component, resolution float64) (*Result, error) {
	if err := fp.Validate(); err != nil {
		return nil, err
	}
	if err := plan.ValidateComponents(comps); err != nil {
		return nil, err
	}
	if resolution <= 0 {
		return nil, &plan.DomainError{Field: "resolution", Value: resolution, Reason: "must be > 0"}
	}

	cols := gridSteps(fp.Width, resolution)
	rows := gridSteps(fp.Height, resolution)

	r := &Result{
		Resolution:   resolution,
		Rows:         rows,
		Cols:         cols,
		Coverage:     mat.NewDense(rows, cols, nil),
		Interference: mat.NewDense(rows, cols, nil),
		SINR:         mat.NewDense(rows, cols, nil),
	}

	sources := plan.LightSources(comps)

	// Each worker owns a disjoint band of rows, so the maps need no locking.
	workers := runtime.NumCPU()
	if workers > rows {
		workers = rows
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	band := (rows + workers - 1) / workers
	for w := 0; w < workers; w++ {
		r0 := w * band
		r1 := r0 + band
		if r1 > rows {
			r1 = rows
		}
		if r0 >= r1 {
			continue
		}
		wg.Add(1)
		go func(r0, r1 int) {
			defer wg.Done()
			evalRows(r, fp, sources, r0, r1)
		}(r0, r1)
	}
	wg.Wait()

	aggregate(r)
	return r, nil
}

// gridSteps returns the number of samples along an axis of the given extent,
// placing points at 0, res, 2·res, ... below the extent.
func gridSteps(extent, res float64) int {
	n := int(math.Ceil(extent/res - 1e-9))
	if n < 1 {
		n = 1
	}
	return n
}

func evalRows(r *Result, fp plan.FloorPlan, sources []plan.Component, r0, r1 int) {
	for row := r0; row < r1; row++ {
		y := float64(row) * r.Resolution
		for col := 0; col < r.Cols; col++ {
			pt := geo.Pt(float64(col)*r.Resolution, y)

			totalSignal := 0.0
			totalInterference := 0.0

			for i, ls := range sources {
				d := ls.Position.Distance(pt)
				if d > ls.Source.CoverageRadius {
					continue
				}

				floorFactor := signal.FloorAttenuation(ls.FloorLevel - fp.FloorLevel)

				direct, err := signal.DirectPower(ls, pt, signal.SourceHeight)
				if err != nil {
					// Components are validated before evaluation begins.
					continue
				}
				reflected := signal.ReflectedPower(ls, pt, fp, signal.DefaultReflectionCoeff)
				totalSignal += (direct + reflected) * floorFactor

				for j, other := range sources {
					if j == i {
						continue
					}
					overlap := signal.SpectralOverlap(ls.Source.Wavelength, other.Source.Wavelength)
					if overlap <= 0 {
						continue
					}
					od := other.Position.Distance(pt)
					if od > other.Source.CoverageRadius {
						continue
					}
					otherFactor := signal.FloorAttenuation(other.FloorLevel - fp.FloorLevel)
					totalInterference += other.Source.Power * overlap *
						math.Exp(-od/other.Source.CoverageRadius) * otherFactor
				}
			}

			r.Coverage.Set(row, col, totalSignal)
			r.Interference.Set(row, col, totalInterference)
			if totalSignal > 0 {
				sinr := totalSignal / (totalInterference + NoisePower)
				r.SINR.Set(row, col, 10*math.Log10(sinr))
			}
		}
	}
}

// aggregate reduces the maps to the scalar metrics. SINR aggregation skips
// the zero sentinel of uncovered points.
func aggregate(r *Result) {
	total := r.Rows * r.Cols
	covered := 0
	interfered := 0
	var sinrs []float64

	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Cols; col++ {
			cov := r.Coverage.At(row, col)
			intf := r.Interference.At(row, col)
			if cov > NoisePower {
				covered++
			}
			if intf > interferenceRatio*cov {
				interfered++
			}
			if s := r.SINR.At(row, col); s != 0 {
				sinrs = append(sinrs, s)
			}
		}
	}

	r.CoveragePercentage = 100 * float64(covered) / float64(total)
	r.InterferencePointCount = interfered

	if len(sinrs) > 0 {
		r.AverageSINR = stat.Mean(sinrs, nil)
		r.MinSINR = floats.Min(sinrs)
		r.MaxSINR = floats.Max(sinrs)
	}
}

// Summary returns the scalar slice of the result for configuration export.
func (r *Result) Summary() *plan.AnalysisSummary {
	return &plan.AnalysisSummary{
		CoveragePercentage: r.CoveragePercentage,
		InterferencePoints: r.InterferencePointCount,
	}
}
