package scene

import (
	"github.com/JulianWebber/VLCNetPlanner/pkg/coverage"
	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
)

// maxHeatmapCells caps the per-axis heatmap size sent to the renderer; the
// analyzer grid is downsampled to fit.
const maxHeatmapCells = 80

// Assemble converts a floor plan, its components, and an optional analysis
// result into a renderer scene. With a nil result the heatmap is omitted.
func Assemble(fp plan.FloorPlan, comps []plan.Component, result *coverage.Result) *Scene {
	s := &Scene{
		Metadata: Metadata{
			FloorWidth:  fp.Width,
			FloorHeight: fp.Height,
			FloorLevel:  fp.FloorLevel,
			GeneratedAt: nowUTC(),
		},
		Components: assembleEntities(comps),
	}

	if result != nil {
		s.Metadata.CoveragePercentage = result.CoveragePercentage
		s.Metadata.InterferencePoints = result.InterferencePointCount
		s.Heatmap = assembleHeatmap(result)
		s.SINR = SINRSummary{
			Average: result.AverageSINR,
			Min:     result.MinSINR,
			Max:     result.MaxSINR,
		}
	}
	return s
}

func assembleEntities(comps []plan.Component) []Entity {
	entities := make([]Entity, 0, len(comps))
	for _, c := range comps {
		e := Entity{
			ID:       c.ID,
			Kind:     string(c.Kind),
			Position: [2]float64{c.Position.X, c.Position.Y},
		}
		if c.Kind == plan.KindLightSource && c.Source != nil {
			e.Radius = c.Source.CoverageRadius
			e.Wavelength = c.Source.Wavelength
		}
		entities = append(entities, e)
	}
	return entities
}

// assembleHeatmap reduces the analyzer grid to at most maxHeatmapCells per
// axis by taking the maximum over each downsampling block, so hotspots
// survive the reduction.
func assembleHeatmap(r *coverage.Result) *Heatmap {
	stride := 1
	for (r.Rows+stride-1)/stride > maxHeatmapCells || (r.Cols+stride-1)/stride > maxHeatmapCells {
		stride++
	}

	rows := (r.Rows + stride - 1) / stride
	cols := (r.Cols + stride - 1) / stride

	values := make([][]float64, rows)
	maxVal := 0.0
	for hr := 0; hr < rows; hr++ {
		values[hr] = make([]float64, cols)
		for hc := 0; hc < cols; hc++ {
			block := 0.0
			for row := hr * stride; row < (hr+1)*stride && row < r.Rows; row++ {
				for col := hc * stride; col < (hc+1)*stride && col < r.Cols; col++ {
					if v := r.Coverage.At(row, col); v > block {
						block = v
					}
				}
			}
			values[hr][hc] = block
			if block > maxVal {
				maxVal = block
			}
		}
	}

	return &Heatmap{
		Rows:       rows,
		Cols:       cols,
		CellSize:   r.Resolution * float64(stride),
		Values:     values,
		MaxValue:   maxVal,
		NoiseFloor: coverage.NoisePower,
	}
}
