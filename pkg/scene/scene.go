// Package scene converts analysis output into the render-ready shape the
// external floor-plan canvas consumes: component entities plus a
// downsampled coverage heatmap.
package scene

import "time"

// Scene is the complete 2D scene for the top-down renderer.
type Scene struct {
	Metadata   Metadata    `json:"metadata"`
	Components []Entity    `json:"components"`
	Heatmap    *Heatmap    `json:"heatmap,omitempty"`
	SINR       SINRSummary `json:"sinr"`
}

// Metadata holds plan-level summary data.
type Metadata struct {
	FloorWidth         float64 `json:"floor_width"`
	FloorHeight        float64 `json:"floor_height"`
	FloorLevel         int     `json:"floor_level"`
	CoveragePercentage float64 `json:"coverage_percentage"`
	InterferencePoints int     `json:"interference_points"`
	GeneratedAt        string  `json:"generated_at"`
}

// Entity is one placed component in the 2D view.
type Entity struct {
	ID       int        `json:"id"`
	Kind     string     `json:"kind"`
	Position [2]float64 `json:"position"`
	// Radius is the emitter coverage radius for light sources, zero for
	// receivers.
	Radius     float64 `json:"radius,omitempty"`
	Wavelength float64 `json:"wavelength,omitempty"`
}

// Heatmap is a row-major downsampled coverage grid. Values are W/m².
type Heatmap struct {
	Rows       int         `json:"rows"`
	Cols       int         `json:"cols"`
	CellSize   float64     `json:"cell_size"` // meters per heatmap cell
	Values     [][]float64 `json:"values"`
	MaxValue   float64     `json:"max_value"`
	NoiseFloor float64     `json:"noise_floor"`
}

// SINRSummary carries the scalar SINR aggregates in dB.
type SINRSummary struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
