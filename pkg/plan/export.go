package plan

import (
	"encoding/json"
	"fmt"
)

// AnalysisSummary is the scalar slice of a coverage analysis carried along
// with an exported configuration.
type AnalysisSummary struct {
	CoveragePercentage float64 `json:"coverage_percentage"`
	InterferencePoints int     `json:"interference_points"`
}

// exportEnvelope is the stable JSON shape consumed by external tooling.
type exportEnvelope struct {
	FloorPlan  FloorPlan        `json:"floor_plan"`
	Components []Component      `json:"components"`
	Analysis   *AnalysisSummary `json:"analysis,omitempty"`
}

// ExportConfiguration serializes the network configuration to indented JSON.
// The analysis summary is optional and omitted when nil.
func ExportConfiguration(fp FloorPlan, comps []Component, analysis *AnalysisSummary) ([]byte, error) {
	env := exportEnvelope{
		FloorPlan:  fp,
		Components: comps,
		Analysis:   analysis,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding configuration: %w", err)
	}
	return data, nil
}
