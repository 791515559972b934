package scene

import (
	"encoding/json"
	"testing"

	"github.com/JulianWebber/VLCNetPlanner/pkg/coverage"
	"github.com/JulianWebber/VLCNetPlanner/pkg/geo"
	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
)

func testComponents(t *testing.T) (plan.FloorPlan, []plan.Component) {
	t.Helper()
	fp := plan.FloorPlan{Width: 10, Height: 10}
	src, err := plan.NewLightSource(0, geo.Pt(5, 5), plan.DefaultLightSourceProps())
	if err != nil {
		t.Fatal(err)
	}
	rx, err := plan.NewReceiver(1, geo.Pt(7, 7), plan.DefaultReceiverProps())
	if err != nil {
		t.Fatal(err)
	}
	return fp, []plan.Component{src, rx}
}

func TestAssembleWithoutAnalysis(t *testing.T) {
	fp, comps := testComponents(t)

	s := Assemble(fp, comps, nil)
	if s.Heatmap != nil {
		t.Error("heatmap should be omitted without analysis")
	}
	if len(s.Components) != 2 {
		t.Fatalf("entities = %d, want 2", len(s.Components))
	}
	if s.Components[0].Radius != 3 || s.Components[0].Wavelength != 550 {
		t.Errorf("source entity = %+v", s.Components[0])
	}
	if s.Components[1].Radius != 0 {
		t.Errorf("receiver entity should have no radius: %+v", s.Components[1])
	}
	if s.Metadata.FloorWidth != 10 || s.Metadata.FloorHeight != 10 {
		t.Errorf("metadata = %+v", s.Metadata)
	}
}

func TestAssembleWithAnalysis(t *testing.T) {
	fp, comps := testComponents(t)
	result, err := coverage.Analyze(fp, comps, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	s := Assemble(fp, comps, result)
	if s.Heatmap == nil {
		t.Fatal("expected heatmap")
	}
	if s.Heatmap.Rows > 80 || s.Heatmap.Cols > 80 {
		t.Errorf("heatmap %dx%d exceeds downsampling cap", s.Heatmap.Rows, s.Heatmap.Cols)
	}
	if s.Heatmap.MaxValue <= 0 {
		t.Error("heatmap should carry the coverage peak")
	}
	if s.Metadata.CoveragePercentage != result.CoveragePercentage {
		t.Errorf("coverage%% = %v, want %v", s.Metadata.CoveragePercentage, result.CoveragePercentage)
	}
}

func TestSceneSerializes(t *testing.T) {
	fp, comps := testComponents(t)
	result, err := coverage.Analyze(fp, comps, 0.25)
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(Assemble(fp, comps, result))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Scene
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if decoded.Heatmap == nil || decoded.Heatmap.Rows != Assemble(fp, comps, result).Heatmap.Rows {
		t.Error("heatmap lost in serialization")
	}
}
