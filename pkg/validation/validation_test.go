package validation

import (
	"testing"

	"github.com/JulianWebber/VLCNetPlanner/pkg/geo"
	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
)

func validProject(t *testing.T) *plan.Project {
	t.Helper()
	src, err := plan.NewLightSource(0, geo.Pt(3, 3), plan.DefaultLightSourceProps())
	if err != nil {
		t.Fatal(err)
	}
	rx, err := plan.NewReceiver(1, geo.Pt(7, 7), plan.DefaultReceiverProps())
	if err != nil {
		t.Fatal(err)
	}
	return &plan.Project{
		FloorPlan:  plan.FloorPlan{Width: 10, Height: 10},
		Components: []plan.Component{src, rx},
	}
}

func TestReportAccumulation(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Fatal("new report should be valid")
	}

	r.AddWarning(Result{Level: LevelPhysical, Message: "w"})
	if !r.Valid {
		t.Error("warnings must not invalidate the report")
	}

	r.AddError(Result{Level: LevelSchema, Message: "e"})
	if r.Valid {
		t.Error("errors must invalidate the report")
	}
	if r.Summary != "1 errors, 1 warnings, 0 info" {
		t.Errorf("summary = %q", r.Summary)
	}
}

func TestReportMerge(t *testing.T) {
	a := NewReport()
	a.AddInfo(Result{Message: "i"})

	b := NewReport()
	b.AddError(Result{Message: "e"})

	a.Merge(b)
	if a.Valid {
		t.Error("merging an invalid report must invalidate")
	}
	if len(a.Errors) != 1 || len(a.Info) != 1 {
		t.Errorf("merge lost results: %s", a.Summary)
	}
}

func TestValidateProjectClean(t *testing.T) {
	r := ValidateProject(validProject(t))
	if !r.Valid {
		t.Fatalf("expected valid report, got: %s", r.Summary)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", r.Warnings)
	}
}

func TestValidateProjectBadFloorPlan(t *testing.T) {
	p := validProject(t)
	p.FloorPlan.Width = -5

	r := ValidateProject(p)
	if r.Valid {
		t.Fatal("negative width should produce a schema error")
	}
	if r.Errors[0].Level != LevelSchema {
		t.Errorf("level = %q, want schema", r.Errors[0].Level)
	}
}

func TestValidateProjectComponentOutOfBounds(t *testing.T) {
	p := validProject(t)
	p.Components[0].Position = geo.Pt(15, 3)

	r := ValidateProject(p)
	if r.Valid {
		t.Fatal("out-of-bounds component should produce a spatial error")
	}
	if r.Errors[0].Level != LevelSpatial {
		t.Errorf("level = %q, want spatial", r.Errors[0].Level)
	}
}

func TestValidateProjectOutOfBandWavelength(t *testing.T) {
	p := validProject(t)
	props := *p.Components[0].Source
	props.Wavelength = 900
	p.Components[0].Source = &props

	r := ValidateProject(p)
	if !r.Valid {
		t.Fatalf("out-of-band wavelength is legal, got errors: %s", r.Summary)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected an out-of-band warning")
	}
}

func TestValidateProjectPackedSources(t *testing.T) {
	src1, _ := plan.NewLightSource(0, geo.Pt(5, 5), plan.DefaultLightSourceProps())
	src2, _ := plan.NewLightSource(1, geo.Pt(5.5, 5), plan.DefaultLightSourceProps())
	p := &plan.Project{
		FloorPlan:  plan.FloorPlan{Width: 10, Height: 10},
		Components: []plan.Component{src1, src2},
	}

	r := ValidateProject(p)
	if !r.Valid {
		t.Fatalf("packed sources are legal, got errors: %s", r.Summary)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a packed-sources warning")
	}
}

func TestValidateProjectBadConfig(t *testing.T) {
	p := validProject(t)
	cfg := plan.DefaultOptimizationConfig()
	cfg.MaxIterations = -1
	p.Optimization = &cfg

	r := ValidateProject(p)
	if r.Valid {
		t.Fatal("invalid config should produce a schema error")
	}
}
