package coverage

import (
	"errors"
	"math"
	"testing"

	"github.com/JulianWebber/VLCNetPlanner/pkg/geo"
	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
)

func mustSource(t *testing.T, id int, x, y float64, mutate func(*plan.LightSourceProps)) plan.Component {
	t.Helper()
	props := plan.DefaultLightSourceProps()
	if mutate != nil {
		mutate(&props)
	}
	c, err := plan.NewLightSource(id, geo.Pt(x, y), props)
	if err != nil {
		t.Fatalf("NewLightSource: %v", err)
	}
	return c
}

func TestAnalyzeEmptyComponents(t *testing.T) {
	fp := plan.FloorPlan{Width: 10, Height: 10}

	r, err := Analyze(fp, nil, DefaultResolution)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if r.CoveragePercentage != 0 {
		t.Errorf("coverage%% = %v, want 0", r.CoveragePercentage)
	}
	if r.InterferencePointCount != 0 {
		t.Errorf("interference points = %d, want 0", r.InterferencePointCount)
	}
	if r.AverageSINR != 0 || r.MinSINR != 0 || r.MaxSINR != 0 {
		t.Errorf("SINR aggregates should be zero: %v %v %v", r.AverageSINR, r.MinSINR, r.MaxSINR)
	}
}

func TestAnalyzeInvalidInputs(t *testing.T) {
	fp := plan.FloorPlan{Width: 10, Height: 10}
	src := mustSource(t, 0, 5, 5, nil)

	var derr *plan.DomainError

	if _, err := Analyze(plan.FloorPlan{Width: -1, Height: 10}, nil, 0.1); !errors.As(err, &derr) {
		t.Errorf("negative width: expected DomainError, got %v", err)
	}
	if _, err := Analyze(fp, []plan.Component{src}, 0); !errors.As(err, &derr) {
		t.Errorf("zero resolution: expected DomainError, got %v", err)
	}

	bad := src
	badProps := *src.Source
	badProps.Power = -1
	bad.Source = &badProps
	if _, err := Analyze(fp, []plan.Component{bad}, 0.1); !errors.As(err, &derr) {
		t.Errorf("invalid component: expected DomainError, got %v", err)
	}
}

func TestAnalyzeSingleSourceScenario(t *testing.T) {
	fp := plan.FloorPlan{Width: 10, Height: 10}
	src := mustSource(t, 0, 5, 5, nil)

	r, err := Analyze(fp, []plan.Component{src}, DefaultResolution)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if r.CoveragePercentage <= 0 || r.CoveragePercentage >= 100 {
		t.Errorf("coverage%% = %v, want strictly between 0 and 100", r.CoveragePercentage)
	}

	// With the walls out of reach, all power is concentrated within the
	// 3 m coverage radius of (5,5).
	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Cols; col++ {
			pt := geo.Pt(float64(col)*r.Resolution, float64(row)*r.Resolution)
			cov := r.Coverage.At(row, col)
			if pt.Distance(src.Position) > src.Source.CoverageRadius && cov != 0 {
				t.Fatalf("coverage %v outside radius at %v", cov, pt)
			}
			if pt.Distance(src.Position) <= src.Source.CoverageRadius-r.Resolution && cov <= 0 {
				t.Fatalf("no coverage inside radius at %v", pt)
			}
		}
	}

	// Single source: no interference anywhere.
	if r.InterferencePointCount != 0 {
		t.Errorf("interference points = %d, want 0", r.InterferencePointCount)
	}
	if r.MinSINR <= 0 {
		t.Errorf("min SINR = %v, want > 0 for a noise-limited single source", r.MinSINR)
	}
	t.Logf("coverage %.1f%%, SINR avg %.1f dB [%.1f, %.1f]",
		r.CoveragePercentage, r.AverageSINR, r.MinSINR, r.MaxSINR)
}

func TestAnalyzeMonotonicInSources(t *testing.T) {
	fp := plan.FloorPlan{Width: 10, Height: 10}
	a := mustSource(t, 0, 3, 3, nil)
	b := mustSource(t, 1, 7, 7, nil)

	r1, err := Analyze(fp, []plan.Component{a}, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Analyze(fp, []plan.Component{a, b}, 0.25)
	if err != nil {
		t.Fatal(err)
	}

	for row := 0; row < r1.Rows; row++ {
		for col := 0; col < r1.Cols; col++ {
			if r2.Coverage.At(row, col) < r1.Coverage.At(row, col) {
				t.Fatalf("adding a source decreased coverage at (%d,%d)", row, col)
			}
		}
	}
	if r2.CoveragePercentage < r1.CoveragePercentage {
		t.Errorf("coverage%% decreased: %v -> %v", r1.CoveragePercentage, r2.CoveragePercentage)
	}
}

func TestAnalyzeSpectralSeparationReducesInterference(t *testing.T) {
	fp := plan.FloorPlan{Width: 10, Height: 10}

	same := []plan.Component{
		mustSource(t, 0, 4, 5, nil),
		mustSource(t, 1, 6, 5, nil),
	}
	separated := []plan.Component{
		mustSource(t, 0, 4, 5, nil),
		mustSource(t, 1, 6, 5, func(p *plan.LightSourceProps) { p.Wavelength = 650 }),
	}

	rSame, err := Analyze(fp, same, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	rSep, err := Analyze(fp, separated, 0.25)
	if err != nil {
		t.Fatal(err)
	}

	sumSame := matSum(rSame)
	sumSep := matSum(rSep)
	if sumSep >= sumSame*0.3 {
		t.Errorf("100 nm separation should suppress interference: same=%v separated=%v", sumSame, sumSep)
	}
}

func matSum(r *Result) float64 {
	total := 0.0
	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Cols; col++ {
			total += r.Interference.At(row, col)
		}
	}
	return total
}

func TestAnalyzeCrossFloorAttenuation(t *testing.T) {
	fp := plan.FloorPlan{Width: 10, Height: 10, FloorLevel: 0}

	sameFloor := mustSource(t, 0, 5, 5, nil)
	upstairs := sameFloor
	upstairs.FloorLevel = 1

	rSame, err := Analyze(fp, []plan.Component{sameFloor}, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	rUp, err := Analyze(fp, []plan.Component{upstairs}, 0.25)
	if err != nil {
		t.Fatal(err)
	}

	// 30 dB per floor: the map should scale by 1e-3.
	row, col := rSame.Rows/2, rSame.Cols/2
	ratio := rUp.Coverage.At(row, col) / rSame.Coverage.At(row, col)
	if math.Abs(ratio-1e-3) > 1e-9 {
		t.Errorf("cross-floor ratio = %v, want 1e-3", ratio)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	fp := plan.FloorPlan{Width: 8, Height: 6}
	comps := []plan.Component{
		mustSource(t, 0, 2, 2, nil),
		mustSource(t, 1, 6, 4, func(p *plan.LightSourceProps) { p.Wavelength = 620 }),
	}

	r1, err := Analyze(fp, comps, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Analyze(fp, comps, 0.2)
	if err != nil {
		t.Fatal(err)
	}

	for row := 0; row < r1.Rows; row++ {
		for col := 0; col < r1.Cols; col++ {
			if r1.Coverage.At(row, col) != r2.Coverage.At(row, col) {
				t.Fatalf("non-deterministic coverage at (%d,%d)", row, col)
			}
			if r1.SINR.At(row, col) != r2.SINR.At(row, col) {
				t.Fatalf("non-deterministic SINR at (%d,%d)", row, col)
			}
		}
	}
}

func TestSummary(t *testing.T) {
	fp := plan.FloorPlan{Width: 10, Height: 10}
	r, err := Analyze(fp, []plan.Component{mustSource(t, 0, 5, 5, nil)}, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	s := r.Summary()
	if s.CoveragePercentage != r.CoveragePercentage {
		t.Errorf("summary coverage = %v, want %v", s.CoveragePercentage, r.CoveragePercentage)
	}
	if s.InterferencePoints != r.InterferencePointCount {
		t.Errorf("summary interference = %v, want %v", s.InterferencePoints, r.InterferencePointCount)
	}
}
