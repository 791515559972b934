package layout

import (
	"testing"

	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
)

func TestSeedLightSourcesCountAndIDs(t *testing.T) {
	fp := plan.FloorPlan{Width: 10, Height: 10}

	comps, report := SeedLightSources(fp, 4, 10, 0.5)
	if !report.Valid {
		t.Fatalf("report has errors: %s", report.Summary)
	}
	if len(comps) != 4 {
		t.Fatalf("seeded %d sources, want 4", len(comps))
	}
	for i, c := range comps {
		if c.ID != 10+i {
			t.Errorf("component %d id = %d, want %d", i, c.ID, 10+i)
		}
		if c.Kind != plan.KindLightSource {
			t.Errorf("component %d kind = %q", i, c.Kind)
		}
	}
}

func TestSeedStaysInsideMargin(t *testing.T) {
	fp := plan.FloorPlan{Width: 12, Height: 8}
	const margin = 1.0

	comps, report := SeedLightSources(fp, 7, 0, margin)
	if !report.Valid {
		t.Fatalf("report has errors: %s", report.Summary)
	}
	for _, c := range comps {
		p := c.Position
		if p.X < margin || p.X > fp.Width-margin || p.Y < margin || p.Y > fp.Height-margin {
			t.Errorf("component %d at %v violates margin %v", c.ID, p, margin)
		}
	}
}

func TestSeedDeterministic(t *testing.T) {
	fp := plan.FloorPlan{Width: 10, Height: 10}

	a, _ := SeedLightSources(fp, 5, 0, 0.5)
	b, _ := SeedLightSources(fp, 5, 0, 0.5)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Position != b[i].Position {
			t.Errorf("component %d position differs between runs", i)
		}
	}
}

func TestSeedReceiversOffsetFromSources(t *testing.T) {
	fp := plan.FloorPlan{Width: 10, Height: 10}

	sources, _ := SeedLightSources(fp, 4, 0, 0.5)
	receivers, report := SeedReceivers(fp, 4, 4, 0.5)
	if !report.Valid {
		t.Fatalf("report has errors: %s", report.Summary)
	}
	for i := range receivers {
		if receivers[i].Position == sources[i].Position {
			t.Errorf("receiver %d sits exactly on source %d", i, i)
		}
		if !fp.Contains(receivers[i].Position) {
			t.Errorf("receiver %d outside floor at %v", i, receivers[i].Position)
		}
	}
}

func TestSeedRejectsNonPositiveCount(t *testing.T) {
	fp := plan.FloorPlan{Width: 10, Height: 10}

	if _, report := SeedLightSources(fp, 0, 0, 0.5); report.Valid {
		t.Error("zero sources should be rejected")
	}
	if _, report := SeedReceivers(fp, -1, 0, 0.5); report.Valid {
		t.Error("negative receivers should be rejected")
	}
}

func TestSeedTinyFloorFallsBackToFullExtent(t *testing.T) {
	fp := plan.FloorPlan{Width: 1, Height: 1}

	comps, report := SeedLightSources(fp, 2, 0, 5)
	if !report.Valid {
		t.Fatalf("report has errors: %s", report.Summary)
	}
	for _, c := range comps {
		if !fp.Contains(c.Position) {
			t.Errorf("component %d outside tiny floor at %v", c.ID, c.Position)
		}
	}
}
