package validation

import (
	"errors"
	"fmt"

	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
	"github.com/JulianWebber/VLCNetPlanner/pkg/signal"
)

// ValidateProject runs all validation stages on a parsed site plan and
// returns the combined report. Domain and config violations become schema
// errors; physically suspicious but legal values become warnings.
func ValidateProject(p *plan.Project) *Report {
	r := NewReport()

	validateFloorPlan(p, r)
	validateComponents(p, r)
	validateConfig(p, r)
	validatePlacement(p, r)

	return r
}

func validateFloorPlan(p *plan.Project, r *Report) {
	if err := p.FloorPlan.Validate(); err != nil {
		r.AddError(domainResult(err, "floor_plan"))
	}
}

func validateComponents(p *plan.Project, r *Report) {
	if err := plan.ValidateComponents(p.Components); err != nil {
		r.AddError(domainResult(err, "components"))
		return
	}

	for _, c := range p.Components {
		if c.Kind != plan.KindLightSource {
			continue
		}
		wl := c.Source.Wavelength
		if wl < 380 || wl > 780 {
			r.AddWarning(Result{
				Level:       LevelPhysical,
				Message:     fmt.Sprintf("component %d wavelength %.0f nm is outside the visible band", c.ID, wl),
				Path:        fmt.Sprintf("components[%d].source.wavelength", c.ID),
				ActualValue: wl,
				Expected:    "380-780 nm",
				Suggestions: []string{"Visible-band emitters avoid the flat out-of-band attenuation"},
			})
		}
	}
}

func validateConfig(p *plan.Project, r *Report) {
	if p.Optimization == nil {
		return
	}
	if err := p.Optimization.Validate(); err != nil {
		r.AddError(domainResult(err, "optimization"))
	}
}

func validatePlacement(p *plan.Project, r *Report) {
	fp := p.FloorPlan
	for _, c := range p.Components {
		if !fp.Contains(c.Position) {
			r.AddError(Result{
				Level:       LevelSpatial,
				Message:     fmt.Sprintf("component %d is outside the floor bounds", c.ID),
				Path:        fmt.Sprintf("components[%d].position", c.ID),
				ActualValue: c.Position,
				Expected:    fmt.Sprintf("within [0,%.1f] x [0,%.1f]", fp.Width, fp.Height),
			})
		}
	}

	// Same-wavelength sources packed below the separation minimum will
	// interfere strongly; flag pairs but leave the fix to the optimizer.
	minDist := p.Config().MinDistance
	sources := plan.LightSources(p.Components)
	for i := 0; i < len(sources); i++ {
		for j := i + 1; j < len(sources); j++ {
			a, b := sources[i], sources[j]
			d := a.Position.Distance(b.Position)
			overlap := signal.SpectralOverlap(a.Source.Wavelength, b.Source.Wavelength)
			if d < minDist && overlap > 0.5 {
				r.AddWarning(Result{
					Level:       LevelSpatial,
					Message:     fmt.Sprintf("sources %d and %d are %.2f m apart with strong spectral overlap", a.ID, b.ID, d),
					Path:        fmt.Sprintf("components[%d]", a.ID),
					ActualValue: d,
					Expected:    fmt.Sprintf(">= %.1f m or separated wavelengths", minDist),
					Suggestions: []string{"Run the placement optimizer", "Assign distinct wavelengths"},
				})
			}
		}
	}
}

// domainResult converts a DomainError or ConfigError into a schema finding.
func domainResult(err error, fallbackPath string) Result {
	var derr *plan.DomainError
	if errors.As(err, &derr) {
		return Result{
			Level:       LevelSchema,
			Message:     derr.Reason,
			Path:        derr.Field,
			ActualValue: derr.Value,
		}
	}
	var cerr *plan.ConfigError
	if errors.As(err, &cerr) {
		return Result{
			Level:   LevelSchema,
			Message: cerr.Reason,
			Path:    cerr.Field,
		}
	}
	return Result{Level: LevelSchema, Message: err.Error(), Path: fallbackPath}
}
