// Package signal implements the optical propagation model for a single
// visible-light transmitter: Lambertian direct-path irradiance, wavelength
// dependent attenuation, spectral overlap between two emitters, and
// first-order wall reflections.
package signal

import (
	"math"

	"github.com/JulianWebber/VLCNetPlanner/pkg/geo"
	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
)

const (
	// SourceHeight is the assumed transmitter mounting height above the
	// evaluation plane in meters.
	SourceHeight = 2.0

	// DefaultReflectionCoeff is the surface reflection coefficient used for
	// first-order wall reflections.
	DefaultReflectionCoeff = 0.3

	// Visible spectrum band in nm. Wavelengths outside it get a flat
	// out-of-band attenuation instead of the band model.
	visibleMin = 380.0
	visibleMax = 780.0

	attenuationPeak  = 550.0 // nm, maximum transmission (green)
	attenuationScale = 230.0 // nm, band attenuation length scale
	outOfBandFactor  = 0.5

	spectralSigma = 15.0 // nm, emitter spectral width
)

// LambertianOrder derives the Lambertian mode number from a full beam angle
// in degrees. The beam angle must lie strictly inside (0, 180).
func LambertianOrder(beamAngleDeg float64) (float64, error) {
	if beamAngleDeg <= 0 || beamAngleDeg >= 180 {
		return 0, &plan.DomainError{Field: "beam_angle", Value: beamAngleDeg, Reason: "must be in (0, 180) degrees"}
	}
	half := beamAngleDeg / 2 * math.Pi / 180
	return -math.Ln2 / math.Log(math.Cos(half)), nil
}

// WavelengthAttenuation returns the transmission factor for a wavelength in
// nm. Within the visible band it peaks at 550 nm; outside the band a flat
// factor applies.
func WavelengthAttenuation(wavelength float64) float64 {
	if wavelength >= visibleMin && wavelength <= visibleMax {
		return math.Exp(-0.1 * math.Abs(wavelength-attenuationPeak) / attenuationScale)
	}
	return outOfBandFactor
}

// SpectralOverlap returns the [0,1] interference coupling between two
// emitter wavelengths in nm. Identical wavelengths couple fully; wavelengths
// several spectral widths apart are effectively independent.
func SpectralOverlap(wavelength1, wavelength2 float64) float64 {
	d := (wavelength1 - wavelength2) / spectralSigma
	return math.Exp(-0.5 * d * d)
}

// DirectPower computes the direct-path received power in W/m² from a light
// source at the evaluation point, with the source mounted height meters
// above the plane. Receivers and points beyond the source's coverage radius
// contribute zero. The source must already be validated; an invalid beam
// angle surfaces as a DomainError.
func DirectPower(src plan.Component, at geo.Point2D, height float64) (float64, error) {
	if src.Kind != plan.KindLightSource || src.Source == nil {
		return 0, nil
	}
	props := src.Source

	d := src.Position.Distance(at)
	if d > props.CoverageRadius {
		// Hard cutoff by definition, independent of the falloff curve.
		return 0, nil
	}

	m, err := LambertianOrder(props.BeamAngle)
	if err != nil {
		return 0, err
	}

	incidence := math.Atan2(d, height)
	lambertian := (m + 1) / (2 * math.Pi) * math.Pow(math.Cos(incidence), m)

	power := props.Power * lambertian * math.Exp(-d/props.CoverageRadius)
	return power * WavelengthAttenuation(props.Wavelength), nil
}

// ReflectedPower sums first-order reflection contributions off the four
// walls bounding the floor plan, in W/m². For each wall the reflection point
// is the foot of the perpendicular from the source; both the incident and
// reflected segments must lie within the coverage radius or the wall
// contributes nothing.
//
// The incidence angle is measured against the fixed (0,1) axis for every
// wall, matching the established model.
func ReflectedPower(src plan.Component, at geo.Point2D, fp plan.FloorPlan, reflectionCoeff float64) float64 {
	if src.Kind != plan.KindLightSource || src.Source == nil {
		return 0
	}
	props := src.Source
	pos := src.Position

	wallPoints := []geo.Point2D{
		{X: pos.X, Y: 0},         // bottom wall
		{X: pos.X, Y: fp.Height}, // top wall
		{X: 0, Y: pos.Y},         // left wall
		{X: fp.Width, Y: pos.Y},  // right wall
	}

	attenuation := WavelengthAttenuation(props.Wavelength)

	total := 0.0
	for _, wall := range wallPoints {
		incident := wall.Sub(pos)
		reflected := at.Sub(wall)

		incidentDist := incident.Length()
		reflectedDist := reflected.Length()

		if incidentDist > props.CoverageRadius || reflectedDist > props.CoverageRadius {
			continue
		}
		if incidentDist < 1e-12 || reflectedDist < 1e-12 {
			// Source on the wall or evaluation point at the reflection point.
			continue
		}

		cosIncident := incident.Dot(geo.Pt(0, 1)) / incidentDist
		cosIncident = math.Max(-1, math.Min(1, cosIncident))
		incidentAngle := math.Acos(cosIncident)

		power := props.Power * reflectionCoeff * math.Cos(incidentAngle) / (incidentDist * reflectedDist)
		total += power * attenuation
	}
	return total
}

// FloorAttenuation returns the linear power factor for a signal crossing
// deltaFloors floor slabs, at 30 dB of loss per floor.
func FloorAttenuation(deltaFloors int) float64 {
	if deltaFloors < 0 {
		deltaFloors = -deltaFloors
	}
	if deltaFloors == 0 {
		return 1
	}
	const floorAttenuationDb = 30.0
	return math.Pow(10, -floorAttenuationDb*float64(deltaFloors)/10)
}
