package plan

import (
	"fmt"

	"github.com/JulianWebber/VLCNetPlanner/pkg/geo"
)

// FloorPlan describes one rectangular floor surface. Dimensions are meters.
type FloorPlan struct {
	Width         float64 `yaml:"width" json:"width"`
	Height        float64 `yaml:"height" json:"height"`
	FloorLevel    int     `yaml:"floor_level" json:"floor_level"`
	CeilingHeight float64 `yaml:"ceiling_height,omitempty" json:"ceiling_height,omitempty"`
}

// Validate checks the floor plan dimensions.
func (fp FloorPlan) Validate() error {
	if fp.Width <= 0 {
		return &DomainError{Field: "floor_plan.width", Value: fp.Width, Reason: "must be > 0"}
	}
	if fp.Height <= 0 {
		return &DomainError{Field: "floor_plan.height", Value: fp.Height, Reason: "must be > 0"}
	}
	if fp.FloorLevel < 0 {
		return &DomainError{Field: "floor_plan.floor_level", Value: float64(fp.FloorLevel), Reason: "must be >= 0"}
	}
	if fp.CeilingHeight < 0 {
		return &DomainError{Field: "floor_plan.ceiling_height", Value: fp.CeilingHeight, Reason: "must be >= 0"}
	}
	return nil
}

// Contains reports whether p lies within the floor bounds.
func (fp FloorPlan) Contains(p geo.Point2D) bool {
	return p.X >= 0 && p.X <= fp.Width && p.Y >= 0 && p.Y <= fp.Height
}

// Kind discriminates the two component variants.
type Kind string

const (
	KindLightSource Kind = "light_source"
	KindReceiver    Kind = "receiver"
)

// LightSourceProps are the emitter properties of a light source component.
type LightSourceProps struct {
	Power          float64 `yaml:"power" json:"power"`                     // W
	BeamAngle      float64 `yaml:"beam_angle" json:"beam_angle"`           // degrees (full beam angle)
	Wavelength     float64 `yaml:"wavelength" json:"wavelength"`           // nm
	CoverageRadius float64 `yaml:"coverage_radius" json:"coverage_radius"` // m
}

// ReceiverProps are the photodetector properties of a receiver component.
type ReceiverProps struct {
	Sensitivity float64 `yaml:"sensitivity" json:"sensitivity"` // dBm
	FOV         float64 `yaml:"fov" json:"fov"`                 // degrees
	ActiveArea  float64 `yaml:"active_area" json:"active_area"` // m²
}

// Component is one placed transceiver: either a light source or a receiver,
// discriminated by Kind. Exactly one of Source/Receiver is set.
type Component struct {
	ID         int               `yaml:"id" json:"id"`
	Kind       Kind              `yaml:"kind" json:"type"`
	Position   geo.Point2D       `yaml:"position" json:"position"`
	FloorLevel int               `yaml:"floor_level" json:"floor_level"`
	Source     *LightSourceProps `yaml:"source,omitempty" json:"source,omitempty"`
	Receiver   *ReceiverProps    `yaml:"receiver,omitempty" json:"receiver,omitempty"`
}

// DefaultLightSourceProps returns the standard emitter defaults.
func DefaultLightSourceProps() LightSourceProps {
	return LightSourceProps{
		Power:          20,  // W
		BeamAngle:      120, // degrees
		Wavelength:     550, // nm
		CoverageRadius: 3,   // m
	}
}

// DefaultReceiverProps returns the standard photodetector defaults.
func DefaultReceiverProps() ReceiverProps {
	return ReceiverProps{
		Sensitivity: -30,  // dBm
		FOV:         60,   // degrees
		ActiveArea:  1e-4, // m²
	}
}

// NewLightSource builds a validated light source component.
func NewLightSource(id int, pos geo.Point2D, props LightSourceProps) (Component, error) {
	c := Component{ID: id, Kind: KindLightSource, Position: pos, Source: &props}
	if err := c.Validate(); err != nil {
		return Component{}, err
	}
	return c, nil
}

// NewReceiver builds a validated receiver component.
func NewReceiver(id int, pos geo.Point2D, props ReceiverProps) (Component, error) {
	c := Component{ID: id, Kind: KindReceiver, Position: pos, Receiver: &props}
	if err := c.Validate(); err != nil {
		return Component{}, err
	}
	return c, nil
}

// Validate checks the component's properties against their physical domains.
// Invalid values are rejected here, before any grid evaluation.
func (c Component) Validate() error {
	if c.ID < 0 {
		return &DomainError{Field: fieldPath(c, "id"), Value: float64(c.ID), Reason: "must be >= 0"}
	}
	switch c.Kind {
	case KindLightSource:
		if c.Source == nil {
			return &DomainError{Field: fieldPath(c, "source"), Reason: "light source properties missing"}
		}
		if c.Receiver != nil {
			return &DomainError{Field: fieldPath(c, "receiver"), Reason: "light source must not carry receiver properties"}
		}
		return c.Source.validate(c)
	case KindReceiver:
		if c.Receiver == nil {
			return &DomainError{Field: fieldPath(c, "receiver"), Reason: "receiver properties missing"}
		}
		if c.Source != nil {
			return &DomainError{Field: fieldPath(c, "source"), Reason: "receiver must not carry light source properties"}
		}
		return c.Receiver.validate(c)
	default:
		return &DomainError{Field: fieldPath(c, "kind"), Reason: fmt.Sprintf("unknown component kind %q", c.Kind)}
	}
}

func (p *LightSourceProps) validate(c Component) error {
	if p.Power <= 0 {
		return &DomainError{Field: fieldPath(c, "power"), Value: p.Power, Reason: "must be > 0"}
	}
	if p.BeamAngle <= 0 || p.BeamAngle >= 180 {
		return &DomainError{Field: fieldPath(c, "beam_angle"), Value: p.BeamAngle, Reason: "must be in (0, 180) degrees"}
	}
	if p.Wavelength <= 0 {
		return &DomainError{Field: fieldPath(c, "wavelength"), Value: p.Wavelength, Reason: "must be > 0"}
	}
	if p.CoverageRadius <= 0 {
		return &DomainError{Field: fieldPath(c, "coverage_radius"), Value: p.CoverageRadius, Reason: "must be > 0"}
	}
	return nil
}

func (p *ReceiverProps) validate(c Component) error {
	if p.FOV <= 0 || p.FOV > 180 {
		return &DomainError{Field: fieldPath(c, "fov"), Value: p.FOV, Reason: "must be in (0, 180] degrees"}
	}
	if p.ActiveArea <= 0 {
		return &DomainError{Field: fieldPath(c, "active_area"), Value: p.ActiveArea, Reason: "must be > 0"}
	}
	return nil
}

func fieldPath(c Component, field string) string {
	return fmt.Sprintf("components[%d].%s", c.ID, field)
}

// ValidateComponents validates every component and checks id uniqueness.
func ValidateComponents(comps []Component) error {
	seen := make(map[int]bool, len(comps))
	for _, c := range comps {
		if err := c.Validate(); err != nil {
			return err
		}
		if seen[c.ID] {
			return &DomainError{Field: fieldPath(c, "id"), Value: float64(c.ID), Reason: "duplicate component id"}
		}
		seen[c.ID] = true
	}
	return nil
}

// LightSources returns the light source components, preserving order.
func LightSources(comps []Component) []Component {
	var out []Component
	for _, c := range comps {
		if c.Kind == KindLightSource {
			out = append(out, c)
		}
	}
	return out
}

// Receivers returns the receiver components, preserving order.
func Receivers(comps []Component) []Component {
	var out []Component
	for _, c := range comps {
		if c.Kind == KindReceiver {
			out = append(out, c)
		}
	}
	return out
}
