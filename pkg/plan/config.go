package plan

// OptimizationConfig weights and constrains a placement optimization run.
type OptimizationConfig struct {
	CoverageWeight     float64 `yaml:"coverage_weight" json:"coverage_weight"`
	InterferenceWeight float64 `yaml:"interference_weight" json:"interference_weight"`
	PowerWeight        float64 `yaml:"power_weight" json:"power_weight"`
	MinDistance        float64 `yaml:"min_distance" json:"min_distance"` // m, minimum component separation
	WallMargin         float64 `yaml:"wall_margin" json:"wall_margin"`   // m, clearance from walls
	MaxIterations      int     `yaml:"max_iterations" json:"max_iterations"`
	Seed               int64   `yaml:"seed" json:"seed"`
}

// DefaultOptimizationConfig returns the standard weighting.
func DefaultOptimizationConfig() OptimizationConfig {
	return OptimizationConfig{
		CoverageWeight:     1.0,
		InterferenceWeight: 0.5,
		PowerWeight:        0.3,
		MinDistance:        2.0,
		WallMargin:         0.5,
		MaxIterations:      50,
		Seed:               1,
	}
}

// Validate rejects configurations outside the valid domain.
func (c OptimizationConfig) Validate() error {
	if c.CoverageWeight < 0 {
		return &ConfigError{Field: "coverage_weight", Reason: "must be >= 0"}
	}
	if c.InterferenceWeight < 0 {
		return &ConfigError{Field: "interference_weight", Reason: "must be >= 0"}
	}
	if c.PowerWeight < 0 {
		return &ConfigError{Field: "power_weight", Reason: "must be >= 0"}
	}
	if c.MinDistance <= 0 {
		return &ConfigError{Field: "min_distance", Reason: "must be > 0"}
	}
	if c.WallMargin < 0 {
		return &ConfigError{Field: "wall_margin", Reason: "must be >= 0"}
	}
	if c.MaxIterations <= 0 {
		return &ConfigError{Field: "max_iterations", Reason: "must be > 0"}
	}
	return nil
}
