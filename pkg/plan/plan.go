package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Project bundles a floor plan with its deployed components and an optional
// optimization configuration.
type Project struct {
	FloorPlan    FloorPlan           `yaml:"floor_plan" json:"floor_plan"`
	Components   []Component         `yaml:"components" json:"components"`
	Optimization *OptimizationConfig `yaml:"optimization,omitempty" json:"optimization,omitempty"`
}

// Load reads a VLC site plan from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan YAML: %w", err)
	}

	return &p, nil
}

// LoadProject loads a site plan from a project directory.
// It looks for site.yaml in the given directory.
func LoadProject(projectDir string) (*Project, error) {
	planPath := filepath.Join(projectDir, "site.yaml")
	return Load(planPath)
}

// Validate checks the floor plan, every component, and the optimization
// configuration if present.
func (p *Project) Validate() error {
	if err := p.FloorPlan.Validate(); err != nil {
		return err
	}
	if err := ValidateComponents(p.Components); err != nil {
		return err
	}
	if p.Optimization != nil {
		return p.Optimization.Validate()
	}
	return nil
}

// Config returns the project's optimization configuration, falling back to
// the defaults when none is specified.
func (p *Project) Config() OptimizationConfig {
	if p.Optimization != nil {
		return *p.Optimization
	}
	return DefaultOptimizationConfig()
}
