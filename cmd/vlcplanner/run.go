package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/JulianWebber/VLCNetPlanner/pkg/coverage"
	"github.com/JulianWebber/VLCNetPlanner/pkg/layout"
	"github.com/JulianWebber/VLCNetPlanner/pkg/optimize"
	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
	"github.com/JulianWebber/VLCNetPlanner/pkg/validation"
)

// loadAndValidate loads the project and runs the full validation pipeline.
func loadAndValidate(projectPath string) (*plan.Project, *validation.Report, error) {
	project, err := plan.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	report := validation.ValidateProject(project)
	return project, report, nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runAnalyze(projectPath string, resolution float64) error {
	project, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("project has validation errors; fix before analyzing")
	}

	result, err := coverage.Analyze(project.FloorPlan, project.Components, resolution)
	if err != nil {
		return err
	}

	printAnalysisReport(project, result)

	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runSeed(projectPath string, width, height, margin float64, sources, receivers int) error {
	fp := plan.FloorPlan{Width: width, Height: height}
	if err := fp.Validate(); err != nil {
		return err
	}

	srcs, report := layout.SeedLightSources(fp, sources, 0, margin)
	rcvs, rcvReport := layout.SeedReceivers(fp, receivers, len(srcs), margin)
	report.Merge(rcvReport)
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("seeding failed")
	}

	project := &plan.Project{
		FloorPlan:  fp,
		Components: append(srcs, rcvs...),
	}
	cfg := plan.DefaultOptimizationConfig()
	project.Optimization = &cfg

	if err := os.MkdirAll(projectPath, 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}
	data, err := yaml.Marshal(project)
	if err != nil {
		return fmt.Errorf("encoding project: %w", err)
	}
	path := filepath.Join(projectPath, "site.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing project: %w", err)
	}

	fmt.Printf("Seeded %d light sources and %d receivers into %s\n", len(srcs), len(rcvs), path)
	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runOptimize(ctx context.Context, projectPath, traceDB, output string) error {
	project, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("project has validation errors; fix before optimizing")
	}

	var opts []optimize.Option
	if traceDB != "" {
		trace, err := optimize.OpenTrace(traceDB)
		if err != nil {
			return fmt.Errorf("opening trace database: %w", err)
		}
		defer trace.Close()
		opts = append(opts, optimize.WithTrace(trace))
	}

	result, err := optimize.Placement(ctx, project.FloorPlan, project.Components, project.Config(), opts...)
	if err != nil {
		return err
	}

	printOptimizationResult(result)

	if output != "" {
		analysis, err := coverage.Analyze(project.FloorPlan, result.Components, coverage.DefaultResolution)
		if err != nil {
			return err
		}
		data, err := plan.ExportConfiguration(project.FloorPlan, result.Components, analysis.Summary())
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("writing configuration: %w", err)
		}
		fmt.Printf("\nConfiguration written to %s\n", output)
	}
	return nil
}
