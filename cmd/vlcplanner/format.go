package main

import (
	"fmt"

	"github.com/JulianWebber/VLCNetPlanner/pkg/coverage"
	"github.com/JulianWebber/VLCNetPlanner/pkg/optimize"
	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
	"github.com/JulianWebber/VLCNetPlanner/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printAnalysisReport(p *plan.Project, r *coverage.Result) {
	fmt.Println("Signal Analysis")
	fmt.Println("===============")
	fmt.Println()
	fmt.Printf("  Floor plan:          %.1fm x %.1fm (floor %d)\n", p.FloorPlan.Width, p.FloorPlan.Height, p.FloorPlan.FloorLevel)
	fmt.Printf("  Light sources:       %d\n", len(plan.LightSources(p.Components)))
	fmt.Printf("  Receivers:           %d\n", len(plan.Receivers(p.Components)))
	fmt.Printf("  Grid:                %dx%d @ %.2fm\n", r.Rows, r.Cols, r.Resolution)
	fmt.Println()
	fmt.Printf("  Coverage:            %.1f%%\n", r.CoveragePercentage)
	fmt.Printf("  Interference points: %d\n", r.InterferencePointCount)
	fmt.Printf("  SINR (avg/min/max):  %s / %s / %s\n",
		formatDB(r.AverageSINR), formatDB(r.MinSINR), formatDB(r.MaxSINR))
}

func printOptimizationResult(r *optimize.Result) {
	fmt.Println("Placement Optimization")
	fmt.Println("======================")
	fmt.Println()
	fmt.Printf("  Iterations:   %d\n", r.Iterations)
	fmt.Printf("  Evaluations:  %d\n", r.Evaluations)
	fmt.Printf("  Best score:   %.4f\n", r.BestScore)
	if !r.RefinerConverged {
		fmt.Println("  Warning: local refinement did not converge; positions are the best swarm result")
	}
	fmt.Println()

	fmt.Printf("%-6s %-14s %10s %10s\n", "ID", "Kind", "X (m)", "Y (m)")
	fmt.Printf("%-6s %-14s %10s %10s\n", "------", "--------------", "----------", "----------")
	for _, c := range r.Components {
		fmt.Printf("%-6d %-14s %10.2f %10.2f\n", c.ID, c.Kind, c.Position.X, c.Position.Y)
	}
}

func formatDB(v float64) string {
	return fmt.Sprintf("%.1f dB", v)
}
