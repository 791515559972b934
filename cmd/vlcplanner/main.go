package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/JulianWebber/VLCNetPlanner/internal/server"
	"github.com/JulianWebber/VLCNetPlanner/pkg/coverage"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vlcplanner",
		Short: "Visible light communication transceiver deployment planner",
	}

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(optimizeCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func analyzeCmd() *cobra.Command {
	var resolution float64

	cmd := &cobra.Command{
		Use:   "analyze [project-path]",
		Short: "Compute coverage, interference and SINR maps for a deployment",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAnalyze(args[0], resolution)
		},
	}

	cmd.Flags().Float64Var(&resolution, "resolution", coverage.DefaultResolution, "grid resolution in meters")
	return cmd
}

func optimizeCmd() *cobra.Command {
	var traceDB string
	var output string

	cmd := &cobra.Command{
		Use:   "optimize [project-path]",
		Short: "Optimize transceiver placement with particle swarm search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd.Context(), args[0], traceDB, output)
		},
	}

	cmd.Flags().StringVar(&traceDB, "trace-db", "", "SQLite file recording per-iteration swarm state")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the optimized configuration as JSON to this file")
	return cmd
}

func seedCmd() *cobra.Command {
	var width, height, margin float64
	var sources, receivers int

	cmd := &cobra.Command{
		Use:   "seed [project-path]",
		Short: "Generate a starter project with grid-seeded transceivers",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSeed(args[0], width, height, margin, sources, receivers)
		},
	}

	cmd.Flags().Float64Var(&width, "width", 12.0, "floor plan width in meters")
	cmd.Flags().Float64Var(&height, "height", 8.0, "floor plan height in meters")
	cmd.Flags().Float64Var(&margin, "margin", 0.5, "wall clearance in meters")
	cmd.Flags().IntVar(&sources, "sources", 4, "number of light sources")
	cmd.Flags().IntVar(&receivers, "receivers", 2, "number of receivers")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a deployment project without running analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with the interactive floor-plan editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
