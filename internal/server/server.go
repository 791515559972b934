// Package server hosts the local HTTP API used by the interactive floor-plan
// editor. It reloads the project from disk on every request, so canvas edits
// to site.yaml are picked up without restarts.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/JulianWebber/VLCNetPlanner/pkg/coverage"
	"github.com/JulianWebber/VLCNetPlanner/pkg/optimize"
	"github.com/JulianWebber/VLCNetPlanner/pkg/plan"
	"github.com/JulianWebber/VLCNetPlanner/pkg/scene"
	"github.com/JulianWebber/VLCNetPlanner/pkg/validation"
)

// Server is the local development server for interactive planning.
type Server struct {
	projectPath string
	port        int
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/api/plan", s.handlePlan).Methods("GET")
	r.HandleFunc("/api/validation", s.handleValidation).Methods("GET")
	r.HandleFunc("/api/analysis", s.handleAnalysis).Methods("GET")
	r.HandleFunc("/api/scene", s.handleScene).Methods("GET")
	r.HandleFunc("/api/optimize", s.handleOptimize).Methods("POST")

	return r
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("VLC planner server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, handlers.LoggingHandler(os.Stdout, s.Router()))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePlan(w http.ResponseWriter, _ *http.Request) {
	p, err := plan.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	p, err := plan.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, validation.ValidateProject(p))
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	p, err := plan.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, err)
		return
	}

	resolution := coverage.DefaultResolution
	if q := r.URL.Query().Get("resolution"); q != "" {
		resolution, err = strconv.ParseFloat(q, 64)
		if err != nil {
			writeError(w, &plan.DomainError{Field: "resolution", Reason: "not a number"})
			return
		}
	}

	result, err := coverage.Analyze(p.FloorPlan, p.Components, resolution)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"coverage_percentage": result.CoveragePercentage,
		"interference_points": result.InterferencePointCount,
		"average_sinr":        result.AverageSINR,
		"min_sinr":            result.MinSINR,
		"max_sinr":            result.MaxSINR,
	})
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	p, err := plan.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, err)
		return
	}

	var result *coverage.Result
	if r.URL.Query().Get("heatmap") != "false" {
		result, err = coverage.Analyze(p.FloorPlan, p.Components, coverage.DefaultResolution)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, scene.Assemble(p.FloorPlan, p.Components, result))
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	p, err := plan.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := optimize.Placement(r.Context(), p.FloorPlan, p.Components, p.Config())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"components":        result.Components,
		"best_score":        result.BestScore,
		"iterations":        result.Iterations,
		"evaluations":       result.Evaluations,
		"refiner_converged": result.RefinerConverged,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

// writeError maps the error taxonomy onto HTTP statuses: domain and config
// violations are client errors, everything else is a server error.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var derr *plan.DomainError
	var cerr *plan.ConfigError
	switch {
	case errors.As(err, &derr):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &cerr):
		status = http.StatusBadRequest
	case errors.Is(err, fs.ErrNotExist):
		status = http.StatusNotFound
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
