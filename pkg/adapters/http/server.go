// Package http exposes a workspace as a JSON API for editor front-ends.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arborlab/arbor/pkg/tree"
)

// Editor defines the workspace surface the HTTP adapter needs.
type Editor interface {
	ListTrees(ctx context.Context) ([]string, error)
	LoadTree(ctx context.Context, name string) (*tree.GraphNode, tree.Diagnostics, error)
	Validate(ctx context.Context, name string) (*tree.GraphNode, tree.Diagnostics, error)
	Stale(ctx context.Context, g *tree.GraphNode) bool
}

// Server holds the handler dependencies.
type Server struct {
	Editor Editor
}

// NewHandler creates the HTTP handler for a workspace.
//
// Tree names contain slashes, so they travel as a query parameter:
//
//	GET  /trees                      list tree files
//	GET  /tree?name=a/b.json         build a tree (graph, diagnostics, staleness)
//	POST /validate?name=a/b.json     build and validate a tree
//	GET  /healthz                    liveness
//	GET  /metrics                    Prometheus metrics
func NewHandler(editor Editor) http.Handler {
	server := &Server{Editor: editor}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/trees", server.handleListTrees)
	r.Get("/tree", server.handleGetTree)
	r.Post("/validate", server.handleValidate)

	return enableCORS(r)
}

type treeResponse struct {
	Name        string           `json:"name"`
	Root        *tree.GraphNode  `json:"root"`
	Diagnostics tree.Diagnostics `json:"diagnostics"`
	Valid       bool             `json:"valid"`
	Stale       bool             `json:"stale,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleListTrees(w http.ResponseWriter, r *http.Request) {
	names, err := s.Editor.ListTrees(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"trees": names})
}

func (s *Server) handleGetTree(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing 'name' query parameter"})
		return
	}

	g, diags, err := s.Editor.LoadTree(r.Context(), name)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, treeResponse{
		Name:        name,
		Root:        g,
		Diagnostics: diags,
		Valid:       !diags.HasErrors(),
		Stale:       s.Editor.Stale(r.Context(), g),
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing 'name' query parameter"})
		return
	}

	g, diags, err := s.Editor.Validate(r.Context(), name)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, treeResponse{
		Name:        name,
		Root:        g,
		Diagnostics: diags,
		Valid:       !diags.HasErrors(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
