// Package mcp exposes a workspace as a Model Context Protocol server, so AI
// agents can inspect and validate behavior trees as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/arborlab/arbor/internal/presentation/graph"
	"github.com/arborlab/arbor/pkg/tree"
)

// Editor defines the workspace surface the MCP adapter needs.
type Editor interface {
	ListTrees(ctx context.Context) ([]string, error)
	LoadTree(ctx context.Context, name string) (*tree.GraphNode, tree.Diagnostics, error)
	Validate(ctx context.Context, name string) (*tree.GraphNode, tree.Diagnostics, error)
}

// ValidateResponse is the structured result of the validate_tree tool.
type ValidateResponse struct {
	Name        string           `json:"name" jsonschema_description:"Tree file name"`
	Valid       bool             `json:"valid" jsonschema_description:"Whether the tree passed validation"`
	Nodes       int              `json:"nodes" jsonschema_description:"Number of nodes in the built tree"`
	Diagnostics tree.Diagnostics `json:"diagnostics" jsonschema_description:"All problems found"`
}

// Server wraps a workspace and exposes it as an MCP server.
type Server struct {
	editor    Editor
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(editor Editor, version string) *Server {
	s := &Server{
		editor:    editor,
		mcpServer: server.NewMCPServer("arbor-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_trees
	s.mcpServer.AddTool(mcp.NewTool("list_trees",
		mcp.WithDescription("List all behavior tree files in the workspace."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names, err := s.editor.ListTrees(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(names)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: get_tree
	s.mcpServer.AddTool(mcp.NewTool("get_tree",
		mcp.WithDescription("Build a behavior tree and return its enriched graph with assigned IDs and status bitmasks."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Tree file name, e.g. trees/patrol.json")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := request.GetString("name", "")
		g, _, err := s.editor.LoadTree(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(g)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: validate_tree
	validateTool := mcp.NewTool("validate_tree",
		mcp.WithDescription("Validate a behavior tree against its node definitions and report every problem found."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Tree file name, e.g. trees/patrol.json")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: render_graph
	s.mcpServer.AddTool(mcp.NewTool("render_graph",
		mcp.WithDescription("Render a behavior tree as a Mermaid diagram."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Tree file name, e.g. trees/patrol.json")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := request.GetString("name", "")
		g, _, err := s.editor.LoadTree(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
		}
		return mcp.NewToolResultText(graph.GenerateMermaid(g)), nil
	})
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (ValidateResponse, error) {
	name, _ := args["name"].(string)
	g, diags, err := s.editor.Validate(ctx, name)
	if err != nil {
		return ValidateResponse{}, fmt.Errorf("validate failed: %w", err)
	}
	if diags == nil {
		diags = tree.Diagnostics{}
	}
	return ValidateResponse{
		Name:        name,
		Valid:       !diags.HasErrors(),
		Nodes:       g.Count(),
		Diagnostics: diags,
	}, nil
}
