package mcp

import (
	"context"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arborlab/arbor/pkg/btschema"
	"github.com/arborlab/arbor/pkg/tree"
)

type mockEditor struct {
	trees map[string]*tree.GraphNode
	diags tree.Diagnostics
}

func (m *mockEditor) ListTrees(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(m.trees))
	for n := range m.trees {
		names = append(names, n)
	}
	return names, nil
}

func (m *mockEditor) LoadTree(ctx context.Context, name string) (*tree.GraphNode, tree.Diagnostics, error) {
	g, ok := m.trees[name]
	if !ok {
		return nil, nil, fmt.Errorf("tree %q not found", name)
	}
	return g, m.diags, nil
}

func (m *mockEditor) Validate(ctx context.Context, name string) (*tree.GraphNode, tree.Diagnostics, error) {
	return m.LoadTree(ctx, name)
}

func TestHandleValidate(t *testing.T) {
	var diags tree.Diagnostics
	diags.Errorf("2", "Log", "args.message", "missing required value of type string")

	editor := &mockEditor{
		trees: map[string]*tree.GraphNode{
			"bad.json": {
				ID: "1", Name: "Sequence", Def: btschema.Unknown("Sequence"),
				Children: []*tree.GraphNode{
					{ID: "2", Name: "Log", Def: btschema.Unknown("Log")},
				},
			},
		},
		diags: diags,
	}
	srv := NewServer(editor, "0.0.1")

	resp, err := srv.handleValidate(context.Background(), mcp.CallToolRequest{}, map[string]any{"name": "bad.json"})
	if err != nil {
		t.Fatalf("handleValidate: %v", err)
	}
	if resp.Valid {
		t.Error("error diagnostics must mark the tree invalid")
	}
	if resp.Nodes != 2 {
		t.Errorf("nodes = %d", resp.Nodes)
	}
	if len(resp.Diagnostics) != 1 {
		t.Errorf("diagnostics = %v", resp.Diagnostics)
	}

	if _, err := srv.handleValidate(context.Background(), mcp.CallToolRequest{}, map[string]any{"name": "ghost.json"}); err == nil {
		t.Error("a missing tree should fail the tool call")
	}
}
