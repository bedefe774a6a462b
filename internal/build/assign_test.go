package build

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlab/arbor/pkg/tree"
)

func buildGraph(t *testing.T, m *tree.NodeModel) *tree.GraphNode {
	t.Helper()
	g, diags := ToGraph(context.Background(), m, Options{Defs: newTestDefs(t)})
	require.Empty(t, diags, "unexpected build diagnostics")
	Assign(g)
	return g
}

func TestAssignPreorderIDs(t *testing.T) {
	g := buildGraph(t, &tree.NodeModel{
		Name: "Sequence",
		Children: []*tree.NodeModel{
			{Name: "Log"},
			{Name: "Selector", Children: []*tree.NodeModel{
				{Name: "Fail"},
				{Name: "Wait"},
			}},
		},
	})

	var ids, parents []string
	g.Walk(func(n *tree.GraphNode) bool {
		ids = append(ids, n.ID)
		parents = append(parents, n.Parent)
		return true
	})

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids, "IDs are dense and depth-first")
	assert.Equal(t, []string{"", "1", "1", "3", "3"}, parents)
}

func TestAssignRenumbersAfterEdit(t *testing.T) {
	g := buildGraph(t, &tree.NodeModel{
		Name: "Sequence",
		Children: []*tree.NodeModel{
			{Name: "Log"},
			{Name: "Fail"},
			{Name: "Wait"},
		},
	})

	// Remove the middle child and renumber.
	g.Children = append(g.Children[:1], g.Children[2:]...)
	Assign(g)

	var ids []string
	g.Walk(func(n *tree.GraphNode) bool {
		ids = append(ids, n.ID)
		return true
	})
	assert.Equal(t, []string{"1", "2", "3"}, ids, "IDs stay dense after structural edits")
	assert.Equal(t, "Wait", g.Find("3").Name)
}

func TestStatusComposition(t *testing.T) {
	g := buildGraph(t, &tree.NodeModel{
		Name: "Sequence",
		Children: []*tree.NodeModel{
			{Name: "Log"},
			{Name: "Selector", Children: []*tree.NodeModel{
				{Name: "Fail"},
				{Name: "Wait"},
			}},
		},
	})

	// Leaves carry their own declared outcomes.
	assert.Equal(t, tree.StatusSuccess, g.Find("2").Status, "Log")
	assert.Equal(t, tree.StatusFailure, g.Find("4").Status, "Fail")
	assert.Equal(t, tree.StatusSuccess|tree.StatusRunning, g.Find("5").Status, "Wait")

	// Selector: any child may succeed, all must fail, any may run.
	// Wait never fails, so the selector cannot fail.
	assert.Equal(t, tree.StatusSuccess|tree.StatusRunning, g.Find("3").Status, "Selector")

	// Sequence: all children can succeed, none can fail, one can run.
	assert.Equal(t, tree.StatusSuccess|tree.StatusRunning, g.Status, "Sequence")
}

func TestStatusAllChildrenDirective(t *testing.T) {
	// Fail never succeeds, so a sequence containing it cannot succeed,
	// but it can fail through the any-failure directive.
	g := buildGraph(t, &tree.NodeModel{
		Name: "Sequence",
		Children: []*tree.NodeModel{
			{Name: "Log"},
			{Name: "Fail"},
		},
	})
	assert.Equal(t, tree.StatusFailure, g.Status)
}

func TestStatusDisabledChildrenExcluded(t *testing.T) {
	g := buildGraph(t, &tree.NodeModel{
		Name: "Sequence",
		Children: []*tree.NodeModel{
			{Name: "Log"},
			{Name: "Fail", Disabled: true},
		},
	})
	// With the failing child disabled the sequence can only succeed.
	assert.Equal(t, tree.StatusSuccess, g.Status)
}

func TestStatusInverter(t *testing.T) {
	g := buildGraph(t, &tree.NodeModel{
		Name:     "Inverter",
		Children: []*tree.NodeModel{{Name: "Fail"}},
	})
	assert.Equal(t, tree.StatusSuccess, g.Status, "inverting a failing child yields success")

	g = buildGraph(t, &tree.NodeModel{
		Name:     "Inverter",
		Children: []*tree.NodeModel{{Name: "Log"}},
	})
	assert.Equal(t, tree.StatusFailure, g.Status, "inverting a succeeding child yields failure")
}

func TestStatusTransparentNode(t *testing.T) {
	// Parallel declares no directives: it passes through the union of its
	// enabled children's outcomes.
	g := buildGraph(t, &tree.NodeModel{
		Name: "Parallel",
		Children: []*tree.NodeModel{
			{Name: "Log"},
			{Name: "Fail"},
		},
	})
	assert.Equal(t, tree.StatusSuccess|tree.StatusFailure, g.Status)
}

func TestStatusTrackingBitsNeverLeak(t *testing.T) {
	g := buildGraph(t, &tree.NodeModel{
		Name: "Sequence",
		Children: []*tree.NodeModel{
			{Name: "Parallel", Children: []*tree.NodeModel{
				{Name: "Log"},
				{Name: "Fail"},
			}},
		},
	})
	g.Walk(func(n *tree.GraphNode) bool {
		assert.Zero(t, n.Status&^tree.StatusMask, "node %s leaked tracking bits", n.ID)
		return true
	})
}
