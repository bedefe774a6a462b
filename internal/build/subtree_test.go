package build

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborlab/arbor/internal/adapters/memory"
	"github.com/arborlab/arbor/pkg/btvalue"
	"github.com/arborlab/arbor/pkg/tree"
)

func TestResolveSubtree(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "sub/patrol.json", &tree.TreeModel{
		Name: "patrol",
		Root: &tree.NodeModel{
			Name: "Sequence",
			Children: []*tree.NodeModel{
				{Name: "Log", Args: map[string]btvalue.Value{"message": btvalue.String("step")}},
				{Name: "Wait"},
			},
		},
	}))

	main := &tree.NodeModel{
		Name: "Selector",
		Children: []*tree.NodeModel{
			{Name: "Sequence", Path: "sub/patrol.json", Disabled: true},
		},
	}

	g, diags := ToGraph(ctx, main, Options{Defs: newTestDefs(t), Store: store, Origin: "main.json"})
	require.Empty(t, diags)

	sub := g.Children[0]
	assert.Equal(t, "Sequence", sub.Name, "subtree root adopts the referenced file's content")
	require.Len(t, sub.Children, 2)
	assert.Equal(t, "Log", sub.Children[0].Name)
	assert.False(t, sub.Def.IsUnknown())

	// Identity fields stay with the referencing node.
	assert.Equal(t, "sub/patrol.json", sub.Path)
	assert.True(t, sub.Disabled)

	mt, err := store.ModTime(ctx, "sub/patrol.json")
	require.NoError(t, err)
	assert.True(t, sub.LastModified.Equal(mt), "resolution records the source file's mod time")
}

func TestSubtreeCycle(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "a.json", &tree.TreeModel{
		Name: "a",
		Root: &tree.NodeModel{Name: "Sequence", Children: []*tree.NodeModel{
			{Name: "Sequence", Path: "b.json"},
		}},
	}))
	require.NoError(t, store.Save(ctx, "b.json", &tree.TreeModel{
		Name: "b",
		Root: &tree.NodeModel{Name: "Sequence", Children: []*tree.NodeModel{
			{Name: "Sequence", Path: "a.json"},
		}},
	}))

	doc, err := store.Load(ctx, "a.json")
	require.NoError(t, err)

	g, diags := ToGraph(ctx, doc.Root, Options{Defs: newTestDefs(t), Store: store, Origin: "a.json"})
	require.NotNil(t, g)
	require.Len(t, diags, 1, "a cycle reports exactly one diagnostic for the closing edge")
	assert.Contains(t, diags[0].Message, "circular")

	// b resolved before the cycle closed; the back-reference stays unexpanded.
	b := g.Children[0]
	require.Len(t, b.Children, 1)
	assert.Empty(t, b.Children[0].Children)
}

func TestSubtreeSelfReference(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	root := &tree.NodeModel{Name: "Sequence", Children: []*tree.NodeModel{
		{Name: "Sequence", Path: "self.json"},
	}}
	require.NoError(t, store.Save(ctx, "self.json", &tree.TreeModel{Name: "self", Root: root}))

	g, diags := ToGraph(ctx, root, Options{Defs: newTestDefs(t), Store: store, Origin: "self.json"})
	require.Len(t, diags, 1, "the origin seeds cycle detection")
	assert.Contains(t, diags[0].Message, "circular")
	assert.Empty(t, g.Children[0].Children)
}

func TestBrokenSubtreeIsNotFatal(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	main := &tree.NodeModel{
		Name: "Selector",
		Children: []*tree.NodeModel{
			{Name: "Sequence", Path: "missing.json"},
			{Name: "Log"},
		},
	}

	g, diags := ToGraph(ctx, main, Options{Defs: newTestDefs(t), Store: store, Origin: "main.json"})
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "missing.json")

	// The rest of the tree still builds around the broken reference.
	require.Len(t, g.Children, 2)
	assert.Equal(t, "missing.json", g.Children[0].Path)
	assert.Empty(t, g.Children[0].Children)
	assert.Equal(t, "Log", g.Children[1].Name)
}

func TestStale(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "sub.json", &tree.TreeModel{
		Name: "sub",
		Root: &tree.NodeModel{Name: "Log"},
	}))

	main := &tree.NodeModel{
		Name:     "Sequence",
		Children: []*tree.NodeModel{{Name: "Log", Path: "sub.json"}},
	}
	g, diags := ToGraph(ctx, main, Options{Defs: newTestDefs(t), Store: store, Origin: "main.json"})
	require.Empty(t, diags)

	assert.False(t, Stale(ctx, g, store), "freshly resolved graph is not stale")

	store.Touch("sub.json", time.Now().Add(time.Hour))
	assert.True(t, Stale(ctx, g, store), "a touched subtree file marks the graph stale")

	require.NoError(t, store.Delete(ctx, "sub.json"))
	assert.True(t, Stale(ctx, g, store), "a deleted subtree file marks the graph stale")
}
