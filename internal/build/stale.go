package build

import (
	"context"

	"github.com/arborlab/arbor/pkg/ports"
	"github.com/arborlab/arbor/pkg/tree"
)

// Stale reports whether any subtree file backing the graph changed since it
// was resolved.
//
// A node is stale when its referenced file's current modification time
// differs from the recorded one (a missing or unreadable file also counts),
// or when any descendant is stale. The walk short-circuits on the first
// stale node in traversal order.
func Stale(ctx context.Context, n *tree.GraphNode, store ports.TreeStore) bool {
	if n.IsSubtree() {
		mt, err := store.ModTime(ctx, n.Path)
		if err != nil || !mt.Equal(n.LastModified) {
			return true
		}
	}
	for _, c := range n.Children {
		if Stale(ctx, c, store) {
			return true
		}
	}
	return false
}
