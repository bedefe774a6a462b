package build

import (
	"context"

	"github.com/arborlab/arbor/pkg/tree"
)

// resolveSubtree inlines the tree referenced by n.Path into n.
//
// The node keeps its own identity fields (id, path, debug, disabled, parent);
// everything else is adopted from the referenced file's root. On success the
// file's modification time is recorded for staleness checks.
//
// visiting holds the normalized paths currently being resolved on this call
// chain. A path already present means a reference cycle: the descent is
// aborted, the node stays unexpanded, and exactly one diagnostic is emitted
// for the cycle edge.
func resolveSubtree(ctx context.Context, n *tree.GraphNode, o Options, visiting map[string]bool, diags *tree.Diagnostics) {
	key := pathKey(n.Path)
	if visiting[key] {
		diags.Errorf(n.ID, n.Name, "path", "circular subtree reference %q", n.Path)
		return
	}

	doc, err := o.Store.Load(ctx, n.Path)
	if err != nil {
		// One broken subtree must not abort the rest of the tree.
		diags.Errorf(n.ID, n.Name, "path", "failed to load subtree %q: %v", n.Path, err)
		return
	}
	if doc.Root == nil {
		diags.Errorf(n.ID, n.Name, "path", "subtree %q has no root node", n.Path)
		return
	}

	visiting[key] = true
	sub := toGraph(ctx, doc.Root, o, visiting, diags)
	delete(visiting, key)

	n.Name = sub.Name
	n.Desc = sub.Desc
	n.Args = sub.Args
	n.Input = sub.Input
	n.Output = sub.Output
	n.Children = sub.Children
	n.Def = sub.Def

	if mt, err := o.Store.ModTime(ctx, n.Path); err == nil {
		n.LastModified = mt
	}
}
