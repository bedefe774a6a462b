package tree

import (
	"time"

	"github.com/arborlab/arbor/pkg/btschema"
	"github.com/arborlab/arbor/pkg/btvalue"
)

// GraphNode is the enriched in-memory form of a node.
//
// It carries everything NodeModel does plus the resolved definition binding,
// the reassigned string ID, the computed status bitmask and, for subtree
// roots, the source file's modification time.
type GraphNode struct {
	ID       string                   `json:"id"`
	Name     string                   `json:"name"`
	Desc     string                   `json:"desc,omitempty"`
	Args     map[string]btvalue.Value `json:"args,omitempty"`
	Input    []string                 `json:"input,omitempty"`
	Output   []string                 `json:"output,omitempty"`
	Children []*GraphNode             `json:"children,omitempty"`
	Debug    bool                     `json:"debug,omitempty"`
	Disabled bool                     `json:"disabled,omitempty"`
	Path     string                   `json:"path,omitempty"`

	// Parent is the owning node's ID. It exists for lookups only and never
	// implies ownership.
	Parent string `json:"parent,omitempty"`

	// Def is the bound definition. It is never nil: unresolved names bind to
	// the unknown sentinel.
	Def *btschema.NodeDef `json:"-"`

	Status Status `json:"status"`

	// Size is the node's layout footprint (width, height). It is a rendering
	// concern recomputed whenever structural fields change.
	Size [2]float64 `json:"size"`

	// LastModified is the subtree file's modification time, set only on
	// subtree roots. It detects drift between the cached graph and disk.
	LastModified time.Time `json:"-"`
}

// IsSubtree reports whether the node references an externally stored subtree.
func (n *GraphNode) IsSubtree() bool { return n.Path != "" }

// Walk visits the node and all descendants depth-first, parent before
// children. It stops early when fn returns false.
func (n *GraphNode) Walk(fn func(*GraphNode) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the descendant (or the node itself) with the given ID.
func (n *GraphNode) Find(id string) *GraphNode {
	var found *GraphNode
	n.Walk(func(g *GraphNode) bool {
		if g.ID == id {
			found = g
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *GraphNode) Count() int {
	total := 0
	n.Walk(func(*GraphNode) bool {
		total++
		return true
	})
	return total
}

// Clone returns a deep copy of the node and its descendants.
// Argument values are immutable, so the args map is copied shallowly per key.
func (n *GraphNode) Clone() *GraphNode {
	c := *n
	if n.Args != nil {
		c.Args = make(map[string]btvalue.Value, len(n.Args))
		for k, v := range n.Args {
			c.Args[k] = v
		}
	}
	c.Input = append([]string(nil), n.Input...)
	c.Output = append([]string(nil), n.Output...)
	c.Children = nil
	for _, child := range n.Children {
		c.Children = append(c.Children, child.Clone())
	}
	return &c
}

// Layout constants for RecalcSize. Real text metrics belong to the renderer;
// this footprint only has to be stable and monotonic in content size.
const (
	baseNodeWidth  = 160.0
	baseNodeHeight = 34.0
	lineHeight     = 18.0
	charWidth      = 7.5
)

// RecalcSize recomputes the layout footprint from the node's content.
func (n *GraphNode) RecalcSize() {
	w := baseNodeWidth
	if tw := charWidth * float64(len(n.Name)+len(n.Desc)); tw > w {
		w = tw
	}
	lines := len(n.Args) + len(n.Input) + len(n.Output)
	n.Size = [2]float64{w, baseNodeHeight + lineHeight*float64(lines)}
}
