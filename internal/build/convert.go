package build

import (
	"context"
	"path"
	"path/filepath"
	"strconv"

	"github.com/arborlab/arbor/pkg/btschema"
	"github.com/arborlab/arbor/pkg/btvalue"
	"github.com/arborlab/arbor/pkg/ports"
	"github.com/arborlab/arbor/pkg/tree"
)

// Options carry the collaborators a build needs.
type Options struct {
	// Defs resolves node names to definitions.
	Defs ports.DefSource

	// Store loads referenced subtree documents.
	Store ports.TreeStore

	// Origin is the name of the document being built. It seeds the cycle
	// detection set so a tree referencing itself is caught on the first edge.
	Origin string
}

// ToGraph converts a stored node model into the enriched graph form.
//
// Subtree references are resolved inline through o.Store. Reference problems
// (cycles, unreadable or malformed files) are reported as diagnostics and
// leave the offending node unexpanded; they never abort the build.
//
// The cycle-detection set is scoped to this call: concurrent builds of
// independent trees share nothing.
func ToGraph(ctx context.Context, m *tree.NodeModel, o Options) (*tree.GraphNode, tree.Diagnostics) {
	var diags tree.Diagnostics
	visiting := make(map[string]bool)
	if o.Origin != "" {
		visiting[pathKey(o.Origin)] = true
	}
	g := toGraph(ctx, m, o, visiting, &diags)
	return g, diags
}

func toGraph(ctx context.Context, m *tree.NodeModel, o Options, visiting map[string]bool, diags *tree.Diagnostics) *tree.GraphNode {
	def := o.Defs.Lookup(m.Name)

	n := &tree.GraphNode{
		ID:       strconv.Itoa(m.ID),
		Name:     m.Name,
		Desc:     m.Desc,
		Debug:    m.Debug,
		Disabled: m.Disabled,
		Path:     m.Path,
		Def:      def,
	}

	// Only schema-declared argument keys survive into the graph.
	if len(m.Args) > 0 {
		n.Args = make(map[string]btvalue.Value, len(m.Args))
		for k, v := range m.Args {
			if def.Arg(k) != nil {
				n.Args[k] = v
			}
		}
		if len(n.Args) == 0 {
			n.Args = nil
		}
	}

	n.Input = padSlots(m.Input, def.Input)
	n.Output = padSlots(m.Output, def.Output)

	if m.Path != "" {
		resolveSubtree(ctx, n, o, visiting, diags)
	} else {
		for _, cm := range m.Children {
			n.Children = append(n.Children, toGraph(ctx, cm, o, visiting, diags))
		}
	}

	n.RecalcSize()
	return n
}

// ToModel converts an enriched graph node back into the compact stored form.
//
// A subtree root serializes as its path reference; its children belong to
// the referenced file and are only written out when includeSubtreeChildren
// is set (saving the subtree file itself).
func ToModel(n *tree.GraphNode, includeSubtreeChildren bool) *tree.NodeModel {
	m := &tree.NodeModel{
		Name:     n.Name,
		Desc:     n.Desc,
		Debug:    n.Debug,
		Disabled: n.Disabled,
		Path:     n.Path,
	}
	m.ID, _ = strconv.Atoi(n.ID)

	def := n.Def
	if def == nil {
		def = btschema.Unknown(n.Name)
	}

	// Files stay minimal: sections the schema does not declare are omitted
	// entirely.
	if len(def.Args) > 0 && len(n.Args) > 0 {
		m.Args = make(map[string]btvalue.Value, len(n.Args))
		for k, v := range n.Args {
			if def.Arg(k) != nil && v.Defined() {
				m.Args[k] = v
			}
		}
		if len(m.Args) == 0 {
			m.Args = nil
		}
	}
	if len(def.Input) > 0 {
		m.Input = trimSlots(n.Input, def.Input)
	}
	if len(def.Output) > 0 {
		m.Output = trimSlots(n.Output, def.Output)
	}

	if n.IsSubtree() && !includeSubtreeChildren {
		return m
	}
	for _, c := range n.Children {
		m.Children = append(m.Children, ToModel(c, false))
	}
	return m
}

// padSlots fills missing slot values with empty strings up to the declared
// count. Extra values are kept; validation decides their fate.
func padSlots(data []string, defs []btschema.SlotDef) []string {
	if len(defs) == 0 && len(data) == 0 {
		return nil
	}
	out := append([]string(nil), data...)
	for len(out) < len(defs) {
		out = append(out, "")
	}
	return out
}

// trimSlots produces the compact stored form of a slot list: values beyond
// the declared count are dropped unless the trailing slot is variadic, and
// trailing empties are trimmed.
func trimSlots(data []string, defs []btschema.SlotDef) []string {
	variadic := len(defs) > 0 && defs[len(defs)-1].Variadic
	out := append([]string(nil), data...)
	if !variadic && len(out) > len(defs) {
		out = out[:len(defs)]
	}
	if !variadic {
		for len(out) > 0 && out[len(out)-1] == "" {
			out = out[:len(out)-1]
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// pathKey normalizes a subtree reference for cycle detection, so the same
// file reached through different spellings still registers as one path.
func pathKey(p string) string {
	return path.Clean(filepath.ToSlash(p))
}
