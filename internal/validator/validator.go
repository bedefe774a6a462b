// Package validator checks a built tree against the definitions its nodes
// are bound to: argument types, input/output slots, child counts and oneof
// exclusivity.
//
// Validation is pure. It works on a deep copy, so slot normalization never
// leaks into the caller's graph, and it keeps collecting after the first
// problem so one pass surfaces everything.
package validator

import (
	"strings"

	"github.com/arborlab/arbor/pkg/btschema"
	"github.com/arborlab/arbor/pkg/tree"
)

// Run validates the tree rooted at root.
//
// It returns a normalized copy (slot lists padded to their declared shape
// and truncated past it, unless trailing-variadic) and every diagnostic
// found. The tree is valid when the diagnostics carry no errors.
func Run(root *tree.GraphNode) (*tree.GraphNode, tree.Diagnostics) {
	norm := root.Clone()
	var diags tree.Diagnostics
	validateNode(norm, &diags)
	return norm, diags
}

// Valid is a convenience wrapper for callers that only need the verdict.
func Valid(root *tree.GraphNode) bool {
	_, diags := Run(root)
	return !diags.HasErrors()
}

func validateNode(n *tree.GraphNode, diags *tree.Diagnostics) {
	def := n.Def

	if def.IsUnknown() {
		// Schema error: fatal to this node's validation, but traversal
		// continues into children.
		diags.Errorf(n.ID, n.Name, "", "unknown node type %q", n.Name)
	} else {
		checkChildCount(n, diags)
		checkArgs(n, diags)
		checkSlots(n, diags)
	}

	for _, c := range n.Children {
		validateNode(c, diags)
	}
}

func checkChildCount(n *tree.GraphNode, diags *tree.Diagnostics) {
	want := n.Def.Children
	if want < 0 {
		return
	}
	if len(n.Children) != want {
		diags.Errorf(n.ID, n.Name, "children", "expected %d children, found %d", want, len(n.Children))
	}
}

func checkArgs(n *tree.GraphNode, diags *tree.Diagnostics) {
	for i := range n.Def.Args {
		a := &n.Def.Args[i]
		v, present := n.Args[a.Name]
		if present && !v.Defined() {
			present = false
		}

		if a.Oneof != "" {
			checkOneof(n, a, present, diags)
		}

		if err := CheckArg(a, v, present); err != nil {
			// Oneof-linked arguments may legitimately be absent when the
			// linked slot carries the value instead.
			if !present && a.Oneof != "" {
				continue
			}
			diags.Errorf(n.ID, n.Name, "args."+a.Name, "%v", err)
		}
	}
}

// checkOneof enforces exclusivity between an argument and the input slot
// whose declared name starts with the oneof tag: exactly one of the two must
// be supplied.
func checkOneof(n *tree.GraphNode, a *btschema.ArgDef, argPresent bool, diags *tree.Diagnostics) {
	slot := -1
	for i, s := range n.Def.Input {
		if strings.HasPrefix(s.Name, a.Oneof) {
			slot = i
			break
		}
	}
	if slot < 0 {
		diags.Errorf(n.ID, n.Name, "args."+a.Name, "oneof group %q matches no input slot", a.Oneof)
		return
	}

	argFilled := argPresent && !emptyTextArg(n, a.Name)
	slotFilled := slot < len(n.Input) && n.Input[slot] != ""

	switch {
	case argFilled && slotFilled:
		diags.Errorf(n.ID, n.Name, "args."+a.Name,
			"both argument and input %q are set; exactly one of the oneof group %q must be supplied",
			n.Def.Input[slot].Name, a.Oneof)
	case !argFilled && !slotFilled:
		diags.Errorf(n.ID, n.Name, "args."+a.Name,
			"neither argument nor input %q is set; exactly one of the oneof group %q must be supplied",
			n.Def.Input[slot].Name, a.Oneof)
	}
}

func emptyTextArg(n *tree.GraphNode, name string) bool {
	v, ok := n.Args[name]
	return ok && v.IsEmptyText()
}

func checkSlots(n *tree.GraphNode, diags *tree.Diagnostics) {
	n.Input = NormalizeSlots(n.Input, n.Def.Input)
	n.Output = NormalizeSlots(n.Output, n.Def.Output)

	for i, d := range n.Def.Input {
		if !CheckSlot(n.Def.Input, n.Input, i) {
			diags.Errorf(n.ID, n.Name, "input", "missing required input %q", d.Name)
		}
	}
	for i, d := range n.Def.Output {
		if !CheckSlot(n.Def.Output, n.Output, i) {
			diags.Errorf(n.ID, n.Name, "output", "missing required output %q", d.Name)
		}
	}
}
