package build

import (
	"strconv"

	"github.com/arborlab/arbor/pkg/btschema"
	"github.com/arborlab/arbor/pkg/tree"
)

// Assign renumbers the whole graph and recomputes every status bitmask.
//
// IDs are dense sequential strings starting at "1" for the root, assigned
// depth-first with each node numbered before its children and each child
// fully expanded before its next sibling. Status composition is post-order:
// a node's bitmask derives from its already-computed children.
//
// Run it after every structural edit.
func Assign(root *tree.GraphNode) {
	counter := 1
	assign(root, "", &counter)
}

func assign(n *tree.GraphNode, parentID string, counter *int) {
	n.ID = strconv.Itoa(*counter)
	*counter++
	n.Parent = parentID

	for _, c := range n.Children {
		assign(c, n.ID, counter)
	}

	n.Status = composeStatus(n)
	n.RecalcSize()
}

// composeStatus computes a node's outcome bitmask from its definition's
// composition directives and its children's aggregated outcomes.
//
// Without directives the node is transparent: it passes through the OR of
// its enabled children's outcomes.
func composeStatus(n *tree.GraphNode) tree.Status {
	agg := aggregateChildren(n.Children)

	if len(n.Def.Status) == 0 {
		return agg & tree.StatusMask
	}

	var own tree.Status
	for _, rule := range n.Def.Status {
		switch rule {
		case btschema.RuleSuccess:
			own |= tree.StatusSuccess
		case btschema.RuleFailure:
			own |= tree.StatusFailure
		case btschema.RuleRunning:
			own |= tree.StatusRunning

		case btschema.RuleNotSuccess:
			if agg.Has(tree.StatusFailure) {
				own |= tree.StatusSuccess
			}
		case btschema.RuleNotFailure:
			if agg.Has(tree.StatusSuccess) {
				own |= tree.StatusFailure
			}

		case btschema.RuleAnySuccess:
			own |= agg & tree.StatusSuccess
		case btschema.RuleAnyFailure:
			own |= agg & tree.StatusFailure
		case btschema.RuleAnyRunning:
			own |= agg & tree.StatusRunning

		case btschema.RuleAllSuccess:
			if agg.Has(tree.StatusSuccessZero) {
				own &^= tree.StatusSuccess
			} else {
				own |= agg & tree.StatusSuccess
			}
		case btschema.RuleAllFailure:
			if agg.Has(tree.StatusFailureZero) {
				own &^= tree.StatusFailure
			} else {
				own |= agg & tree.StatusFailure
			}
		}
	}
	return own
}

// aggregateChildren ORs the enabled children's outcome bits and tracks, via
// the zero bits, whether some enabled child lacks success or failure.
// Disabled children contribute nothing.
func aggregateChildren(children []*tree.GraphNode) tree.Status {
	var agg tree.Status
	for _, c := range children {
		if c.Disabled {
			continue
		}
		agg |= c.Status & tree.StatusMask
		if !c.Status.Has(tree.StatusSuccess) {
			agg |= tree.StatusSuccessZero
		}
		if !c.Status.Has(tree.StatusFailure) {
			agg |= tree.StatusFailureZero
		}
	}
	return agg
}
