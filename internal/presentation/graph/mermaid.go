// Package graph renders a built behavior tree as a Mermaid diagram.
package graph

import (
	"fmt"
	"strings"

	"github.com/arborlab/arbor/pkg/tree"
)

// GenerateMermaid produces Mermaid flowchart syntax for a built tree.
// It applies semantic shapes by definition category:
//   - Root: ((Circle))
//   - Composite: [Rectangle]
//   - Decorator: [[Subroutine]]
//   - Condition: {Rhombus}
//   - Subtree reference: [/Parallelogram/]
//
// Disabled nodes are grayed out.
func GenerateMermaid(root *tree.GraphNode) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var disabled []string
	root.Walk(func(n *tree.GraphNode) bool {
		safeID := sanitizeMermaidID(n.ID)

		opener, closer := "[", "]"
		switch {
		case n.ID == "1":
			opener, closer = "((", "))"
		case n.IsSubtree():
			opener, closer = "[/", "/]"
		case n.Def.Type == "Decorator":
			opener, closer = "[[", "]]"
		case n.Def.Type == "Condition":
			opener, closer = "{", "}"
		}

		label := n.Name
		if n.IsSubtree() {
			label = fmt.Sprintf("%s <br/> %s", n.Name, n.Path)
		}
		sb.WriteString(fmt.Sprintf("    n%s%s\"%s: %s\"%s\n", safeID, opener, n.ID, escapeMermaidLabel(label), closer))

		if n.Disabled {
			disabled = append(disabled, "n"+safeID)
		}

		for _, c := range n.Children {
			sb.WriteString(fmt.Sprintf("    n%s --> n%s\n", safeID, sanitizeMermaidID(c.ID)))
		}
		return true
	})

	if len(disabled) > 0 {
		sb.WriteString("\n    %% Disabled nodes\n")
		sb.WriteString("    classDef disabled fill:#eceff1,stroke:#90a4ae,stroke-dasharray: 4 4,color:#607d8b;\n")
		for _, id := range disabled {
			sb.WriteString(fmt.Sprintf("    class %s disabled;\n", id))
		}
	}

	return sb.String()
}

func escapeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
