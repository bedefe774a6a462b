// Package tui renders validation reports for the terminal.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/arborlab/arbor/pkg/tree"
)

// NewRenderer returns a function that renders markdown using glamour.
// When stdout is not a terminal (CI, pipes) the markdown passes through
// untouched so reports stay grep-able.
func NewRenderer() func(string) (string, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) || termenv.ColorProfile() == termenv.Ascii {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// BuildReport formats a tree's diagnostics as a markdown document.
func BuildReport(name string, nodeCount int, diags tree.Diagnostics) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Validation report: %s\n\n", name)
	fmt.Fprintf(&sb, "%d nodes checked.\n\n", nodeCount)

	if len(diags) == 0 {
		sb.WriteString("No problems found.\n")
		return sb.String()
	}

	errs, warns := 0, 0
	for _, d := range diags {
		if d.Severity == tree.SeverityError {
			errs++
		} else {
			warns++
		}
	}
	fmt.Fprintf(&sb, "**%d error(s), %d warning(s).**\n\n", errs, warns)

	sb.WriteString("| | Node | Field | Problem |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, d := range diags {
		marker := "❌"
		if d.Severity == tree.SeverityWarning {
			marker = "⚠️"
		}
		node := strings.TrimSpace(d.NodeID + " " + d.NodeName)
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", marker, node, d.Field, d.Message)
	}
	return sb.String()
}
