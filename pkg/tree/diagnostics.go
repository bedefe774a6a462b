package tree

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single problem found while building or validating a tree.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	NodeID   string   `json:"node_id,omitempty"`
	NodeName string   `json:"node_name,omitempty"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
}

func (d *Diagnostic) String() string {
	var sb strings.Builder
	sb.WriteString(d.Severity.String())
	if d.NodeID != "" || d.NodeName != "" {
		fmt.Fprintf(&sb, " [node %s %s]", d.NodeID, d.NodeName)
	}
	if d.Field != "" {
		fmt.Fprintf(&sb, " %s:", d.Field)
	}
	sb.WriteString(" ")
	sb.WriteString(d.Message)
	return sb.String()
}

// Errorf appends an error diagnostic for the given node.
func (ds *Diagnostics) Errorf(nodeID, nodeName, field, format string, a ...any) {
	*ds = append(*ds, &Diagnostic{
		Severity: SeverityError,
		NodeID:   nodeID,
		NodeName: nodeName,
		Field:    field,
		Message:  fmt.Sprintf(format, a...),
	})
}

// Warnf appends a warning diagnostic for the given node.
func (ds *Diagnostics) Warnf(nodeID, nodeName, field, format string, a ...any) {
	*ds = append(*ds, &Diagnostic{
		Severity: SeverityWarning,
		NodeID:   nodeID,
		NodeName: nodeName,
		Field:    field,
		Message:  fmt.Sprintf(format, a...),
	})
}

// Diagnostics collects every problem found in one pass. Building and
// validating keep going after the first failure so a whole tree's issues
// surface at once.
type Diagnostics []*Diagnostic

// HasErrors reports whether any diagnostic has error severity.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Error implements the error interface over the aggregate.
func (ds Diagnostics) Error() string {
	if len(ds) == 0 {
		return "no diagnostics"
	}
	if len(ds) == 1 {
		return ds[0].String()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d diagnostics:\n", len(ds))
	for i, d := range ds {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, d.String())
	}
	return sb.String()
}
