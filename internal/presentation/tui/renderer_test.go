package tui

import (
	"strings"
	"testing"

	"github.com/arborlab/arbor/pkg/tree"
)

func TestBuildReportClean(t *testing.T) {
	out := BuildReport("trees/patrol.json", 5, nil)
	if !strings.Contains(out, "trees/patrol.json") {
		t.Error("report should name the tree")
	}
	if !strings.Contains(out, "5 nodes checked") {
		t.Errorf("report should state the node count:\n%s", out)
	}
	if !strings.Contains(out, "No problems found") {
		t.Errorf("clean report:\n%s", out)
	}
}

func TestBuildReportWithDiagnostics(t *testing.T) {
	var diags tree.Diagnostics
	diags.Errorf("3", "Log", "args.message", "missing required value of type string")
	diags.Warnf("4", "Wait", "args.duration", "suspiciously long duration")

	out := BuildReport("bad.json", 4, diags)
	if !strings.Contains(out, "1 error(s), 1 warning(s)") {
		t.Errorf("summary line missing:\n%s", out)
	}
	if !strings.Contains(out, "args.message") || !strings.Contains(out, "args.duration") {
		t.Errorf("diagnostics rows missing:\n%s", out)
	}
	if !strings.Contains(out, "3 Log") {
		t.Errorf("node column missing:\n%s", out)
	}
}
