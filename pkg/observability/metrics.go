package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/arborlab/arbor/pkg/tree"
)

var (
	// TreeBuilds counts tree build attempts by result (ok, invalid, error).
	TreeBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arbor",
		Subsystem: "build",
		Name:      "trees_total",
		Help:      "Tree build attempts by result.",
	}, []string{"result"})

	// BuildDuration observes how long a full build takes (load, convert,
	// subtree resolution, id/status assignment).
	BuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "arbor",
		Subsystem: "build",
		Name:      "duration_seconds",
		Help:      "Tree build duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	// DiagnosticsEmitted counts diagnostics by severity.
	DiagnosticsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arbor",
		Name:      "diagnostics_total",
		Help:      "Diagnostics emitted by builds and validation, by severity.",
	}, []string{"severity"})

	// StaleChecks counts subtree staleness queries by verdict.
	StaleChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arbor",
		Subsystem: "subtree",
		Name:      "stale_checks_total",
		Help:      "Subtree staleness checks by verdict (stale, fresh).",
	}, []string{"verdict"})
)

// ObserveBuild records one build attempt.
func ObserveBuild(start time.Time, diags tree.Diagnostics, err error) {
	BuildDuration.Observe(time.Since(start).Seconds())
	switch {
	case err != nil:
		TreeBuilds.WithLabelValues("error").Inc()
	case diags.HasErrors():
		TreeBuilds.WithLabelValues("invalid").Inc()
	default:
		TreeBuilds.WithLabelValues("ok").Inc()
	}
	ObserveDiagnostics(diags)
}

// ObserveDiagnostics records emitted diagnostics by severity.
func ObserveDiagnostics(diags tree.Diagnostics) {
	for _, d := range diags {
		DiagnosticsEmitted.WithLabelValues(d.Severity.String()).Inc()
	}
}

// ObserveStaleCheck records one staleness query.
func ObserveStaleCheck(stale bool) {
	verdict := "fresh"
	if stale {
		verdict = "stale"
	}
	StaleChecks.WithLabelValues(verdict).Inc()
}
