/*
Package observability exposes Prometheus metrics for the arbor editor core:
tree builds, build latency, emitted diagnostics and subtree staleness checks.

Metrics register on the default registry; the HTTP adapter serves them on
/metrics.
*/
package observability
