// Package metrics collects per-run counters on a private Prometheus registry
// and can dump them in the text exposition format for a textfile collector.
package metrics
