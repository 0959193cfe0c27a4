// Package metrics exposes Prometheus metrics for the HTTP server and the
// version count path, backed by a private registry served at /metrics.
package metrics
