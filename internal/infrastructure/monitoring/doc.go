// Package monitoring exposes Prometheus metrics for the shell core:
// open window count, lifecycle operation totals, event bus throughput,
// notification volume, palette searches, and HTTP/WebSocket traffic.
// Metrics are registered via promauto and served on /metrics.
package monitoring
