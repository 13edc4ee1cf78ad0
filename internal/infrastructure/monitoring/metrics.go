package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the shell.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Window metrics
	WindowsOpen    prometheus.Gauge
	WindowsCreated prometheus.Counter
	WindowOps      *prometheus.CounterVec
	Reindexes      prometheus.Counter

	// Event bus metrics
	EventsEmitted  *prometheus.CounterVec
	ListenerPanics *prometheus.CounterVec

	// Notification metrics
	NotificationsShown prometheus.Counter

	// Palette metrics
	PaletteSearches prometheus.Counter
	PaletteLaunches prometheus.Counter

	// WebSocket metrics
	WSConnections prometheus.Gauge

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates and registers the shell metric set.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shell_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		WindowsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "shell_windows_open",
			Help: "Number of windows currently in the registry",
		}),
		WindowsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shell_windows_created_total",
			Help: "Total number of windows created",
		}),
		WindowOps: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_window_operations_total",
				Help: "Window lifecycle operations by kind",
			},
			[]string{"op"},
		),
		Reindexes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shell_zindex_reindex_total",
			Help: "Times the z-index counter overflowed and windows were reindexed",
		}),

		EventsEmitted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_events_emitted_total",
				Help: "Event bus emissions by event name",
			},
			[]string{"event"},
		),
		ListenerPanics: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_listener_panics_total",
				Help: "Recovered panics inside event listeners by event name",
			},
			[]string{"event"},
		),

		NotificationsShown: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shell_notifications_shown_total",
			Help: "Total notifications shown",
		}),

		PaletteSearches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shell_palette_searches_total",
			Help: "Command palette searches executed",
		}),
		PaletteLaunches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "shell_palette_launches_total",
			Help: "Command palette results executed",
		}),

		WSConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "shell_ws_connections",
			Help: "Active WebSocket connections",
		}),

		Uptime: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "shell_uptime_seconds",
			Help: "Shell uptime in seconds",
		}),
	}
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// UpdateUptime refreshes the uptime gauge.
func (m *Metrics) UpdateUptime() {
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}
