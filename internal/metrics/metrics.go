package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	SubmissionsReceived *prometheus.CounterVec
	DuplicatesDetected  *prometheus.CounterVec
	DecisionsTotal      *prometheus.CounterVec
	PointsAwarded       prometheus.Counter
	PurchasesTotal      *prometheus.CounterVec
	PointsSpent         prometheus.Counter
	ClassifierFallbacks prometheus.Counter

	// Database Metrics
	DBConnectionsInUse prometheus.Gauge
	DBConnectionsIdle  prometheus.Gauge

	// Validation Metrics
	ValidationErrors *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tidewatch_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tidewatch_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tidewatch_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		SubmissionsReceived: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tidewatch_submissions_received_total",
				Help: "Total number of submissions received",
			},
			[]string{"kind"},
		),
		DuplicatesDetected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tidewatch_duplicates_detected_total",
				Help: "Total number of near-duplicate images detected",
			},
			[]string{"same_user"},
		),
		DecisionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tidewatch_decisions_total",
				Help: "Total number of moderation decisions",
			},
			[]string{"kind", "decision"},
		),
		PointsAwarded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tidewatch_points_awarded_total",
				Help: "Total points credited through approvals",
			},
		),
		PurchasesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tidewatch_purchases_total",
				Help: "Total number of marketplace purchases",
			},
			[]string{"status"},
		),
		PointsSpent: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tidewatch_points_spent_total",
				Help: "Total points spent in the marketplace",
			},
		),
		ClassifierFallbacks: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tidewatch_classifier_fallbacks_total",
				Help: "Total degraded classifications served without the external model",
			},
		),

		DBConnectionsInUse: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tidewatch_db_connections_in_use",
				Help: "Number of database connections currently in use",
			},
		),
		DBConnectionsIdle: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tidewatch_db_connections_idle",
				Help: "Number of idle database connections",
			},
		),

		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tidewatch_validation_errors_total",
				Help: "Total number of validation errors",
			},
			[]string{"field", "tag"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordSubmission(kind string) {
	m.SubmissionsReceived.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordDuplicate(sameUser bool) {
	label := "false"
	if sameUser {
		label = "true"
	}
	m.DuplicatesDetected.WithLabelValues(label).Inc()
}

func (m *Metrics) RecordDecision(kind, decision string) {
	m.DecisionsTotal.WithLabelValues(kind, decision).Inc()
}

func (m *Metrics) RecordPointsAwarded(points int64) {
	m.PointsAwarded.Add(float64(points))
}

func (m *Metrics) RecordPurchase(status string, pointsSpent int64) {
	m.PurchasesTotal.WithLabelValues(status).Inc()
	if pointsSpent > 0 {
		m.PointsSpent.Add(float64(pointsSpent))
	}
}

func (m *Metrics) RecordClassifierFallback() {
	m.ClassifierFallbacks.Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}
