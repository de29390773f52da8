package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	MediaUploadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_upload_duration_seconds",
			Help:    "Media host upload duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
		},
		[]string{"status"},
	)

	MQConsumeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mq_consume_latency_ms",
			Help:    "MQ message consumption latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"routing_key", "queue"},
	)

	SlowQueryCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_slow_query_count",
			Help: "Total number of slow database queries",
		},
		[]string{"sql"},
	)

	RecordMutationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_mutation_count",
			Help: "Total number of record mutations",
		},
		[]string{"kind", "operation"}, // kind: experience, project, testimonial
	)

	TestimonialSubmittedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "testimonial_submitted_count",
			Help: "Total number of public testimonial submissions",
		},
	)
)

// RecordHTTPRequestDuration records an HTTP request observation.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordMediaUpload records an outbound media upload observation.
func RecordMediaUpload(status string, duration time.Duration) {
	MediaUploadDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordMQConsumeLatency records MQ consumption latency.
func RecordMQConsumeLatency(routingKey, queue string, duration time.Duration) {
	MQConsumeLatency.WithLabelValues(routingKey, queue).Observe(float64(duration.Milliseconds()))
}

// IncrementSlowQuery counts a slow query by (truncated) SQL text.
func IncrementSlowQuery(sql string) {
	SlowQueryCount.WithLabelValues(sql).Inc()
}

// IncrementRecordMutation counts a create/update/delete/approve per record kind.
func IncrementRecordMutation(kind, operation string) {
	RecordMutationCount.WithLabelValues(kind, operation).Inc()
}
