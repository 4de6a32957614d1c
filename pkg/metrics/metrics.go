package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Buckets tuned for single AWS API calls (tens of ms up to the
	// Lambda invocation deadline)
	AWSCallBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21}

	// Storage Client Metrics (S3)
	StorageRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_client_operation_duration_seconds",
			Help:    "Storage client operation duration in seconds",
			Buckets: AWSCallBuckets,
		},
		[]string{"operation", "status"},
	)

	StorageRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_client_operation_total",
			Help: "Total number of storage client operations",
		},
		[]string{"operation", "status"},
	)

	// Build Client Metrics (CodeBuild)
	BuildRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "build_client_operation_duration_seconds",
			Help:    "Build client operation duration in seconds",
			Buckets: AWSCallBuckets,
		},
		[]string{"operation", "status"},
	)

	BuildRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "build_client_operation_total",
			Help: "Total number of build client operations",
		},
		[]string{"operation", "status"},
	)

	// Business Metrics
	BuildsTriggered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deploy_trigger_builds_total",
			Help: "Total number of triggered builds by project and returned status",
		},
		[]string{"project", "build_status"},
	)
)

// MeasureDuration returns the elapsed time since start in seconds
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
