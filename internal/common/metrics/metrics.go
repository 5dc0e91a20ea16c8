// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	// RejectionEmailsComposed counts drafts by the tag that selected the
	// feedback paragraph. Drafts without a known tag are counted as "fallback".
	RejectionEmailsComposed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rejection_emails_composed_total",
			Help: "Total number of rejection emails composed, by reason tag",
		},
		[]string{"reason"},
	)
)

// FallbackReason is the label used when no catalog template matched.
const FallbackReason = "fallback"

// RecordComposed increments RejectionEmailsComposed for one draft.
func RecordComposed(reasonTag string, usedFallback bool) {
	label := reasonTag
	if usedFallback || label == "" {
		label = FallbackReason
	}
	RejectionEmailsComposed.WithLabelValues(label).Inc()
}
