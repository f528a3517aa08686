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

	LendersEvaluated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_lenders_evaluated_total",
			Help: "Total number of lender criteria records evaluated",
		},
	)

	LendersMatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_lenders_matched_total",
			Help: "Total number of lenders returned in match results",
		},
	)

	CatalogFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_catalog_failures_total",
			Help: "Match runs that fell back to an empty panel because the lender catalog was unavailable",
		},
	)
)
