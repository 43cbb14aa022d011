package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grantflow_submissions_total",
			Help: "Application submissions by source and result.",
		},
		[]string{"source", "result"},
	)

	AnalysisOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grantflow_analysis_outcomes_total",
			Help: "Model analysis outcomes by provider.",
		},
		[]string{"provider", "outcome"},
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grantflow_analysis_duration_seconds",
			Help:    "Latency of one application analysis, including fallbacks.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"provider", "outcome"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grantflow_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)
)

// Outcome labels shared by the analyzer, the audit log and the counters above.
const (
	OutcomeOK          = "ok"
	OutcomeCached      = "cached"
	OutcomeUnparseable = "unparseable"
	OutcomeFailed      = "failed"
)

func Handler() http.Handler {
	return promhttp.Handler()
}
