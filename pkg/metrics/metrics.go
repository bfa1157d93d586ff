// Package metrics defines the Prometheus instrumentation for the pipeline.
// Collectors are package-level so any component can record without carrying
// a handle; the exporter owns the registry and the scrape handler.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "persim"

var (
	llmCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_call_duration_seconds",
			Help:      "Wall-clock duration of one LLM gateway call including retries.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 12),
		},
		[]string{"task"},
	)

	llmCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_calls_total",
			Help:      "LLM gateway calls by task and outcome.",
		},
		[]string{"task", "outcome"},
	)

	stageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of one pipeline stage by terminal status.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 13),
		},
		[]string{"stage", "status"},
	)

	pipelineRunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_run_duration_seconds",
			Help:      "End-to-end pipeline run duration by final classification.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 13),
		},
		[]string{"status"},
	)

	pipelineRunsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_active",
			Help:      "Pipeline runs currently executing.",
		},
	)

	interviewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interviews_total",
			Help:      "Interview tasks by outcome (completed, failed, cached).",
		},
		[]string{"outcome"},
	)

	cacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interview_cache_lookups_total",
			Help:      "Interview cache lookups by result.",
		},
		[]string{"result"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by method, route, and status code.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

var allMetrics = []prometheus.Collector{
	llmCallDuration,
	llmCallsTotal,
	stageDuration,
	pipelineRunDuration,
	pipelineRunsActive,
	interviewsTotal,
	cacheLookupsTotal,
	httpRequestDuration,
}

// ObserveLLMCall records one gateway call.
func ObserveLLMCall(task, outcome string, d time.Duration) {
	llmCallDuration.WithLabelValues(task).Observe(d.Seconds())
	llmCallsTotal.WithLabelValues(task, outcome).Inc()
}

// ObserveStage records one orchestrated stage execution.
func ObserveStage(stage, status string, d time.Duration) {
	stageDuration.WithLabelValues(stage, status).Observe(d.Seconds())
}

// ObservePipelineRun records a finished run.
func ObservePipelineRun(status string, d time.Duration) {
	pipelineRunDuration.WithLabelValues(status).Observe(d.Seconds())
}

// IncActiveRuns marks one run as executing.
func IncActiveRuns() { pipelineRunsActive.Inc() }

// DecActiveRuns marks one run as finished.
func DecActiveRuns() { pipelineRunsActive.Dec() }

// RecordInterview counts one interview task outcome.
func RecordInterview(outcome string) {
	interviewsTotal.WithLabelValues(outcome).Inc()
}

// RecordCacheLookup counts one interview cache lookup.
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookupsTotal.WithLabelValues(result).Inc()
}

// ObserveHTTPRequest records one served HTTP request.
func ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	httpRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
