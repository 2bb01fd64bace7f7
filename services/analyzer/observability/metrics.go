// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package observability provides Prometheus metrics for the analyzer
// service: request counters, analysis latency histograms, cache hit/miss
// counters, and enrichment outcome counters. All metric operations are
// thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "ilakkiyam"

const analyzerSubsystem = "analyzer"

// AnalyzerMetrics holds all Prometheus metrics for the analysis pipeline.
// Initialize once at startup via InitMetrics().
type AnalyzerMetrics struct {
	// RequestsTotal counts analyze requests by status.
	// Labels: status (success, invalid_input, error)
	RequestsTotal *prometheus.CounterVec

	// AnalysisDurationSeconds measures full pipeline latency.
	// Labels: enriched (true, false)
	AnalysisDurationSeconds *prometheus.HistogramVec

	// CacheEventsTotal counts result cache lookups.
	// Labels: outcome (hit, miss)
	CacheEventsTotal *prometheus.CounterVec

	// EnrichmentTotal counts collaborator call outcomes.
	// Labels: backend, outcome (structured, raw_fallback, failed, skipped)
	EnrichmentTotal *prometheus.CounterVec

	// MatchesTotal counts analyses by match verdict.
	// Labels: matched (true, false)
	MatchesTotal *prometheus.CounterVec
}

// DefaultMetrics is the singleton instance, set by InitMetrics().
var DefaultMetrics *AnalyzerMetrics

// InitMetrics creates and registers all analyzer metrics on the default
// Prometheus registry. Call once at startup; a second call panics on
// duplicate registration.
func InitMetrics() *AnalyzerMetrics {
	DefaultMetrics = &AnalyzerMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: analyzerSubsystem,
				Name:      "requests_total",
				Help:      "Total analyze requests by status",
			},
			[]string{"status"},
		),

		AnalysisDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: analyzerSubsystem,
				Name:      "analysis_duration_seconds",
				Help:      "Full pipeline latency in seconds",
				Buckets:   []float64{0.001, 0.005, 0.025, 0.1, 0.5, 1, 5, 15, 60},
			},
			[]string{"enriched"},
		),

		CacheEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: analyzerSubsystem,
				Name:      "cache_events_total",
				Help:      "Result cache lookups by outcome",
			},
			[]string{"outcome"},
		),

		EnrichmentTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: analyzerSubsystem,
				Name:      "enrichment_total",
				Help:      "Collaborator call outcomes by backend",
			},
			[]string{"backend", "outcome"},
		),

		MatchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: analyzerSubsystem,
				Name:      "matches_total",
				Help:      "Analyses by corpus match verdict",
			},
			[]string{"matched"},
		),
	}

	return DefaultMetrics
}

// RequestStatus labels a completed analyze request.
type RequestStatus string

const (
	StatusSuccess      RequestStatus = "success"
	StatusInvalidInput RequestStatus = "invalid_input"
	StatusError        RequestStatus = "error"
)

// EnrichmentOutcome labels one collaborator call.
type EnrichmentOutcome string

const (
	EnrichmentStructured  EnrichmentOutcome = "structured"
	EnrichmentRawFallback EnrichmentOutcome = "raw_fallback"
	EnrichmentFailed      EnrichmentOutcome = "failed"
	EnrichmentSkipped     EnrichmentOutcome = "skipped"
)

// RecordRequest records a completed analyze request.
func (m *AnalyzerMetrics) RecordRequest(status RequestStatus) {
	m.RequestsTotal.WithLabelValues(string(status)).Inc()
}

// RecordAnalysis records pipeline latency and the match verdict.
func (m *AnalyzerMetrics) RecordAnalysis(seconds float64, enriched, matched bool) {
	m.AnalysisDurationSeconds.WithLabelValues(boolLabel(enriched)).Observe(seconds)
	m.MatchesTotal.WithLabelValues(boolLabel(matched)).Inc()
}

// RecordCacheEvent records one cache lookup.
func (m *AnalyzerMetrics) RecordCacheEvent(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.CacheEventsTotal.WithLabelValues(outcome).Inc()
}

// RecordEnrichment records one collaborator call outcome.
func (m *AnalyzerMetrics) RecordEnrichment(backend string, outcome EnrichmentOutcome) {
	m.EnrichmentTotal.WithLabelValues(backend, string(outcome)).Inc()
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
