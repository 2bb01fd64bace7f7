// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package handlers contains the gin handlers for the analyzer's HTTP API.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/thamizhneri/ilakkiyam/services/analyzer/analysis"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/datatypes"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/observability"
)

var analyzeTracer trace.Tracer = otel.Tracer("ilakkiyam.analyzer.handlers")

// HandleAnalyze runs the full pipeline for one submitted text.
func HandleAnalyze(analyzer *analysis.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := analyzeTracer.Start(c.Request.Context(), "HandleAnalyze")
		defer span.End()

		start := time.Now()

		var req datatypes.AnalyzeRequest
		if err := c.BindJSON(&req); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			slog.Error("Failed to parse the analyze request", "error", err)
			recordRequest(observability.StatusInvalidInput)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := req.Validate(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			slog.Warn("Rejected invalid analyze request", "error", err)
			recordRequest(observability.StatusInvalidInput)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.EnsureDefaults()

		result, err := analyzer.Analyze(ctx, req.Text)
		if err != nil {
			if errors.Is(err, datatypes.ErrEmptyInput) {
				recordRequest(observability.StatusInvalidInput)
				c.JSON(http.StatusBadRequest, gin.H{"error": "input text is empty"})
				return
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			slog.Error("Analysis failed", "request_id", req.RequestID, "error", err)
			recordRequest(observability.StatusError)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Cached results carry the identifiers of this request, not the one
		// that originally computed them.
		result.RequestID = req.RequestID
		result.Timestamp = req.Timestamp

		span.SetAttributes(
			attribute.String("request.id", req.RequestID),
			attribute.Bool("analysis.matched", result.Matched),
			attribute.Float64("analysis.confidence", result.Confidence),
			attribute.Bool("analysis.cached", result.Cached),
		)

		recordRequest(observability.StatusSuccess)
		if m := observability.DefaultMetrics; m != nil {
			m.RecordCacheEvent(result.Cached)
			if !result.Cached {
				enriched := result.Enrichment != nil && result.Enrichment.Enhanced
				m.RecordAnalysis(time.Since(start).Seconds(), enriched, result.Matched)
				m.RecordEnrichment(enrichmentBackend(result), enrichmentOutcome(result))
			}
		}

		c.JSON(http.StatusOK, result)
	}
}

func recordRequest(status observability.RequestStatus) {
	if m := observability.DefaultMetrics; m != nil {
		m.RecordRequest(status)
	}
}

func enrichmentBackend(result datatypes.AnalysisResult) string {
	if result.Enrichment != nil && result.Enrichment.Backend != "" {
		return result.Enrichment.Backend
	}
	return "none"
}

func enrichmentOutcome(result datatypes.AnalysisResult) observability.EnrichmentOutcome {
	switch {
	case result.Enrichment == nil && result.Error != "":
		return observability.EnrichmentFailed
	case result.Enrichment == nil:
		return observability.EnrichmentSkipped
	case result.Enrichment.Enhanced:
		return observability.EnrichmentStructured
	default:
		return observability.EnrichmentRawFallback
	}
}
