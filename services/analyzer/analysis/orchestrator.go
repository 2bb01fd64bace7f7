// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analysis

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/thamizhneri/ilakkiyam/services/analyzer/classify"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/corpus"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/datatypes"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/match"
	"github.com/thamizhneri/ilakkiyam/services/llm"
)

const (
	// DefaultEnrichmentTimeout bounds the single collaborator round trip.
	DefaultEnrichmentTimeout = 60 * time.Second

	enrichTemperature = 0.3
	enrichMaxTokens   = 2048

	enrichedSentimentScore = 0.8
)

// Options configures an Analyzer. Zero values fall back to the package
// defaults; a nil Collaborator disables enrichment entirely.
type Options struct {
	Store               *corpus.Store
	MatchThreshold      float64
	ConfidenceThreshold float64
	CacheSize           int
	Collaborator        llm.Client
	Backend             string
	EnrichmentTimeout   time.Duration
}

// Analyzer runs the full pipeline for one input text: match against the
// corpus, classify, compute the heuristic baseline, optionally enrich via
// the collaborator, and memoize the assembled result.
type Analyzer struct {
	store        *corpus.Store
	selector     *match.Selector
	classifier   *classify.Classifier
	cache        *ResultCache
	collaborator llm.Client
	backend      string
	timeout      time.Duration
}

// NewAnalyzer wires the pipeline from Options.
func NewAnalyzer(opts Options) *Analyzer {
	timeout := opts.EnrichmentTimeout
	if timeout <= 0 {
		timeout = DefaultEnrichmentTimeout
	}
	return &Analyzer{
		store:        opts.Store,
		selector:     match.NewSelector(opts.Store, opts.MatchThreshold),
		classifier:   classify.NewClassifier(opts.ConfidenceThreshold),
		cache:        NewResultCache(opts.CacheSize),
		collaborator: opts.Collaborator,
		backend:      opts.Backend,
		timeout:      timeout,
	}
}

// Cache exposes the result cache for metrics reporting.
func (a *Analyzer) Cache() *ResultCache {
	return a.cache
}

// EnrichmentAvailable reports whether a collaborator backend is usable.
func (a *Analyzer) EnrichmentAvailable() bool {
	return a.collaborator != nil && a.collaborator.Available()
}

// Analyze runs the pipeline. Input that is empty after trimming is the only
// hard failure; every collaborator problem degrades into the result instead.
func (a *Analyzer) Analyze(ctx context.Context, text string) (datatypes.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return datatypes.AnalysisResult{}, datatypes.ErrEmptyInput
	}
	result := a.cache.GetOrCompute(text, func() datatypes.AnalysisResult {
		return a.compute(ctx, text)
	})
	return result, nil
}

func (a *Analyzer) compute(ctx context.Context, text string) datatypes.AnalysisResult {
	start := time.Now()
	slog.Info("Starting analysis", "chars", len([]rune(text)))

	matches := a.selector.FindMatches(text)
	assessment := a.classifier.Classify(text, matches)

	result := datatypes.AnalysisResult{
		Timestamp:   time.Now().UnixMilli(),
		Input:       text,
		Matched:     len(matches) > 0,
		IsKnownWork: assessment.IsKnownWork,
		Confidence:  assessment.Confidence,
		Factors:     assessment.Factors,
		Elements:    assessment.Elements,
		Matches:     matches,
		Heuristic:   Heuristic(text),
	}
	if len(matches) > 0 {
		result.BestMatch = a.bestMatch(matches[0])
	}

	a.enrich(ctx, text, &result)

	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	slog.Info("Analysis completed",
		"matched", result.Matched,
		"confidence", result.Confidence,
		"enhanced", result.Enrichment != nil && result.Enrichment.Enhanced,
		"duration_ms", result.ProcessingTimeMs)
	return result
}

// bestMatch joins the top candidate with its corpus unit metadata.
func (a *Analyzer) bestMatch(top match.Candidate) *datatypes.BestMatch {
	best := &datatypes.BestMatch{
		UnitID:      top.UnitID,
		Score:       top.Score,
		Granularity: top.Granularity,
		Excerpt:     top.Excerpt,
		LineNumber:  top.LineNumber,
	}
	if unit, ok := a.store.Unit(top.UnitID); ok {
		best.GroupName = unit.GroupName
		best.SectionLabel = unit.SectionLabel
		best.Meaning = unit.Meaning
		best.Commentary = unit.Commentary
		best.MoralTeaching = unit.MoralTeaching
		best.FameLevel = unit.FameLevel
	}
	return best
}

// enrich performs at most one bounded collaborator call. Unavailability is
// silent; timeouts and request failures land in result.Error with the
// heuristic section untouched.
func (a *Analyzer) enrich(ctx context.Context, text string, result *datatypes.AnalysisResult) {
	if a.collaborator == nil || !a.collaborator.Available() {
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	temp := float32(enrichTemperature)
	maxTokens := enrichMaxTokens
	raw, err := a.collaborator.Generate(callCtx, BuildEnrichmentPrompt(text), llm.GenerationParams{
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		if errors.Is(err, llm.ErrUnavailable) {
			return
		}
		slog.Warn("Enrichment failed, keeping heuristic result", "error", err)
		result.Error = err.Error()
		return
	}

	section := ParseEnrichment(raw, a.backend)
	result.Enrichment = &section

	// The collaborator's meaning replaces the rule-based one whether or not
	// the payload parsed; sentiment is only taken from a structured payload.
	if section.Meaning != "" {
		result.Heuristic.Meaning = section.Meaning
	}
	if section.Enhanced && section.Sentiment != "" {
		result.Heuristic.Sentiment = datatypes.SentimentInfo{
			Label: section.Sentiment,
			Score: enrichedSentimentScore,
		}
	}
}
