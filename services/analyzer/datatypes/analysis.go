// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package datatypes provides the request and response structures for the
// analyzer service's HTTP API.
package datatypes

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/thamizhneri/ilakkiyam/services/analyzer/classify"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/match"
)

// MaxQueryChars is the maximum accepted input length in Unicode characters.
// Longer submissions are rejected before any matching work starts.
const MaxQueryChars = 5000

// ErrEmptyInput is returned when the submitted text is empty or whitespace.
var ErrEmptyInput = errors.New("input text is empty")

var analysisValidate = validator.New()

// AnalyzeRequest is the body of POST /v1/analyze.
type AnalyzeRequest struct {
	RequestID string `json:"request_id,omitempty" validate:"omitempty,uuid4"`
	Timestamp int64  `json:"timestamp,omitempty" validate:"gte=0"`
	Text      string `json:"text" validate:"required,max=5000"`
}

// Validate checks the request fields after JSON binding.
func (r *AnalyzeRequest) Validate() error {
	return analysisValidate.Struct(r)
}

// EnsureDefaults populates RequestID and Timestamp when the client omitted
// them, so every request carries identifiers for tracing.
func (r *AnalyzeRequest) EnsureDefaults() {
	if r.RequestID == "" {
		r.RequestID = uuid.New().String()
	}
	if r.Timestamp == 0 {
		r.Timestamp = time.Now().UnixMilli()
	}
}

// BestMatch is the top-scoring corpus passage with its source metadata.
type BestMatch struct {
	UnitID        int               `json:"unit_id"`
	GroupName     string            `json:"group_name,omitempty"`
	SectionLabel  string            `json:"section_label,omitempty"`
	Score         float64           `json:"score"`
	Granularity   match.Granularity `json:"granularity"`
	Excerpt       string            `json:"excerpt"`
	LineNumber    int               `json:"line_number,omitempty"`
	Meaning       string            `json:"meaning,omitempty"`
	Commentary    string            `json:"commentary,omitempty"`
	MoralTeaching string            `json:"moral_teaching,omitempty"`
	FameLevel     int               `json:"fame_level,omitempty"`
}

// SentimentInfo is the lexicon-based sentiment verdict.
type SentimentInfo struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// HeuristicSection carries the rule-based analysis that is always produced,
// with or without a collaborator backend.
type HeuristicSection struct {
	WordCount       int           `json:"word_count"`
	CharCount       int           `json:"char_count"`
	TamilCharCount  int           `json:"tamil_char_count"`
	LanguageMix     string        `json:"language_mix"`
	SemanticDensity float64       `json:"semantic_density"`
	Themes          []string      `json:"themes"`
	Meaning         string        `json:"meaning"`
	Sentiment       SentimentInfo `json:"sentiment"`
}

// EnrichmentSection is the collaborator-backed portion of a result. Enhanced
// is true only when at least one structured field was extracted from the
// collaborator's reply; a raw free-text fallback leaves it false.
type EnrichmentSection struct {
	Enhanced       bool   `json:"enhanced"`
	Meaning        string `json:"meaning_text,omitempty"`
	SourceName     string `json:"source_name,omitempty"`
	SectionLabel   string `json:"section_label,omitempty"`
	SequenceNumber string `json:"sequence_number,omitempty"`
	LineByLine     string `json:"line_by_line,omitempty"`
	Theme          string `json:"theme,omitempty"`
	Sentiment      string `json:"sentiment_label,omitempty"`
	Backend        string `json:"backend,omitempty"`
}

// AnalysisResult is the full response for one analyzed text.
type AnalysisResult struct {
	RequestID        string             `json:"request_id"`
	Timestamp        int64              `json:"timestamp"`
	Input            string             `json:"input"`
	Matched          bool               `json:"matched"`
	IsKnownWork      bool               `json:"is_known_work"`
	Confidence       float64            `json:"confidence"`
	Factors          map[string]float64 `json:"factors"`
	Elements         classify.Elements  `json:"elements"`
	BestMatch        *BestMatch         `json:"best_match,omitempty"`
	Matches          []match.Candidate  `json:"matches,omitempty"`
	Heuristic        HeuristicSection   `json:"heuristic"`
	Enrichment       *EnrichmentSection `json:"enrichment,omitempty"`
	Error            string             `json:"error,omitempty"`
	Cached           bool               `json:"cached"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
}
