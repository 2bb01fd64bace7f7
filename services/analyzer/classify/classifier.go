// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package classify

import (
	"github.com/thamizhneri/ilakkiyam/services/analyzer/match"
)

// DefaultThreshold is the confidence above which text is classified as a
// known work. Deliberately a separate knob from the match selector's
// similarity threshold.
const DefaultThreshold = 0.5

// Factor weights. This is a tuned heuristic scoring policy, not a calibrated
// statistical model.
const (
	verseMatchWeight   = 0.5
	entityWeight       = 0.2
	lexicalWeight      = 0.15
	structuralWeight   = 0.1
	lengthWeight       = 0.05
	entityScorePerHit  = 0.1
	entityScoreCap     = 0.3
	lexicalScorePerHit = 0.05
	lexicalScoreCap    = 0.2
	structScorePerHit  = 0.05
	structScoreCap     = 0.15
	lengthDivisor      = 200.0
	lengthScoreCap     = 0.1
)

// Assessment is the classifier's verdict on one query.
type Assessment struct {
	IsKnownWork bool               `json:"is_known_work"`
	Confidence  float64            `json:"confidence"`
	Factors     map[string]float64 `json:"factors"`
	Elements    Elements           `json:"elements"`
}

// Classifier combines match scores and text signals into a confidence value.
type Classifier struct {
	threshold float64
}

// NewClassifier builds a classifier. A non-positive threshold falls back to
// DefaultThreshold.
func NewClassifier(threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{threshold: threshold}
}

// Threshold reports the configured confidence threshold.
func (c *Classifier) Threshold() float64 {
	return c.threshold
}

// Classify computes a weighted-average confidence over the named factors.
// A factor's weight enters the denominator only when the factor contributed
// a non-zero score, so absent signals do not dilute present ones. The
// returned Factors map carries each included factor's weighted contribution.
func (c *Classifier) Classify(query string, matches []match.Candidate) Assessment {
	elements := IdentifyElements(query)

	type factor struct {
		name   string
		score  float64
		weight float64
	}
	var factors []factor

	if len(matches) > 0 {
		best := matches[0].Score
		for _, m := range matches[1:] {
			if m.Score > best {
				best = m.Score
			}
		}
		factors = append(factors, factor{"verse_match", best, verseMatchWeight})
	}

	entityCount := len(elements.Characters) + len(elements.Places)
	factors = append(factors, factor{"entity_mentions",
		capped(entityScorePerHit*float64(entityCount), entityScoreCap), entityWeight})

	factors = append(factors, factor{"lexical_cues",
		capped(lexicalScorePerHit*float64(len(elements.Keywords)), lexicalScoreCap), lexicalWeight})

	if len(elements.Structural) > 0 {
		factors = append(factors, factor{"structural_cues",
			capped(structScorePerHit*float64(len(elements.Structural)), structScoreCap), structuralWeight})
	}

	factors = append(factors, factor{"length_bonus",
		capped(float64(len([]rune(query)))/lengthDivisor, lengthScoreCap), lengthWeight})

	total := 0.0
	weightSum := 0.0
	contributions := make(map[string]float64)
	for _, f := range factors {
		if f.score == 0 {
			continue
		}
		total += f.score * f.weight
		weightSum += f.weight
		contributions[f.name] = f.score * f.weight
	}

	confidence := 0.0
	if weightSum > 0 {
		confidence = total / weightSum
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	if confidence < 0.0 {
		confidence = 0.0
	}

	return Assessment{
		IsKnownWork: confidence >= c.threshold,
		Confidence:  confidence,
		Factors:     contributions,
		Elements:    elements,
	}
}

func capped(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
