// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package match

import (
	"sort"

	"github.com/thamizhneri/ilakkiyam/services/analyzer/corpus"
)

// DefaultThreshold is the minimum composite similarity a corpus unit must
// reach to be reported as a match. Independent from the classifier's
// confidence threshold.
const DefaultThreshold = 0.6

// Granularity records whether the full verse text or a single line produced
// the winning score for a candidate.
type Granularity string

const (
	GranularityUnit Granularity = "unit"
	GranularityLine Granularity = "line"
)

// Candidate is one scored corpus unit. Candidates are ephemeral; they live
// only for the duration of a single query.
type Candidate struct {
	UnitID      int
	Score       float64
	Granularity Granularity
	Excerpt     string
	LineNumber  int
}

// Selector ranks corpus units against a query string.
type Selector struct {
	store     *corpus.Store
	threshold float64
}

// NewSelector builds a selector over the given store. A non-positive
// threshold falls back to DefaultThreshold.
func NewSelector(store *corpus.Store, threshold float64) *Selector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Selector{store: store, threshold: threshold}
}

// Threshold reports the configured similarity threshold.
func (s *Selector) Threshold() float64 {
	return s.threshold
}

// FindMatches scores every corpus unit against the query, at both verse and
// line granularity, keeping the better of the two per unit. Units below the
// threshold are dropped. The result is sorted best-first; ties keep corpus
// insertion order. An empty result is not an error.
func (s *Selector) FindMatches(query string) []Candidate {
	var out []Candidate
	for _, unit := range s.store.Units() {
		best := Candidate{
			UnitID:      unit.ID,
			Score:       Similarity(query, unit.Text),
			Granularity: GranularityUnit,
			Excerpt:     unit.Text,
		}
		for _, line := range unit.Lines {
			if score := Similarity(query, line.Text); score > best.Score {
				best = Candidate{
					UnitID:      unit.ID,
					Score:       score,
					Granularity: GranularityLine,
					Excerpt:     line.Text,
					LineNumber:  line.Number,
				}
			}
		}
		if best.Score >= s.threshold {
			out = append(out, best)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
