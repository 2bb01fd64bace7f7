// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package corpus holds the canonical Tamil literary passages the analyzer
// matches input text against.
//
// The corpus is loaded once at startup (from the embedded sample corpus or
// from a SQLite file) and is read-only for the lifetime of the process.
// Units keep their insertion order; downstream ranking relies on that order
// for stable tie-breaking.
package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Line is one line of a verse, used for line-granularity matching.
type Line struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Unit is one canonical passage with its cultural metadata.
//
// Units are immutable after load. GroupName names the work (e.g.
// கம்பராமாயணம்), SectionLabel the kandam/chapter, SequenceNumber the verse
// number within the section.
type Unit struct {
	ID              int      `json:"id"`
	GroupName       string   `json:"group_name"`
	SectionLabel    string   `json:"section_label"`
	SequenceNumber  int      `json:"sequence_number"`
	Text            string   `json:"text"`
	Transliteration string   `json:"transliteration,omitempty"`
	Meaning         string   `json:"meaning,omitempty"`
	Commentary      string   `json:"commentary,omitempty"`
	MoralTeaching   string   `json:"moral_teaching,omitempty"`
	FameLevel       int      `json:"fame_level,omitempty"`
	Characters      []string `json:"characters,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Lines           []Line   `json:"lines,omitempty"`
}

// Store is the read-only corpus. Safe for concurrent readers.
type Store struct {
	units []Unit
	byID  map[int]int // unit ID -> index into units
}

// Stats summarizes the loaded corpus for /v1/corpus/stats and health output.
type Stats struct {
	Units       int      `json:"units"`
	Lines       int      `json:"lines"`
	AverageFame float64  `json:"average_fame"`
	Groups      []string `json:"groups"`
}

// NewStore builds a store from the given units. Units without IDs are
// numbered by insertion order starting at 1; units without an explicit line
// breakdown get one derived by splitting the verse text on newlines, the way
// the source corpus stores them.
func NewStore(units []Unit) *Store {
	s := &Store{
		units: make([]Unit, 0, len(units)),
		byID:  make(map[int]int, len(units)),
	}
	for i, u := range units {
		if u.ID == 0 {
			u.ID = i + 1
		}
		if len(u.Lines) == 0 {
			u.Lines = splitLines(u.Text)
		}
		s.byID[u.ID] = len(s.units)
		s.units = append(s.units, u)
	}
	return s
}

// Load reads a JSON corpus document ({"units": [...]}) from r.
func Load(r io.Reader) (*Store, error) {
	var doc struct {
		Units []Unit `json:"units"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode corpus document: %w", err)
	}
	if len(doc.Units) == 0 {
		return nil, fmt.Errorf("corpus document contains no units")
	}
	return NewStore(doc.Units), nil
}

// Units returns every unit in insertion order. Callers must not mutate the
// returned slice or its elements.
func (s *Store) Units() []Unit {
	return s.units
}

// Unit looks a passage up by ID.
func (s *Store) Unit(id int) (Unit, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Unit{}, false
	}
	return s.units[idx], true
}

// Len reports the number of loaded units.
func (s *Store) Len() int {
	return len(s.units)
}

// Stats computes corpus summary statistics.
func (s *Store) Stats() Stats {
	st := Stats{Units: len(s.units)}
	seen := make(map[string]bool)
	fameTotal := 0
	for _, u := range s.units {
		st.Lines += len(u.Lines)
		fameTotal += u.FameLevel
		if !seen[u.GroupName] {
			seen[u.GroupName] = true
			st.Groups = append(st.Groups, u.GroupName)
		}
	}
	if len(s.units) > 0 {
		st.AverageFame = float64(fameTotal) / float64(len(s.units))
	}
	return st
}

func splitLines(text string) []Line {
	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		lines = append(lines, Line{Number: len(lines) + 1, Text: raw})
	}
	return lines
}
