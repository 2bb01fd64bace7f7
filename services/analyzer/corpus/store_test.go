// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_AssignsIDsByInsertionOrder(t *testing.T) {
	s := NewStore([]Unit{
		{Text: "முதல் பாடல்"},
		{Text: "இரண்டாம் பாடல்"},
		{ID: 42, Text: "வெளிப்படையான எண்"},
	})

	units := s.Units()
	require.Len(t, units, 3)
	assert.Equal(t, 1, units[0].ID)
	assert.Equal(t, 2, units[1].ID)
	assert.Equal(t, 42, units[2].ID)

	got, ok := s.Unit(42)
	require.True(t, ok)
	assert.Equal(t, "வெளிப்படையான எண்", got.Text)

	_, ok = s.Unit(99)
	assert.False(t, ok)
}

func TestNewStore_DerivesLinesFromText(t *testing.T) {
	s := NewStore([]Unit{
		{Text: "முதல் வரி\n  இரண்டாம் வரி  \n\nமூன்றாம் வரி"},
	})

	unit, ok := s.Unit(1)
	require.True(t, ok)
	require.Len(t, unit.Lines, 3)
	assert.Equal(t, Line{Number: 1, Text: "முதல் வரி"}, unit.Lines[0])
	assert.Equal(t, Line{Number: 2, Text: "இரண்டாம் வரி"}, unit.Lines[1])
	assert.Equal(t, Line{Number: 3, Text: "மூன்றாம் வரி"}, unit.Lines[2])
}

func TestNewStore_KeepsExplicitLines(t *testing.T) {
	explicit := []Line{{Number: 1, Text: "வேறு வரி"}}
	s := NewStore([]Unit{{Text: "முதல்\nஇரண்டு", Lines: explicit}})

	unit, _ := s.Unit(1)
	assert.Equal(t, explicit, unit.Lines)
}

func TestLoad_JSONDocument(t *testing.T) {
	doc := `{"units": [
		{"group_name": "ஆத்திசூடி", "section_label": "நீதி", "sequence_number": 1,
		 "text": "அறம் செய விரும்பு", "fame_level": 5}
	]}`

	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())

	unit, ok := s.Unit(1)
	require.True(t, ok)
	assert.Equal(t, "ஆத்திசூடி", unit.GroupName)
	assert.Equal(t, 5, unit.FameLevel)
	assert.Len(t, unit.Lines, 1)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(strings.NewReader("not json"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader(`{"units": []}`))
	assert.ErrorContains(t, err, "no units")
}

func TestStats(t *testing.T) {
	s := NewStore([]Unit{
		{GroupName: "கம்பராமாயணம்", Text: "வரி ஒன்று\nவரி இரண்டு", FameLevel: 4},
		{GroupName: "கம்பராமாயணம்", Text: "ஒற்றை வரி", FameLevel: 2},
		{GroupName: "திருக்குறள்", Text: "குறள் வரி", FameLevel: 6},
	})

	stats := s.Stats()
	assert.Equal(t, 3, stats.Units)
	assert.Equal(t, 4, stats.Lines)
	assert.InDelta(t, 4.0, stats.AverageFame, 1e-9)
	assert.Equal(t, []string{"கம்பராமாயணம்", "திருக்குறள்"}, stats.Groups)
}

func TestStats_EmptyStore(t *testing.T) {
	stats := NewStore(nil).Stats()
	assert.Equal(t, 0, stats.Units)
	assert.Equal(t, 0.0, stats.AverageFame)
}

func TestLoadEmbedded(t *testing.T) {
	s, err := LoadEmbedded()
	require.NoError(t, err)
	assert.Greater(t, s.Len(), 0)

	// Every embedded unit must carry the text and metadata matching needs.
	for _, u := range s.Units() {
		assert.NotEmpty(t, u.Text, "unit %d has no text", u.ID)
		assert.NotEmpty(t, u.GroupName, "unit %d has no group", u.ID)
		assert.NotEmpty(t, u.Lines, "unit %d has no lines", u.ID)
	}
}
