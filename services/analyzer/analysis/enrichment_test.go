// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildEnrichmentPrompt(t *testing.T) {
	prompt := BuildEnrichmentPrompt("அறம் செய விரும்பு")
	assert.Contains(t, prompt, `உரை: "அறம் செய விரும்பு"`)
	assert.Contains(t, prompt, "tamil_meaning")
	assert.Contains(t, prompt, "source_book")
}

func TestParseEnrichmentStructured(t *testing.T) {
	raw := `{
		"tamil_meaning": "அறத்தைச் செய்ய விரும்பு",
		"source_book": "கம்பராமாயணம்",
		"chapter_section": "அயோத்தியா காண்டம்",
		"verse_number": "45",
		"theme": "அறம்",
		"sentiment": "positive"
	}`
	section := ParseEnrichment(raw, "gemini")

	assert.True(t, section.Enhanced)
	assert.Equal(t, "அறத்தைச் செய்ய விரும்பு", section.Meaning)
	assert.Equal(t, "கம்பராமாயணம்", section.SourceName)
	assert.Equal(t, "அயோத்தியா காண்டம்", section.SectionLabel)
	assert.Equal(t, "45", section.SequenceNumber)
	assert.Equal(t, "positive", section.Sentiment)
	assert.Equal(t, "gemini", section.Backend)
}

func TestParseEnrichmentCodeFences(t *testing.T) {
	raw := "```json\n{\"tamil_meaning\": \"பொருள்\", \"sentiment\": \"neutral\"}\n```"
	section := ParseEnrichment(raw, "gemini")

	assert.True(t, section.Enhanced)
	assert.Equal(t, "பொருள்", section.Meaning)
}

func TestParseEnrichmentSurroundingProse(t *testing.T) {
	raw := "இதோ பதில்:\n{\"tamil_meaning\": \"விளக்கம்\"}\nநன்றி."
	section := ParseEnrichment(raw, "ollama")

	assert.True(t, section.Enhanced)
	assert.Equal(t, "விளக்கம்", section.Meaning)
}

func TestParseEnrichmentRawFallback(t *testing.T) {
	raw := "இது JSON அல்ல, வெறும் உரை விளக்கம் மட்டும்."
	section := ParseEnrichment(raw, "gemini")

	assert.False(t, section.Enhanced)
	assert.Equal(t, raw, section.Meaning)
	assert.Empty(t, section.SourceName)
}

func TestParseEnrichmentNotApplicableMarkers(t *testing.T) {
	raw := `{"tamil_meaning": "நேரடி பொருள்", "source_book": "சாதாரண உரை", "verse_number": "பொருந்தாது"}`
	section := ParseEnrichment(raw, "gemini")

	assert.True(t, section.Enhanced)
	assert.Empty(t, section.SourceName)
	assert.Empty(t, section.SequenceNumber)
}

func TestExtractJSONObject(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare object", in: `{"a": 1}`, want: `{"a": 1}`},
		{name: "nested braces", in: `x {"a": {"b": 2}} y`, want: `{"a": {"b": 2}}`},
		{name: "brace inside string", in: `{"a": "}"}`, want: `{"a": "}"}`},
		{name: "no object", in: "plain text", want: ""},
		{name: "unterminated", in: `{"a": 1`, want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSONObject(tc.in))
		})
	}
}
