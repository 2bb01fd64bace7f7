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

func TestHeuristicCounts(t *testing.T) {
	section := Heuristic("நான் மிகவும் மகிழ்ச்சியாக இருக்கிறேன்")
	assert.Equal(t, 4, section.WordCount)
	assert.Equal(t, "tamil", section.LanguageMix)
	assert.Greater(t, section.TamilCharCount, 0)
	assert.Greater(t, section.SemanticDensity, 0.0)
	assert.NotEmpty(t, section.Meaning)
}

func TestHeuristicLanguageMix(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{name: "pure tamil", text: "கல்வி என்பது வாழ்க்கையின் ஒளி", want: "tamil"},
		{name: "pure english", text: "the quick brown fox jumps over everything", want: "english"},
		{name: "mixed", text: "hello வணக்கம்", want: "mixed"},
		{name: "no letters", text: "123 456 !!!", want: "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Heuristic(tc.text).LanguageMix)
		})
	}
}

func TestHeuristicThemes(t *testing.T) {
	section := Heuristic("என் குடும்பம் கடவுள் அருளால் வாழ்கிறது")
	assert.Contains(t, section.Themes, "family")
	assert.Contains(t, section.Themes, "spirituality")
	assert.NotContains(t, section.Themes, "nature")
}

func TestHeuristicMeaningPatternTable(t *testing.T) {
	// The pattern table wins over length buckets and is checked in order.
	section := Heuristic("வணக்கம் நண்பர்களே")
	assert.Equal(t, "வணக்கம் என்பது மரியாதையான வாழ்த்து", section.Meaning)
}

func TestHeuristicMeaningLengthBuckets(t *testing.T) {
	short := Heuristic("ஒரு சிறு சொல்")
	assert.Contains(t, short.Meaning, "குறுகிய")

	long := Heuristic("பல சொற்கள் கொண்ட உரை இங்கே உள்ளது. " +
		"பல வாக்கியங்கள் பல கருத்துகளை விவரிக்கின்றன. " +
		"மேலும் சில சொற்கள் தொடர்கின்றன இங்கே மீண்டும் மீண்டும் பல முறை வரும் வரை.")
	assert.Contains(t, long.Meaning, "விரிவாக")
}

func TestScoreSentiment(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		wantLabel string
	}{
		{name: "positive", text: "நான் மகிழ்ச்சியாக இருக்கிறேன்", wantLabel: "positive"},
		{name: "negative", text: "இன்று மிகவும் சோகம் நிறைந்த நாள்", wantLabel: "negative"},
		{name: "no indicators", text: "மரம் நதி மலை", wantLabel: "neutral"},
		{name: "tie goes neutral", text: "மகிழ்ச்சி மற்றும் சோகம்", wantLabel: "neutral"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := scoreSentiment(tc.text)
			assert.Equal(t, tc.wantLabel, got.Label)
			assert.GreaterOrEqual(t, got.Score, 0.0)
			assert.LessOrEqual(t, got.Score, 1.0)
		})
	}
}

func TestScoreSentimentIntensifier(t *testing.T) {
	plain := scoreSentiment("மகிழ்ச்சி")
	boosted := scoreSentiment("மிகவும் மகிழ்ச்சி")
	assert.Equal(t, "positive", plain.Label)
	assert.Equal(t, "positive", boosted.Label)
	assert.GreaterOrEqual(t, boosted.Score, plain.Score)
	assert.LessOrEqual(t, boosted.Score, 1.0)
}

func TestScoreSentimentZeroHitsDefault(t *testing.T) {
	got := scoreSentiment("xyz")
	assert.Equal(t, "neutral", got.Label)
	assert.InDelta(t, 0.5, got.Score, 1e-9)
}
