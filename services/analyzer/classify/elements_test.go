// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifyElements_Characters(t *testing.T) {
	e := IdentifyElements("இராமன் சீதையுடன் காட்டிற்கு சென்றான்")
	assert.Contains(t, e.Characters, "இராமன்")
	assert.Contains(t, e.Characters, "சீதை")
	assert.Empty(t, e.Places)
}

func TestIdentifyElements_PlacesAndConcepts(t *testing.T) {
	e := IdentifyElements("அயோத்தி நகரில் அறம் தழைத்தது")
	assert.Equal(t, []string{"அயோத்தி"}, e.Places)
	assert.Contains(t, e.Concepts, "அறம்")
}

func TestIdentifyElements_KeywordsCarryGlosses(t *testing.T) {
	e := IdentifyElements("கம்பன் பாடிய வனவாசம்")

	words := make([]string, len(e.Keywords))
	for i, kw := range e.Keywords {
		words[i] = kw.Word
		assert.NotEmpty(t, kw.Gloss, "keyword %s missing gloss", kw.Word)
	}
	assert.Equal(t, []string{"கம்பன்", "வனவாசம்"}, words)
}

func TestIdentifyElements_Structural(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "dialogue marker",
			text: "வருவேன் என்று சொன்னான்",
			want: []string{"உரையாடல்"},
		},
		{
			name: "simile marker",
			text: "மலர் போல மனம்",
			want: []string{"உவமை"},
		},
		{
			name: "verse form needs more than two lines",
			text: "முதல் வரி\nஇரண்டாம் வரி\nமூன்றாம் வரி",
			want: []string{"பாடல் வடிவம்"},
		},
		{
			name: "two lines is not verse form",
			text: "முதல் வரி\nஇரண்டாம் வரி",
			want: nil,
		},
		{
			name: "plain prose",
			text: "சாதாரண உரை",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := IdentifyElements(tt.text)
			assert.Equal(t, tt.want, e.Structural)
		})
	}
}

func TestIdentifyElements_Empty(t *testing.T) {
	e := IdentifyElements("")
	assert.Empty(t, e.Characters)
	assert.Empty(t, e.Places)
	assert.Empty(t, e.Concepts)
	assert.Empty(t, e.Keywords)
	assert.Empty(t, e.Structural)
}
