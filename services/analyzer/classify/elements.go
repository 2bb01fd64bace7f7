// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package classify decides whether input text belongs to the known literary
// corpus, combining the best match score with structural and lexical signals
// from the text itself.
package classify

import "strings"

// Keyword is a recognized literary keyword with its gloss.
type Keyword struct {
	Word  string `json:"word"`
	Gloss string `json:"gloss"`
}

// Elements are the cultural signals identified in a piece of text.
type Elements struct {
	Characters []string  `json:"characters"`
	Places     []string  `json:"places"`
	Concepts   []string  `json:"concepts"`
	Keywords   []Keyword `json:"keywords"`
	Structural []string  `json:"structural"`
}

var characterNames = []string{
	"இராமன்", "சீதை", "லட்சுமணன்", "அனுமன்", "ராவணன்",
	"தசரதன்", "கைகேயி", "பரதன்", "சத்துருக்னன்",
}

var placeNames = []string{
	"அயோத்தி", "இலங்கை", "மிதிலை", "கிஷ்கிந்தை", "பஞ்சவடி",
}

var conceptWords = []string{
	"அறம்", "தர்மம்", "பக்தி", "வீரம்", "காதல்", "கடமை", "நீதி",
}

// keywordGlosses maps famous literary keywords to short Tamil glosses.
// Ordered so element output is deterministic.
var keywordGlosses = []Keyword{
	{"அறம்", "தர்மம், நீதி, நல்லொழுக்கம்"},
	{"இராமன்", "அயோத்தி இளவரசன், மரியாதை புருஷோத்தமன்"},
	{"சீதை", "இராமனின் மனைவி, பொறுமையின் அடையாளம்"},
	{"அனுமன்", "இராமனின் பக்தன், வானர வீரன்"},
	{"ராவணன்", "இலங்கை அரசன், வல்லமை மிக்கவன்"},
	{"கம்பன்", "கம்பராமாயணத்தின் ஆசிரியர், மகாகவி"},
	{"வனவாசம்", "காட்டில் வாழ்வு, துறவு நிலை"},
	{"அயோத்தி", "இராமனின் தலைநகரம், நீதியின் இருப்பிடம்"},
	{"இலங்கை", "ராவணனின் நாடு, செல்வச் செழிப்பின் இடம்"},
}

var dialogueMarkers = []string{"என்று", "எனக்"}
var simileMarkers = []string{"போல", "மாதிரி", "சமம்"}

// IdentifyElements scans text for character, place, concept and keyword
// mentions plus structural cues (dialogue, simile, verse form).
func IdentifyElements(text string) Elements {
	var e Elements
	for _, name := range characterNames {
		if strings.Contains(text, name) {
			e.Characters = append(e.Characters, name)
		}
	}
	for _, name := range placeNames {
		if strings.Contains(text, name) {
			e.Places = append(e.Places, name)
		}
	}
	for _, word := range conceptWords {
		if strings.Contains(text, word) {
			e.Concepts = append(e.Concepts, word)
		}
	}
	for _, kw := range keywordGlosses {
		if strings.Contains(text, kw.Word) {
			e.Keywords = append(e.Keywords, kw)
		}
	}
	if containsAny(text, dialogueMarkers) {
		e.Structural = append(e.Structural, "உரையாடல்")
	}
	if containsAny(text, simileMarkers) {
		e.Structural = append(e.Structural, "உவமை")
	}
	if strings.Count(text, "\n") > 1 {
		e.Structural = append(e.Structural, "பாடல் வடிவம்")
	}
	return e
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
