// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package analysis runs the enrichment pipeline: the rule-based heuristic
// pass that always succeeds, the optional collaborator call, and the
// write-through result cache in front of both.
package analysis

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/thamizhneri/ilakkiyam/services/analyzer/datatypes"
)

const (
	intensifierBoost = 0.3
	neutralFallback  = 0.5
)

// themeKeywords maps a theme label to the Tamil words that signal it.
var themeKeywords = []struct {
	theme string
	words []string
}{
	{"family", []string{"குடும்பம்", "தாய்", "தந்தை", "மகன்", "மகள்", "சகோதரன்", "சகோதரி"}},
	{"nature", []string{"மரம்", "நதி", "மலை", "கடல்", "வானம்", "மழை", "காற்று", "சூரியன்"}},
	{"spirituality", []string{"கடவுள்", "பிரார்த்தனை", "வணக்கம்", "பக்தி", "தர்மம்"}},
	{"society", []string{"மக்கள்", "நாடு", "கிராமம்", "நகரம்", "சமுதாயம்"}},
}

// meaningPatterns is checked in order; the first pattern contained in the
// text wins. The responses stay Tamil-only.
var meaningPatterns = []struct {
	pattern string
	meaning string
}{
	{"வணக்கம்", "வணக்கம் என்பது மரியாதையான வாழ்த்து"},
	{"நன்றி", "நன்றி என்பது நன்றி தெரிவிக்கும் சொல்"},
	{"மன்னிக்கவும்", "மன்னிப்பு கேட்கும் சொல்"},
	{"குடும்பம்", "குடும்ப உறவுகளைப் பற்றிய உரை"},
	{"அன்பு", "அன்பு மற்றும் பாசத்தை வெளிப்படுத்தும் உரை"},
	{"கல்வி", "கல்வி மற்றும் கற்றல் பற்றிய உரை"},
	{"நண்பர்", "நட்பு மற்றும் நண்பர்களைப் பற்றிய உரை"},
	{"இன்று", "நாள் மற்றும் நேரத்தைப் பற்றிய குறிப்பு"},
	{"நல்ல", "நேர்மறையான குணங்களை விவரிக்கும் உரை"},
}

var positiveIndicators = []string{
	"நல்ல", "அழகு", "மகிழ்ச்சி", "சந்தோஷம்", "வெற்றி", "பெருமை", "அன்பு", "நன்மை",
	"இனிமை", "பாராட்டு", "பாசம்", "ஆனந்தம்", "ஆரோக்கியம்", "ஆசீர்வாதம்",
	"happy", "love", "beautiful", "good", "joy", "success", "pride", "wonderful",
	"excellent", "amazing", "great", "brilliant",
}

var negativeIndicators = []string{
	"துன்பம்", "கோபம்", "வருத்தம்", "பயம்", "கஷ்டம்", "தோல்வி", "சோகம்", "வேதனை",
	"நோய்", "எரிச்சல்", "கவலை", "அழுகை", "குற்றம்", "பாவம்",
	"sad", "angry", "fear", "worry", "trouble", "pain", "sorrow", "grief",
	"terrible", "awful", "horrible", "bad", "worst", "hate",
}

var neutralIndicators = []string{
	"சாதாரண", "நடுநிலை", "சமம்", "இயல்பு",
	"normal", "okay", "fine", "regular", "usual", "typical", "average",
}

var intensifiers = []string{
	"மிகவும்", "மிக", "ரொம்ப",
	"very", "extremely", "really", "quite", "so", "too",
}

// Heuristic produces the always-available rule-based analysis. It is total:
// every input, including garbage, yields a filled section.
func Heuristic(text string) datatypes.HeuristicSection {
	words := splitWords(text)
	tamilWords := 0
	for _, w := range words {
		if containsTamil(w) {
			tamilWords++
		}
	}
	tamilChars := countTamilChars(text)

	section := datatypes.HeuristicSection{
		WordCount:      len(words),
		CharCount:      len([]rune(text)),
		TamilCharCount: tamilChars,
		LanguageMix:    languageMix(words, tamilWords),
		Themes:         extractThemes(text),
		Sentiment:      scoreSentiment(text),
	}
	if section.CharCount > 0 {
		section.SemanticDensity = float64(tamilWords) / float64(section.CharCount)
	}
	section.Meaning = basicMeaning(text, words, section.Themes)
	return section
}

func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(".,!?;:", r)
	})
}

func containsTamil(s string) bool {
	for _, r := range s {
		if r >= 0x0B80 && r <= 0x0BFF {
			return true
		}
	}
	return false
}

func countTamilChars(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x0B80 && r <= 0x0BFF {
			n++
		}
	}
	return n
}

func languageMix(words []string, tamilWords int) string {
	letters := 0
	for _, w := range words {
		for _, r := range w {
			if unicode.IsLetter(r) {
				letters++
				break
			}
		}
	}
	if letters == 0 {
		return "unknown"
	}
	ratio := float64(tamilWords) / float64(letters)
	switch {
	case ratio > 0.7:
		return "tamil"
	case ratio > 0.3:
		return "mixed"
	default:
		return "english"
	}
}

func extractThemes(text string) []string {
	themes := []string{}
	for _, tk := range themeKeywords {
		for _, w := range tk.words {
			if strings.Contains(text, w) {
				themes = append(themes, tk.theme)
				break
			}
		}
	}
	return themes
}

// basicMeaning returns a short Tamil explanation: a pattern-table hit when
// one applies, otherwise a length-bucketed description.
func basicMeaning(text string, words []string, themes []string) string {
	for _, mp := range meaningPatterns {
		if strings.Contains(text, mp.pattern) {
			return mp.meaning
		}
	}

	sentences := splitSentences(text)
	const prefix = "உரையின் தெளிவான விளக்கம்: "
	if len(words) <= 5 {
		return prefix + "குறுகிய தமிழ் சொற்றொடர்/வாக்கியம். உரை சுருக்கமாக அதன் கருத்தை வெளிப்படுத்துகிறது."
	}
	if len(words) <= 20 {
		detail := "இந்த உரை சுருக்கமாக ஒரு எண்ணத்தை விவரிக்கிறது."
		if len(themes) > 0 {
			detail += fmt.Sprintf(" இது முக்கியமாக %s தொடர்பான கருத்துகளைத் தொடுகிறது.", strings.Join(themes, ", "))
		}
		if len(sentences) >= 2 {
			detail += " வாக்கியங்களின் ஒழுங்கு தெளிவாக உள்ளது."
		}
		return prefix + detail
	}
	detail := "இந்த உரை விரிவாக ஒரு கருத்தை விளக்குகிறது."
	if len(themes) > 0 {
		detail += fmt.Sprintf(" பிரதான தீம்கள்: %s.", strings.Join(themes, ", "))
	}
	if len(sentences) >= 3 {
		detail += fmt.Sprintf(" மொத்தம் %d பகுதி/வாக்கியங்களாக தகவல் வழங்கப்பட்டுள்ளது.", len(sentences))
	}
	return prefix + detail
}

func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})
	sentences := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// scoreSentiment counts indicator hits per class and applies the intensifier
// multiplier to the winning class. Ties and zero hits fall back to neutral
// with confidence 0.5.
func scoreSentiment(text string) datatypes.SentimentInfo {
	lower := strings.ToLower(text)
	positive := countHits(lower, positiveIndicators)
	negative := countHits(lower, negativeIndicators)
	neutral := countHits(lower, neutralIndicators)
	boost := 1.0 + intensifierBoost*float64(countHits(lower, intensifiers))

	total := positive + negative + neutral
	if total == 0 {
		return datatypes.SentimentInfo{Label: "neutral", Score: neutralFallback}
	}

	var info datatypes.SentimentInfo
	switch {
	case positive > negative:
		info = datatypes.SentimentInfo{Label: "positive", Score: float64(positive) / float64(total) * boost}
	case negative > positive:
		info = datatypes.SentimentInfo{Label: "negative", Score: float64(negative) / float64(total) * boost}
	case neutral > 0:
		info = datatypes.SentimentInfo{Label: "neutral", Score: float64(neutral) / float64(total)}
	default:
		info = datatypes.SentimentInfo{Label: "neutral", Score: neutralFallback}
	}
	if info.Score > 1.0 {
		info.Score = 1.0
	}
	return info
}

func countHits(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lower, strings.ToLower(w)) {
			n++
		}
	}
	return n
}
