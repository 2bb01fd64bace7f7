// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thamizhneri/ilakkiyam/services/analyzer/datatypes"
)

// enrichmentPayload is the JSON object the collaborator is instructed to
// return. Every field is optional; a decode with zero extracted fields is
// treated as unstructured.
type enrichmentPayload struct {
	TamilMeaning        string `json:"tamil_meaning"`
	SourceBook          string `json:"source_book"`
	ChapterSection      string `json:"chapter_section"`
	VerseNumber         string `json:"verse_number"`
	CommentaryReference string `json:"commentary_reference"`
	LineByLine          string `json:"line_by_line"`
	Explanation         string `json:"explanation"`
	Theme               string `json:"theme"`
	Sentiment           string `json:"sentiment"`
}

// BuildEnrichmentPrompt renders the Tamil literary-meaning prompt for one
// input text. The collaborator is asked for traditional-commentary meaning
// in a strict JSON shape.
func BuildEnrichmentPrompt(text string) string {
	return fmt.Sprintf(`நீங்கள் ஒரு தமிழ் இலக்கிய வல்லுநர் மற்றும் பொருள் விளக்க நிபுணர். கீழே கொடுக்கப்பட்ட தமிழ் உரையின் துல்லியமான, அசல் நூல் பொருளை விளக்கவும்.

உரை: "%s"

வழிகாட்டுதல்கள்:
1. இது இலக்கிய நூலிலிருந்து வந்ததா என துல்லியமாக கண்டறியவும் (திருக்குறள், கம்பராமாயணம், புறநானூறு, சங்க இலக்கியம், திருவாசகம், நாலடியார், சிலப்பதிகாரம் போன்றவை)
2. நூலிலிருந்து வந்ததென்றால், அந்த நூலின் அசல் உரையாசிரியர்கள் கூறிய பொருளை மட்டுமே குறிப்பிடவும் (எ.கா: பரிமேலழகர், மணக்குடவர், வீரமாமுனிவர் போன்றோரின் உரை)
3. உங்கள் சொந்த கருத்துகளை சேர்க்க வேண்டாம் - அசல் நூல் பொருளை மட்டும் தரவும்
4. சாதாரண உரை என்றால், அதன் நேரடி பொருளை மட்டும் தெளிவாக விளக்கவும்

கட்டாய JSON வடிவம்:
{
  "tamil_meaning": "பொருள்: [அசல் நூல் உரையாசிரியர்கள் கூறிய துல்லியமான பொருள் 2-4 வாக்கியங்களில்] சுருக்கமாக: [ஒரு வரியில் சாரம்]",
  "source_book": "நூலின் பெயர் அல்லது 'சாதாரண உரை'",
  "chapter_section": "அதிகாரம்/காண்டம்/படலம் அல்லது 'பொருந்தாது'",
  "verse_number": "பாடல் எண் அல்லது 'பொருந்தாது'",
  "commentary_reference": "உரையாசிரியர் பெயர் அல்லது 'பொருந்தாது'",
  "line_by_line": "அசல் சொல்லுரை அடிப்படையில் ஒவ்வொரு வரியின் பொருள்",
  "explanation": "அசல் நூல் உரையில் கூறப்பட்ட சூழல், பின்னணி, முக்கியத்துவம்",
  "theme": "அசல் நூல் குறிப்பிடும் முக்கிய கருத்து",
  "sentiment": "positive/negative/neutral/devotional/philosophical"
}

JSON மட்டும் திருப்பவும், வேறு எதுவும் இல்லை.`, text)
}

// ParseEnrichment turns a raw collaborator reply into an EnrichmentSection.
// Code fences are stripped and the first JSON object located before
// decoding. An unparsable or field-less reply degrades to the raw text as
// the meaning with Enhanced=false.
func ParseEnrichment(raw, backend string) datatypes.EnrichmentSection {
	cleaned := stripCodeFences(raw)
	body := extractJSONObject(cleaned)

	var payload enrichmentPayload
	if body == "" || json.Unmarshal([]byte(body), &payload) != nil {
		return datatypes.EnrichmentSection{
			Meaning: strings.TrimSpace(raw),
			Backend: backend,
		}
	}

	section := datatypes.EnrichmentSection{
		Meaning:        strings.TrimSpace(payload.TamilMeaning),
		SourceName:     normalizePayloadField(payload.SourceBook),
		SectionLabel:   normalizePayloadField(payload.ChapterSection),
		SequenceNumber: normalizePayloadField(payload.VerseNumber),
		LineByLine:     strings.TrimSpace(payload.LineByLine),
		Theme:          strings.TrimSpace(payload.Theme),
		Sentiment:      strings.TrimSpace(payload.Sentiment),
		Backend:        backend,
	}
	section.Enhanced = section.Meaning != "" || section.SourceName != "" ||
		section.LineByLine != "" || section.Theme != "" || section.Sentiment != ""
	if !section.Enhanced {
		section.Meaning = strings.TrimSpace(raw)
	}
	return section
}

// normalizePayloadField drops the collaborator's "not applicable" marker.
func normalizePayloadField(s string) string {
	s = strings.TrimSpace(s)
	if s == "பொருந்தாது" || s == "சாதாரண உரை" {
		return ""
	}
	return s
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// extractJSONObject returns the first balanced {...} span, or "" when none
// exists. Braces inside JSON strings are skipped.
func extractJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
