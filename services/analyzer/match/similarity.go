// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package match scores input text against the corpus.
//
// The similarity metric is a fixed weighted blend of three sub-scores:
// a Ratcliff/Obershelp sequence-matching ratio (0.5), token-set Jaccard
// similarity (0.3), and character-set Jaccard similarity (0.2). Downstream
// thresholds are tuned against exactly this weighting; do not change the
// constants without re-tuning them.
package match

import (
	"strings"
	"unicode"
)

const (
	seqWeight   = 0.5
	tokenWeight = 0.3
	charWeight  = 0.2
)

// Normalize prepares text for matching: whitespace runs collapse to single
// spaces, everything outside the Tamil block, ASCII letters and spaces is
// dropped, and ASCII is lowercased.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case isTamil(r) || (r >= 'a' && r <= 'z'):
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Similarity returns a composite similarity score in [0,1] for two strings.
// Both inputs are normalized first; an input that is empty after
// normalization scores 0.0. All three sub-metrics are symmetric, so the
// composite is symmetric as well.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0.0
	}
	seq := sequenceRatio([]rune(na), []rune(nb))
	token := jaccardTokens(na, nb)
	char := jaccardChars(na, nb)
	return seq*seqWeight + token*tokenWeight + char*charWeight
}

// sequenceRatio is the Ratcliff/Obershelp matching ratio: twice the total
// length of recursively found longest common substrings, divided by the
// combined length of both inputs.
func sequenceRatio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 0.0
	}
	return 2.0 * float64(matchingChars(a, b)) / float64(total)
}

func matchingChars(a, b []rune) int {
	ai, bi, n := longestCommonSubstring(a, b)
	if n == 0 {
		return 0
	}
	return n + matchingChars(a[:ai], b[:bi]) + matchingChars(a[ai+n:], b[bi+n:])
}

func longestCommonSubstring(a, b []rune) (ai, bi, n int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// Rolling-row DP; row[j] is the length of the common suffix ending at
	// a[i-1], b[j-1].
	row := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0 // row[j-1] from the previous iteration of i
		for j := 1; j <= len(b); j++ {
			cur := row[j]
			if a[i-1] == b[j-1] {
				row[j] = prev + 1
				if row[j] > n {
					n = row[j]
					ai = i - n
					bi = j - n
				}
			} else {
				row[j] = 0
			}
			prev = cur
		}
	}
	return ai, bi, n
}

func jaccardTokens(a, b string) float64 {
	setA := make(map[string]struct{})
	for _, tok := range strings.Fields(a) {
		setA[tok] = struct{}{}
	}
	setB := make(map[string]struct{})
	for _, tok := range strings.Fields(b) {
		setB[tok] = struct{}{}
	}
	return jaccard(len(setA), len(setB), func() int {
		inter := 0
		for tok := range setA {
			if _, ok := setB[tok]; ok {
				inter++
			}
		}
		return inter
	})
}

func jaccardChars(a, b string) float64 {
	setA := make(map[rune]struct{})
	for _, r := range a {
		setA[r] = struct{}{}
	}
	setB := make(map[rune]struct{})
	for _, r := range b {
		setB[r] = struct{}{}
	}
	return jaccard(len(setA), len(setB), func() int {
		inter := 0
		for r := range setA {
			if _, ok := setB[r]; ok {
				inter++
			}
		}
		return inter
	})
}

func jaccard(lenA, lenB int, intersect func() int) float64 {
	if lenA == 0 || lenB == 0 {
		return 0.0
	}
	inter := intersect()
	union := lenA + lenB - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

func isTamil(r rune) bool {
	return r >= 0x0B80 && r <= 0x0BFF
}
