// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePersonalityLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want PersonalityLevel
	}{
		{"full", PersonalityFull},
		{"f", PersonalityFull},
		{"FULL", PersonalityFull},
		{"standard", PersonalityStandard},
		{"std", PersonalityStandard},
		{"minimal", PersonalityMinimal},
		{"min", PersonalityMinimal},
		{"machine", PersonalityMachine},
		{"quiet", PersonalityMachine},
		{"q", PersonalityMachine},
		{"nonsense", PersonalityStandard},
		{"", PersonalityStandard},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParsePersonalityLevel(tc.in))
		})
	}
}

func TestSetAndGetPersonality(t *testing.T) {
	old := GetPersonality()
	defer SetPersonality(old)

	SetPersonality(Personality{Level: PersonalityMinimal, Theme: "plain"})
	got := GetPersonality()
	assert.Equal(t, PersonalityMinimal, got.Level)
	assert.Equal(t, "plain", got.Theme)

	SetPersonalityLevel(PersonalityMachine)
	assert.Equal(t, PersonalityMachine, GetPersonality().Level)
	// Other fields survive a level-only update.
	assert.Equal(t, "plain", GetPersonality().Theme)
}

func TestInitPersonalityFromEnv(t *testing.T) {
	old := GetPersonality()
	defer SetPersonality(old)

	t.Setenv("ILAKKIYAM_PERSONALITY", "minimal")
	InitPersonality()
	assert.Equal(t, PersonalityMinimal, GetPersonality().Level)
}

func TestDefaultPersonality(t *testing.T) {
	p := DefaultPersonality()
	assert.Equal(t, PersonalityFull, p.Level)
	assert.True(t, p.ShowExamples)
}
