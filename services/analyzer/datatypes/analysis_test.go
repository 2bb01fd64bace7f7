// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRequestValidate(t *testing.T) {
	testCases := []struct {
		name      string
		req       AnalyzeRequest
		expectErr bool
	}{
		{
			name: "valid request",
			req:  AnalyzeRequest{Text: "அறம் செய விரும்பு"},
		},
		{
			name:      "empty text",
			req:       AnalyzeRequest{Text: ""},
			expectErr: true,
		},
		{
			name:      "text over max length",
			req:       AnalyzeRequest{Text: strings.Repeat("a", MaxQueryChars+1)},
			expectErr: true,
		},
		{
			name: "text at max length",
			req:  AnalyzeRequest{Text: strings.Repeat("a", MaxQueryChars)},
		},
		{
			name: "valid uuid request id",
			req: AnalyzeRequest{
				RequestID: "550e8400-e29b-41d4-a716-446655440000",
				Text:      "வணக்கம்",
			},
		},
		{
			name:      "malformed request id",
			req:       AnalyzeRequest{RequestID: "not-a-uuid", Text: "வணக்கம்"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalyzeRequestEnsureDefaults(t *testing.T) {
	req := AnalyzeRequest{Text: "அறம் செய விரும்பு"}
	req.EnsureDefaults()

	assert.NotEmpty(t, req.RequestID)
	assert.Greater(t, req.Timestamp, int64(0))
	require.NoError(t, req.Validate())

	// Existing identifiers are kept.
	fixed := AnalyzeRequest{
		RequestID: "550e8400-e29b-41d4-a716-446655440000",
		Timestamp: 42,
		Text:      "வணக்கம்",
	}
	fixed.EnsureDefaults()
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", fixed.RequestID)
	assert.Equal(t, int64(42), fixed.Timestamp)
}
