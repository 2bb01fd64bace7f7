// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 12410, cfg.Port)
	assert.InDelta(t, 0.6, cfg.MatchThreshold, 1e-9)
	assert.InDelta(t, 0.5, cfg.ConfidenceThreshold, 1e-9)
	assert.Equal(t, 100, cfg.CacheSize)
	assert.Equal(t, 60*time.Second, cfg.EnrichmentTimeout)
	assert.Equal(t, "gemini", cfg.LLMBackend)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ANALYZER_PORT", "9000")
	t.Setenv("ANALYZER_SIMILARITY_THRESHOLD", "0.75")
	t.Setenv("ANALYZER_CONFIDENCE_THRESHOLD", "0.4")
	t.Setenv("ANALYZER_CACHE_SIZE", "250")
	t.Setenv("ANALYZER_ENRICHMENT_TIMEOUT_SECONDS", "30")
	t.Setenv("LLM_BACKEND_TYPE", "ollama")
	t.Setenv("CORPUS_DB_PATH", "/data/corpus.db")

	cfg := FromEnv()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 9000, cfg.Port)
	assert.InDelta(t, 0.75, cfg.MatchThreshold, 1e-9)
	assert.InDelta(t, 0.4, cfg.ConfidenceThreshold, 1e-9)
	assert.Equal(t, 250, cfg.CacheSize)
	assert.Equal(t, 30*time.Second, cfg.EnrichmentTimeout)
	assert.Equal(t, "ollama", cfg.LLMBackend)
	assert.Equal(t, "/data/corpus.db", cfg.CorpusDBPath)
}

func TestFromEnvMalformedFallsBack(t *testing.T) {
	t.Setenv("ANALYZER_PORT", "not-a-number")
	t.Setenv("ANALYZER_SIMILARITY_THRESHOLD", "high")

	cfg := FromEnv()
	assert.Equal(t, 12410, cfg.Port)
	assert.InDelta(t, 0.6, cfg.MatchThreshold, 1e-9)
}

func TestValidateRejectsBadRanges(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero port", mutate: func(c *Config) { c.Port = 0 }},
		{name: "threshold above one", mutate: func(c *Config) { c.MatchThreshold = 1.5 }},
		{name: "negative cache", mutate: func(c *Config) { c.CacheSize = -1 }},
		{name: "unknown backend", mutate: func(c *Config) { c.LLMBackend = "watsonx" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
