// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config collects the analyzer service's environment configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the analyzer service configuration, read from the
// environment with defaults suitable for local development.
type Config struct {
	// Port is the HTTP listen port.
	// Env: ANALYZER_PORT. Default: 12410.
	Port int `validate:"gt=0,lte=65535"`

	// MatchThreshold is the minimum composite similarity for a corpus
	// candidate to count as a match.
	// Env: ANALYZER_SIMILARITY_THRESHOLD. Default: 0.6.
	MatchThreshold float64 `validate:"gt=0,lte=1"`

	// ConfidenceThreshold is the classifier cutoff for is_known_work.
	// Configured separately from MatchThreshold.
	// Env: ANALYZER_CONFIDENCE_THRESHOLD. Default: 0.5.
	ConfidenceThreshold float64 `validate:"gt=0,lte=1"`

	// CacheSize bounds the result cache entry count.
	// Env: ANALYZER_CACHE_SIZE. Default: 100.
	CacheSize int `validate:"gt=0"`

	// EnrichmentTimeout bounds the single collaborator round trip.
	// Env: ANALYZER_ENRICHMENT_TIMEOUT_SECONDS. Default: 60s.
	EnrichmentTimeout time.Duration `validate:"gt=0"`

	// LLMBackend selects the enrichment collaborator.
	// Env: LLM_BACKEND_TYPE. Default: gemini.
	LLMBackend string `validate:"omitempty,oneof=gemini openai ollama"`

	// CorpusDBPath is an optional SQLite corpus file. Empty means the
	// embedded sample corpus.
	// Env: CORPUS_DB_PATH.
	CorpusDBPath string
}

// Default returns a Config with the development defaults.
func Default() Config {
	return Config{
		Port:                12410,
		MatchThreshold:      0.6,
		ConfidenceThreshold: 0.5,
		CacheSize:           100,
		EnrichmentTimeout:   60 * time.Second,
		LLMBackend:          "gemini",
	}
}

// FromEnv builds a Config from the environment on top of the defaults.
// Malformed numeric values fall back to the default with a warning rather
// than failing startup.
func FromEnv() Config {
	cfg := Default()
	cfg.Port = envInt("ANALYZER_PORT", cfg.Port)
	cfg.MatchThreshold = envFloat("ANALYZER_SIMILARITY_THRESHOLD", cfg.MatchThreshold)
	cfg.ConfidenceThreshold = envFloat("ANALYZER_CONFIDENCE_THRESHOLD", cfg.ConfidenceThreshold)
	cfg.CacheSize = envInt("ANALYZER_CACHE_SIZE", cfg.CacheSize)
	if secs := envInt("ANALYZER_ENRICHMENT_TIMEOUT_SECONDS", 0); secs > 0 {
		cfg.EnrichmentTimeout = time.Duration(secs) * time.Second
	}
	if backend := os.Getenv("LLM_BACKEND_TYPE"); backend != "" {
		cfg.LLMBackend = backend
	}
	cfg.CorpusDBPath = os.Getenv("CORPUS_DB_PATH")
	return cfg
}

var configValidate = validator.New()

// Validate checks the configuration ranges.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid analyzer configuration: %w", err)
	}
	return nil
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Ignoring malformed integer env var", "key", key, "value", raw)
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("Ignoring malformed float env var", "key", key, "value", raw)
		return fallback
	}
	return v
}
