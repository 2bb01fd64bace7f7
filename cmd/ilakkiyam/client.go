// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/thamizhneri/ilakkiyam/services/analyzer/corpus"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/datatypes"
)

// healthResponse mirrors the analyzer's GET /health payload.
type healthResponse struct {
	Status              string `json:"status"`
	CorpusUnits         int    `json:"corpus_units"`
	EnrichmentAvailable bool   `json:"enrichment_available"`
}

func newHTTPClient(cfg Config) *http.Client {
	return &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}
}

// sendAnalyzeRequest posts text to the analyzer's /v1/analyze endpoint
// and decodes the full analysis result.
func sendAnalyzeRequest(cfg Config, text string) (datatypes.AnalysisResult, error) {
	var result datatypes.AnalysisResult

	postBody, err := json.Marshal(datatypes.AnalyzeRequest{Text: text})
	if err != nil {
		return result, fmt.Errorf("failed to create request body: %w", err)
	}

	resp, err := newHTTPClient(cfg).Post(
		cfg.baseURL()+"/v1/analyze", "application/json", bytes.NewBuffer(postBody))
	if err != nil {
		return result, fmt.Errorf("failed to reach analyzer at %s: %w", cfg.baseURL(), err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("analyzer returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return result, fmt.Errorf("failed to parse analyzer response: %w", err)
	}
	return result, nil
}

// fetchCorpusStats retrieves summary statistics for the loaded corpus.
func fetchCorpusStats(cfg Config) (corpus.Stats, error) {
	var stats corpus.Stats
	if err := getJSON(cfg, "/v1/corpus/stats", &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

// fetchHealth retrieves the analyzer's health report.
func fetchHealth(cfg Config) (healthResponse, error) {
	var health healthResponse
	if err := getJSON(cfg, "/health", &health); err != nil {
		return health, err
	}
	return health, nil
}

func getJSON(cfg Config, path string, out any) error {
	resp, err := newHTTPClient(cfg).Get(cfg.baseURL() + path)
	if err != nil {
		return fmt.Errorf("failed to reach analyzer at %s: %w", cfg.baseURL(), err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("analyzer returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to parse analyzer response: %w", err)
	}
	return nil
}
