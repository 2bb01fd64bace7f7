// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/thamizhneri/ilakkiyam/services/analyzer/corpus"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/datatypes"
)

// configForServer points a Config at an httptest server.
func configForServer(t *testing.T, ts *httptest.Server) Config {
	t.Helper()
	u, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatal(err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatal(err)
	}
	cfg := defaultConfig()
	cfg.ServerHost = u.Hostname()
	cfg.ServerPort = port
	return cfg
}

func TestSendAnalyzeRequest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/analyze" {
			t.Errorf("path = %q, want /v1/analyze", r.URL.Path)
		}
		var req datatypes.AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Text != "அறம் செய விரும்பு" {
			t.Errorf("text = %q", req.Text)
		}
		json.NewEncoder(w).Encode(datatypes.AnalysisResult{
			Input:       req.Text,
			IsKnownWork: true,
			Confidence:  0.82,
		})
	}))
	defer ts.Close()

	result, err := sendAnalyzeRequest(configForServer(t, ts), "அறம் செய விரும்பு")
	if err != nil {
		t.Fatalf("sendAnalyzeRequest() error = %v", err)
	}
	if !result.IsKnownWork {
		t.Error("IsKnownWork = false, want true")
	}
	if result.Confidence != 0.82 {
		t.Errorf("Confidence = %v, want 0.82", result.Confidence)
	}
}

func TestSendAnalyzeRequest_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"input text is empty"}`, http.StatusBadRequest)
	}))
	defer ts.Close()

	_, err := sendAnalyzeRequest(configForServer(t, ts), "   ")
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if !strings.Contains(err.Error(), "status 400") {
		t.Errorf("error = %v, want status 400 mention", err)
	}
}

func TestSendAnalyzeRequest_Unreachable(t *testing.T) {
	cfg := defaultConfig()
	cfg.ServerHost = "127.0.0.1"
	cfg.ServerPort = 1 // nothing listens here
	cfg.TimeoutSeconds = 1

	if _, err := sendAnalyzeRequest(cfg, "text"); err == nil {
		t.Fatal("expected error for unreachable analyzer")
	}
}

func TestFetchCorpusStats(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/corpus/stats" {
			t.Errorf("path = %q, want /v1/corpus/stats", r.URL.Path)
		}
		json.NewEncoder(w).Encode(corpus.Stats{
			Units:       5,
			Lines:       12,
			AverageFame: 0.8,
			Groups:      []string{"கம்பராமாயணம்"},
		})
	}))
	defer ts.Close()

	stats, err := fetchCorpusStats(configForServer(t, ts))
	if err != nil {
		t.Fatalf("fetchCorpusStats() error = %v", err)
	}
	if stats.Units != 5 || stats.Lines != 12 {
		t.Errorf("stats = %+v", stats)
	}
	if len(stats.Groups) != 1 {
		t.Errorf("Groups = %v", stats.Groups)
	}
}

func TestFetchHealth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %q, want /health", r.URL.Path)
		}
		json.NewEncoder(w).Encode(healthResponse{
			Status:              "ok",
			CorpusUnits:         5,
			EnrichmentAvailable: false,
		})
	}))
	defer ts.Close()

	health, err := fetchHealth(configForServer(t, ts))
	if err != nil {
		t.Fatalf("fetchHealth() error = %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("Status = %q, want ok", health.Status)
	}
	if health.EnrichmentAvailable {
		t.Error("EnrichmentAvailable = true, want false")
	}
}
