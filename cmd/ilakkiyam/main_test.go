// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thamizhneri/ilakkiyam/pkg/logging"
)

func TestCloseLoggerFlushesLogFile(t *testing.T) {
	dir := t.TempDir()
	prev := logger
	defer func() { logger = prev }()

	logger = logging.New(logging.Config{
		Level:   logging.LevelDebug,
		LogDir:  dir,
		Service: "cli",
		Quiet:   true,
	})
	logger.Info("final write before exit", "request_id", "r-9")

	closeLogger()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading log dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one log file, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "final write before exit") {
		t.Errorf("log file missing the last write: %q", string(data))
	}
}

func TestCloseLoggerNilSafe(t *testing.T) {
	prev := logger
	defer func() { logger = prev }()

	logger = nil
	closeLogger()
}
