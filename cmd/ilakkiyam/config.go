// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings loaded from config.yaml.
//
// The file is optional. When it is missing the CLI talks to an analyzer
// service on localhost with the defaults below.
type Config struct {
	// ServerHost is the analyzer service host.
	ServerHost string `yaml:"server_host"`

	// ServerPort is the analyzer service port.
	ServerPort int `yaml:"server_port"`

	// TimeoutSeconds bounds each HTTP request to the analyzer. Verse
	// enrichment waits on an LLM backend, so this defaults well above
	// a normal API timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Personality selects output verbosity: machine, minimal, standard,
	// or full. Overridden by the ILAKKIYAM_PERSONALITY env var.
	Personality string `yaml:"personality"`

	// LogDir enables file logging when set (supports ~ expansion).
	LogDir string `yaml:"log_dir"`

	// LogLevel sets the minimum log level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// defaultConfig returns the settings used when no config file exists.
func defaultConfig() Config {
	return Config{
		ServerHost:     "localhost",
		ServerPort:     12410,
		TimeoutSeconds: 90,
		LogLevel:       "info",
	}
}

// defaultConfigPath returns ~/.ilakkiyam/config.yaml, or "" when the
// home directory cannot be determined.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ilakkiyam", "config.yaml")
}

// loadConfig reads a YAML config file over the defaults. A missing
// file is not an error; a malformed one is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.ServerHost == "" {
		cfg.ServerHost = "localhost"
	}
	if cfg.ServerPort <= 0 {
		cfg.ServerPort = 12410
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 90
	}
	return cfg, nil
}

// baseURL returns the analyzer service root, e.g. "http://localhost:12410".
func (c Config) baseURL() string {
	return fmt.Sprintf("http://%s:%d", c.ServerHost, c.ServerPort)
}
