// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/thamizhneri/ilakkiyam/pkg/logging"
	"github.com/thamizhneri/ilakkiyam/pkg/ux"
)

var (
	cliConfig  Config
	configPath string
	logger     *logging.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		closeLogger()
		log.Fatalf("Error executing command: %v", err)
	}
	closeLogger()
}

// closeLogger flushes and closes the log file, if one was configured.
// Every exit path must pass through here so the last write is not lost.
func closeLogger() {
	if logger != nil {
		logger.Close()
	}
}

// exitErr reports the error and terminates, closing the logger first.
func exitErr(err error) {
	ux.Error(err.Error())
	closeLogger()
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config.yaml (default ~/.ilakkiyam/config.yaml)")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		path := configPath
		if path == "" {
			path = defaultConfigPath()
		}

		var err error
		cliConfig, err = loadConfig(path)
		if err != nil {
			log.Fatalf("Error loading configuration: %v", err)
		}

		logger = logging.New(logging.Config{
			Level:   logging.ParseLevel(cliConfig.LogLevel),
			LogDir:  cliConfig.LogDir,
			Service: "cli",
		})

		ux.InitPersonality()
		if cliConfig.Personality != "" && os.Getenv("ILAKKIYAM_PERSONALITY") == "" {
			ux.SetPersonalityLevel(ux.ParsePersonalityLevel(cliConfig.Personality))
		}

		logger.Debug("configuration loaded",
			"config_path", path,
			"server", cliConfig.baseURL(),
		)
	}

	registerCommands()
}
