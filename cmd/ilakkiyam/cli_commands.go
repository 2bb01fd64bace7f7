// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thamizhneri/ilakkiyam/pkg/ux"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/datatypes"
)

var (
	rootCmd = &cobra.Command{
		Use:   "ilakkiyam",
		Short: "A CLI for analyzing Tamil literary quotes",
		Long: `Ilakkiyam matches Tamil text against a corpus of classical verse,
scores how confident it is that the text quotes a known work, and enriches
recognized verses with meaning and commentary.`,
	}

	analyzeCmd = &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze a piece of Tamil text against the verse corpus",
		Long: `Sends the text to the analyzer service and prints the match,
confidence assessment, heuristic reading, and any LLM enrichment.`,
		Args: cobra.MinimumNArgs(1),
		Run:  runAnalyzeCommand,
	}
	jsonOutput bool

	interactiveCmd = &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive analysis session",
		Long:  `Reads lines of Tamil text from stdin and analyzes each one. Type 'examples' for sample verses, 'exit' or 'quit' to end.`,
		Run:   runInteractiveCommand,
	}

	corpusCmd = &cobra.Command{
		Use:   "corpus",
		Short: "Inspect the loaded verse corpus",
	}
	corpusStatsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show corpus summary statistics",
		Run:   runCorpusStatsCommand,
	}

	healthCmd = &cobra.Command{
		Use:   "health",
		Short: "Check that the analyzer service is reachable",
		Run:   runHealthCommand,
	}
)

// sampleVerses are shown by the 'examples' command in interactive mode.
var sampleVerses = []string{
	"அறம் செய விரும்பு",
	"யாதும் ஊரே யாவரும் கேளிர்",
	"கற்றது கைம்மண் அளவு கல்லாதது உலகளவு",
	"அகர முதல எழுத்தெல்லாம் ஆதி பகவன் முதற்றே உலகு",
}

func registerCommands() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the raw JSON response instead of formatted output")

	rootCmd.AddCommand(interactiveCmd)

	rootCmd.AddCommand(corpusCmd)
	corpusCmd.AddCommand(corpusStatsCmd)

	rootCmd.AddCommand(healthCmd)
}

func runAnalyzeCommand(cmd *cobra.Command, args []string) {
	text := strings.Join(args, " ")
	if err := analyzeAndRender(text); err != nil {
		exitErr(err)
	}
}

func analyzeAndRender(text string) error {
	var result datatypes.AnalysisResult
	err := ux.WithSpinner("Analyzing text...", func() error {
		var reqErr error
		result, reqErr = sendAnalyzeRequest(cliConfig, text)
		return reqErr
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	renderResult(result)
	return nil
}

func runInteractiveCommand(cmd *cobra.Command, args []string) {
	ux.Title("Ilakkiyam interactive session")
	ux.Muted("Enter Tamil text to analyze. Commands: examples, exit, quit")
	if ux.GetPersonality().ShowExamples {
		ux.Muted("Try 'examples' for verses that match the corpus.")
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		input = strings.TrimSpace(input)

		switch input {
		case "":
			continue
		case "exit", "quit":
			ux.Muted("ending session")
			return
		case "examples":
			printExamples()
			continue
		}

		if err := analyzeAndRender(input); err != nil {
			ux.Error(err.Error())
		}
	}
}

func printExamples() {
	ux.Info("Sample verses:")
	for i, verse := range sampleVerses {
		fmt.Printf("  %d. ", i+1)
		ux.Verse(verse)
	}
}

func runCorpusStatsCommand(cmd *cobra.Command, args []string) {
	stats, err := fetchCorpusStats(cliConfig)
	if err != nil {
		exitErr(err)
	}

	ux.Title("Corpus")
	ux.KeyValue("Units", fmt.Sprintf("%d", stats.Units))
	ux.KeyValue("Lines", fmt.Sprintf("%d", stats.Lines))
	ux.KeyValue("Average fame", fmt.Sprintf("%.2f", stats.AverageFame))
	if len(stats.Groups) > 0 {
		ux.KeyValue("Works", strings.Join(stats.Groups, ", "))
	}
}

func runHealthCommand(cmd *cobra.Command, args []string) {
	health, err := fetchHealth(cliConfig)
	if err != nil {
		exitErr(err)
	}

	ux.Success(fmt.Sprintf("analyzer is %s at %s", health.Status, cliConfig.baseURL()))
	ux.KeyValue("Corpus units", fmt.Sprintf("%d", health.CorpusUnits))
	if health.EnrichmentAvailable {
		ux.KeyValue("Enrichment", "available")
	} else {
		ux.KeyValue("Enrichment", "unavailable (heuristic analysis only)")
	}
}

// renderResult prints a formatted analysis result.
func renderResult(result datatypes.AnalysisResult) {
	fmt.Println()

	if result.IsKnownWork {
		ux.Success("Recognized as a known literary work")
	} else {
		ux.Info("Not recognized as a known literary work")
	}
	ux.KeyValue("Confidence", ux.ConfidenceBar(result.Confidence, 20))

	if result.BestMatch != nil {
		m := result.BestMatch
		source := m.GroupName
		if m.SectionLabel != "" {
			source = fmt.Sprintf("%s, %s", source, m.SectionLabel)
		}
		ux.KeyValue("Source", source)
		ux.KeyValue("Similarity", fmt.Sprintf("%.2f (%s)", m.Score, m.Granularity))
		ux.Verse(m.Excerpt)
		if m.Meaning != "" {
			ux.Box("Meaning", m.Meaning)
		}
		if m.MoralTeaching != "" {
			ux.KeyValue("Teaching", m.MoralTeaching)
		}
	}

	h := result.Heuristic
	ux.KeyValue("Language", h.LanguageMix)
	if len(h.Themes) > 0 {
		ux.KeyValue("Themes", strings.Join(h.Themes, ", "))
	}
	ux.KeyValue("Sentiment", fmt.Sprintf("%s (%.2f)", h.Sentiment.Label, h.Sentiment.Score))

	if result.Enrichment != nil && result.Enrichment.Enhanced {
		e := result.Enrichment
		if e.Meaning != "" {
			ux.Box("Enriched meaning", e.Meaning)
		}
		if e.LineByLine != "" {
			ux.Box("Line by line", e.LineByLine)
		}
		if e.Theme != "" {
			ux.KeyValue("Enriched theme", e.Theme)
		}
	} else if h.Meaning != "" {
		ux.Box("Reading", h.Meaning)
	}

	if result.Error != "" {
		ux.Warning("enrichment failed: " + result.Error)
	}
	if result.Cached {
		ux.Muted("(cached result)")
	}
	ux.Muted(fmt.Sprintf("processed in %dms", result.ProcessingTimeMs))
}
