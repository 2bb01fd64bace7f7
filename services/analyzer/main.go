// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/credentials/insecure"

	// --- OpenTelemetry imports ---
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"

	"github.com/thamizhneri/ilakkiyam/services/analyzer/analysis"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/config"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/corpus"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/observability"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/routes"
	"github.com/thamizhneri/ilakkiyam/services/llm"
)

func initTracer() (func(context.Context), error) {
	ctx := context.Background()

	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint == "" {
		otelEndpoint = "ilakkiyam-otel-collector:4317"
	}
	conn, err := grpc.NewClient(otelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("analyzer-service")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

// loadCorpus opens the SQLite corpus when CORPUS_DB_PATH is set, falling
// back to the embedded sample corpus.
func loadCorpus(cfg config.Config) (*corpus.Store, error) {
	if cfg.CorpusDBPath != "" {
		slog.Info("Loading corpus from SQLite", "path", cfg.CorpusDBPath)
		store, err := corpus.OpenSQLite(cfg.CorpusDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open corpus database: %w", err)
		}
		return store, nil
	}
	slog.Info("CORPUS_DB_PATH not set, using the embedded sample corpus")
	return corpus.LoadEmbedded()
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	// --- Init the tracer ---
	cleanup, err := initTracer()
	if err != nil {
		log.Fatalf("failed to setup the OTLP tracer: %v", err)
	}
	defer cleanup(context.Background())

	observability.InitMetrics()

	store, err := loadCorpus(cfg)
	if err != nil {
		log.Fatalf("FATAL: Could not load the corpus: %v", err)
	}
	slog.Info("Corpus loaded", "units", store.Len())

	log.Println("Configuring the enrichment collaborator")
	collaborator, err := llm.NewClient(cfg.LLMBackend)
	if err != nil {
		log.Fatalf("Failed to initialize the LLM client: %v", err)
	}
	if !collaborator.Available() {
		slog.Warn("Enrichment collaborator unavailable, running heuristic-only",
			"backend", cfg.LLMBackend)
	}

	analyzer := analysis.NewAnalyzer(analysis.Options{
		Store:               store,
		MatchThreshold:      cfg.MatchThreshold,
		ConfidenceThreshold: cfg.ConfidenceThreshold,
		CacheSize:           cfg.CacheSize,
		Collaborator:        collaborator,
		Backend:             cfg.LLMBackend,
		EnrichmentTimeout:   cfg.EnrichmentTimeout,
	})

	router := gin.Default()
	router.Use(otelgin.Middleware("analyzer-service"))

	routes.SetupRoutes(router, store, analyzer)

	log.Println("Starting the analyzer server on port ", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
