// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/thamizhneri/ilakkiyam/services/analyzer/analysis"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/corpus"
	"github.com/thamizhneri/ilakkiyam/services/analyzer/handlers"
)

func SetupRoutes(router *gin.Engine, store *corpus.Store, analyzer *analysis.Analyzer) {
	router.GET("/health", handlers.HandleHealth(store, analyzer))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version 1 group
	v1 := router.Group("/v1")
	{
		v1.POST("/analyze", handlers.HandleAnalyze(analyzer))
		corpusGroup := v1.Group("/corpus")
		{
			corpusGroup.GET("/stats", handlers.HandleCorpusStats(store))
			corpusGroup.GET("/units", handlers.HandleCorpusUnits(store))
		}
	}
}
