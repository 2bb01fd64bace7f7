// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thamizhneri/ilakkiyam/services/analyzer/corpus"
)

// HandleCorpusStats reports aggregate corpus statistics.
func HandleCorpusStats(store *corpus.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Stats())
	}
}

// HandleCorpusUnits lists the loaded corpus units.
func HandleCorpusUnits(store *corpus.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"units": store.Units()})
	}
}
