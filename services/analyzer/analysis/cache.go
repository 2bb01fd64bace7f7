// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/thamizhneri/ilakkiyam/services/analyzer/datatypes"
)

// DefaultCacheSize bounds the result cache entry count.
const DefaultCacheSize = 100

// ResultCache memoizes analysis results keyed by a content hash of the raw
// input bytes. The input is NOT normalized before hashing: two inputs
// differing only by whitespace are distinct entries. Eviction is FIFO by
// insertion order, never by access recency.
type ResultCache struct {
	mu      sync.Mutex
	entries map[string]datatypes.AnalysisResult
	order   []string
	maxSize int

	hits   uint64
	misses uint64
}

// NewResultCache builds a cache holding at most maxSize entries. A
// non-positive maxSize falls back to DefaultCacheSize.
func NewResultCache(maxSize int) *ResultCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &ResultCache{
		entries: make(map[string]datatypes.AnalysisResult),
		maxSize: maxSize,
	}
}

// cacheKey is the SHA-256 hex digest of the raw UTF-8 input.
func cacheKey(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// GetOrCompute returns the cached result for input, or runs compute and
// stores its value. Hits come back annotated Cached=true. The compute
// callback runs outside the lock, so two concurrent misses for the same key
// may both compute; the values are deterministic and last writer wins.
func (c *ResultCache) GetOrCompute(input string, compute func() datatypes.AnalysisResult) datatypes.AnalysisResult {
	key := cacheKey(input)

	c.mu.Lock()
	if cached, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		cached.Cached = true
		return cached
	}
	c.misses++
	c.mu.Unlock()

	result := compute()
	result.Cached = false

	c.mu.Lock()
	if _, ok := c.entries[key]; !ok {
		c.order = append(c.order, key)
	}
	c.entries[key] = result
	c.evictLocked()
	c.mu.Unlock()

	return result
}

// evictLocked drops the oldest 20% of entries once the cache exceeds its
// bound. Caller holds c.mu.
func (c *ResultCache) evictLocked() {
	if len(c.entries) <= c.maxSize {
		return
	}
	drop := len(c.entries) / 5
	if drop < 1 {
		drop = 1
	}
	for _, key := range c.order[:drop] {
		delete(c.entries, key)
	}
	c.order = append(c.order[:0], c.order[drop:]...)
}

// Len reports the number of cached entries.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Counters reports lifetime hit and miss counts.
func (c *ResultCache) Counters() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
