// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"sync"
)

// Entry is a cached document.
type Entry struct {
	Status int
	Body   []byte
}

// Cache holds the output of static renders keyed by path.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

// Get returns a copy of the entry for key.
func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return Entry{}, false
	}
	return Entry{Status: e.Status, Body: bytes.Clone(e.Body)}, true
}

// Store keeps the output of res for key unless the render was dynamic or
// did not succeed. It reports whether the entry was stored.
func (c *Cache) Store(key string, res Result, body []byte) bool {
	if res.Dynamic || res.Status != 200 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = Entry{Status: res.Status, Body: bytes.Clone(body)}
	return true
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}
