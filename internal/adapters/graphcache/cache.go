// Package graphcache implements the in-memory import graph shared by compiles.
package graphcache

import (
	"path/filepath"
	"sync"
	"unique"

	"go.trai.ch/restyle/internal/core/ports"
)

var _ ports.DependencyGraphCache = (*Cache)(nil)

// Cache implements ports.DependencyGraphCache.
// Paths are interned so the same file imported from many stylesheets is
// stored once.
type Cache struct {
	mu      sync.RWMutex
	entries map[unique.Handle[string]][]unique.Handle[string]
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		entries: make(map[unique.Handle[string]][]unique.Handle[string]),
	}
}

// Get returns the direct imports recorded for path and whether path was ever scanned.
// A scanned file without imports yields a non-nil empty slice.
func (c *Cache) Get(path string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	handles, ok := c.entries[key(path)]
	if !ok {
		return nil, false
	}
	return values(handles), true
}

// Set replaces the imports recorded for path. The slice is copied.
func (c *Cache) Set(path string, imports []string) {
	handles := make([]unique.Handle[string], len(imports))
	for i, imp := range imports {
		handles[i] = key(imp)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(path)] = handles
}

// Forget drops path so its next evaluation treats it as never scanned.
func (c *Cache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key(path))
}

// Len returns the number of scanned files.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Importers returns the scanned files that import path directly, in no particular order.
func (c *Cache) Importers(path string) []string {
	target := key(path)

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []string
	for k, imports := range c.entries {
		for _, imp := range imports {
			if imp == target {
				out = append(out, k.Value())
				break
			}
		}
	}
	return out
}

func key(path string) unique.Handle[string] {
	return unique.Make(filepath.Clean(path))
}

func values(handles []unique.Handle[string]) []string {
	out := make([]string, len(handles))
	for i, h := range handles {
		out[i] = h.Value()
	}
	return out
}
