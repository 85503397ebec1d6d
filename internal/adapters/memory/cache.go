// Package memory provides an in-process PageCache, the default backend
// for single-instance deployments.
package memory

import (
	"context"
	"sync"

	"github.com/arvhem/foyer/pkg/ports"
)

// Cache implements ports.PageCache with a mutex-guarded map.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// New creates an empty in-memory cache.
func New() *Cache {
	return &Cache{entries: make(map[string]string)}
}

var _ ports.PageCache = (*Cache)(nil)

// Get retrieves the rendered HTML for a path.
func (c *Cache) Get(ctx context.Context, path string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	html, ok := c.entries[path]
	if !ok {
		return "", ports.ErrNotCached
	}
	return html, nil
}

// Set stores the rendered HTML for a path.
func (c *Cache) Set(ctx context.Context, path string, html string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = html
	return nil
}

// Invalidate removes the entry for a path.
func (c *Cache) Invalidate(ctx context.Context, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
	return nil
}

// Clear removes all entries.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
	return nil
}
