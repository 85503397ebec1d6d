package ports

import (
	"context"
	"errors"
)

// ErrNotCached is returned by PageCache.Get when no entry exists for a path.
var ErrNotCached = errors.New("page not cached")

// PageCache stores fully rendered shell output keyed by request path.
// Implementations may evict entries at any time; callers must treat the
// cache as a best-effort layer and fall back to rendering.
type PageCache interface {
	// Get retrieves the rendered HTML for a path.
	// Returns ErrNotCached if the path has no entry.
	Get(ctx context.Context, path string) (string, error)

	// Set stores the rendered HTML for a path.
	Set(ctx context.Context, path string, html string) error

	// Invalidate removes the entry for a path, if present.
	Invalidate(ctx context.Context, path string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// Watchable is implemented by content sources that can signal changes.
// The returned channel delivers an identifier of what changed (usually a
// file path) and closes when the context is cancelled.
type Watchable interface {
	Watch(ctx context.Context) (<-chan string, error)
}
