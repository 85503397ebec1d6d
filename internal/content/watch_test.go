package content_test

import (
	"context"
	"testing"
	"time"

	"github.com/arvhem/foyer/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_EmbeddedContentUnsupported(t *testing.T) {
	store, err := content.New("")
	require.NoError(t, err)

	_, err = store.Watch(context.Background())
	assert.Error(t, err)
}

func TestWatch_ReportsMarkdownChanges(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "home.md", `---
id: home
path: /
title: Home
---
body`)

	store, err := content.New(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := store.Watch(ctx)
	require.NoError(t, err)

	// Give the watcher a moment to arm before mutating the dir.
	time.Sleep(50 * time.Millisecond)
	writePage(t, dir, "home.md", `---
id: home
path: /
title: Home v2
---
body`)

	select {
	case name := <-changes:
		assert.Equal(t, "home.md", name)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	cancel()
	// Channel closes after cancellation.
	select {
	case _, ok := <-changes:
		if ok {
			// A buffered duplicate event is fine; drain until close.
			for range changes {
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
