package foyer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/arvhem/foyer"
	"github.com/arvhem/foyer/internal/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_Integration(t *testing.T) {
	// 0. Setup Temp Content Dir
	dir := t.TempDir()
	doc := []byte(`---
id: landing
path: /
title: Landing
---
Hello World`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "landing.md"), doc, 0644))

	// 1. Test Initialization
	app, err := foyer.New(dir, foyer.WithAppName("Test Shell"))
	require.NoError(t, err)

	rs := app.Routes()
	require.Len(t, rs, 1)
	assert.Equal(t, "/", rs[0].Path)

	// 2. Serve the landing page through the handler
	rr := httptest.NewRecorder()
	app.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Hello World")

	// 3. Page source is available for preview
	src, err := app.PageSource("landing")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", src)

	_, err = app.PageSource("nope")
	assert.Error(t, err)
}

func TestFacade_DefaultsAndReload(t *testing.T) {
	cache := memory.New()
	app, err := foyer.New("", foyer.WithCache(cache))
	require.NoError(t, err)

	require.Len(t, app.Routes(), 3)

	ctx := context.Background()

	// Warm the cache, then reload must drop it.
	rr := httptest.NewRecorder()
	app.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/chatbot", nil))
	require.Equal(t, "miss", rr.Header().Get("X-Page-Cache"))

	rr = httptest.NewRecorder()
	app.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/chatbot", nil))
	require.Equal(t, "hit", rr.Header().Get("X-Page-Cache"))

	require.NoError(t, app.Reload(ctx))

	rr = httptest.NewRecorder()
	app.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/chatbot", nil))
	assert.Equal(t, "miss", rr.Header().Get("X-Page-Cache"))

	// Embedded content cannot be watched.
	_, err = app.Watch(ctx)
	assert.Error(t, err)
}
