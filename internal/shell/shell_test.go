package shell_test

import (
	"bytes"
	"fmt"
	"html/template"
	"testing"
	"time"

	"github.com/arvhem/foyer/internal/shell"
	"github.com/arvhem/foyer/pkg/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navRoutes() []routes.Route {
	return []routes.Route{
		{ID: "home", Path: "/", Title: "Home"},
		{ID: "chatbot", Path: "/chatbot", Title: "Chatbot"},
		{ID: "study-plan", Path: "/study-plan", Title: "Study Plan"},
	}
}

func render(t *testing.T, path string, content template.HTML) string {
	t.Helper()
	s, err := shell.New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = s.Render(&buf, shell.View{
		Title:   "Test",
		Path:    path,
		Nav:     navRoutes(),
		Content: content,
	})
	require.NoError(t, err)
	return buf.String()
}

func TestRender_HidesNavOnRoot(t *testing.T) {
	out := render(t, "/", "<h1>Home</h1>")
	assert.NotContains(t, out, "<nav")
	assert.Contains(t, out, "<h1>Home</h1>")
	assert.Contains(t, out, "<footer")
}

func TestRender_ShowsNavElsewhere(t *testing.T) {
	for _, path := range []string{"/chatbot", "/study-plan", "/unknown"} {
		out := render(t, path, "")
		assert.Contains(t, out, "<nav", "path %s", path)
		assert.Contains(t, out, "<footer", "path %s", path)
	}
}

func TestRender_NavLinksAndCurrentPage(t *testing.T) {
	out := render(t, "/chatbot", "<p>bot</p>")
	assert.Contains(t, out, `<a href="/"`)
	assert.Contains(t, out, `<a href="/chatbot" aria-current="page"`)
	assert.Contains(t, out, `<a href="/study-plan"`)
}

func TestRender_EmptyContentRegion(t *testing.T) {
	out := render(t, "/unknown", "")
	assert.Contains(t, out, `<main id="content"></main>`)
}

func TestRender_ContentNotEscaped(t *testing.T) {
	out := render(t, "/chatbot", template.HTML("<strong>safe</strong>"))
	assert.Contains(t, out, "<strong>safe</strong>")
}

func TestRender_TitleAndFooterYear(t *testing.T) {
	s, err := shell.New(shell.WithAppName("StudyDesk"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf, shell.View{Title: "Chatbot", Path: "/chatbot", Nav: navRoutes()}))

	out := buf.String()
	assert.Contains(t, out, "<title>Chatbot · StudyDesk</title>")
	assert.Contains(t, out, fmt.Sprintf("%d StudyDesk", time.Now().Year()))
}
