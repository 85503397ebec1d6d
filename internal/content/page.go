package content

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Meta is the typed front matter of a page document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type Meta struct {
	ID       string `mapstructure:"id"`
	Path     string `mapstructure:"path"`
	Title    string `mapstructure:"title"`
	NavLabel string `mapstructure:"nav_label"`
	Order    int    `mapstructure:"order"`
}

// Page is a loaded content unit: front matter plus rendered body.
// The shell treats the body as opaque; it only mounts it into the
// content region.
type Page struct {
	Meta

	// Markdown is the raw document body, used by terminal preview.
	Markdown string

	// HTML is the body rendered for the content region.
	HTML template.HTML
}

const frontMatterDelim = "---"

// parseDocument splits a Markdown document into front matter and body.
// The document must start with a "---" delimited YAML block.
func parseDocument(name string, raw []byte) (Meta, string, error) {
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")

	rest, ok := strings.CutPrefix(text, frontMatterDelim+"\n")
	if !ok {
		return Meta{}, "", fmt.Errorf("%s: missing front matter block", name)
	}

	head, body, ok := strings.Cut(rest, "\n"+frontMatterDelim)
	if !ok {
		return Meta{}, "", fmt.Errorf("%s: unterminated front matter block", name)
	}
	body = strings.TrimPrefix(body, "\n")

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(head), &fields); err != nil {
		return Meta{}, "", fmt.Errorf("%s: invalid front matter: %w", name, err)
	}

	var meta Meta
	if err := mapstructure.Decode(fields, &meta); err != nil {
		return Meta{}, "", fmt.Errorf("%s: decode front matter: %w", name, err)
	}

	if err := validateMeta(name, meta); err != nil {
		return Meta{}, "", err
	}

	return meta, body, nil
}

func validateMeta(name string, meta Meta) error {
	var problems []string
	if meta.ID == "" {
		problems = append(problems, "missing id")
	}
	if meta.Path == "" {
		problems = append(problems, "missing path")
	} else if !strings.HasPrefix(meta.Path, "/") {
		problems = append(problems, fmt.Sprintf("path %q must start with /", meta.Path))
	}
	if meta.Title == "" {
		problems = append(problems, "missing title")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s: %s", name, strings.Join(problems, "; "))
	}
	return nil
}

// renderBody converts the Markdown body to HTML using the store's renderer.
func (s *Store) renderBody(name, body string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("%s: render markdown: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
