// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format renders extracted page sequences into the supported
// output encodings. All renderers are pure and order-preserving; none
// mutates the input records. See docs/ARCHITECTURE § Formatting.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfextract/pkg/types"
)

// bannerWidth is the width of the page separator rule in text output.
const bannerWidth = 60

// Render dispatches pages to the renderer for f. withBanners applies
// to the text format only. An unrecognized format is a defensive
// error; the CLI validates formats before dispatch.
func Render(f types.Format, pages []types.PageRecord, withBanners bool) (string, error) {
	switch f {
	case types.FormatText:
		return Text(pages, withBanners), nil
	case types.FormatMarkdown:
		return Markdown(pages), nil
	case types.FormatJSON:
		return JSON(pages)
	case types.FormatYAML:
		return YAML(pages)
	case types.FormatHTML:
		return HTML(pages)
	default:
		return "", fmt.Errorf("unknown output format: %s", f)
	}
}

// Text renders pages as plain text. With banners, each page is
// preceded by a separator rule, a "Page N" label, and another rule;
// without, pages are joined bare, preserving their exact text.
func Text(pages []types.PageRecord, withBanners bool) string {
	rule := strings.Repeat("=", bannerWidth)

	var lines []string
	for _, page := range pages {
		if withBanners {
			lines = append(lines, "\n"+rule)
			lines = append(lines, fmt.Sprintf("Page %d", page.PageNumber))
			lines = append(lines, rule+"\n")
		}
		lines = append(lines, page.Text)
	}
	return strings.Join(lines, "\n")
}

// Markdown renders pages with a level-2 "Page N" heading per page.
func Markdown(pages []types.PageRecord) string {
	var lines []string
	for _, page := range pages {
		lines = append(lines, fmt.Sprintf("\n## Page %d\n", page.PageNumber))
		lines = append(lines, page.Text)
	}
	return strings.Join(lines, "\n")
}

// JSON renders pages as an indented JSON array. Non-ASCII text is
// preserved as UTF-8; HTML escaping is disabled so page text
// round-trips byte for byte.
func JSON(pages []types.PageRecord) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pages); err != nil {
		return "", fmt.Errorf("encoding pages as JSON: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// YAML renders pages as a YAML document.
func YAML(pages []types.PageRecord) (string, error) {
	data, err := yaml.Marshal(pages)
	if err != nil {
		return "", fmt.Errorf("encoding pages as YAML: %w", err)
	}
	return string(data), nil
}

// HTML renders pages by passing the Markdown encoding through
// goldmark.
func HTML(pages []types.PageRecord) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(pages)), &buf); err != nil {
		return "", fmt.Errorf("rendering pages as HTML: %w", err)
	}
	return buf.String(), nil
}
