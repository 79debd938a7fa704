// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract drives per-page text extraction over a resolved
// backend. See docs/ARCHITECTURE § Extraction.
package extract

import (
	"fmt"
	"os"

	"github.com/pdiddy/pdfextract/internal/backend"
	"github.com/pdiddy/pdfextract/internal/section"
	"github.com/pdiddy/pdfextract/pkg/types"
)

// Extractor reads page text from a single PDF through an injected
// backend. It holds no document handle between calls; each extraction
// opens the document and releases it before returning.
type Extractor struct {
	path    string
	backend backend.Backend
}

// New creates an Extractor for the PDF at path. It fails when the path
// does not reference an existing file; the document itself is not
// opened until the first extraction.
func New(path string, b backend.Backend) (*Extractor, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("PDF file not found: %s: %w", path, err)
	}
	return &Extractor{path: path, backend: b}, nil
}

// Backend returns the backend this extractor reads through.
func (e *Extractor) Backend() types.BackendID {
	return e.backend.ID()
}

// ExtractPages returns the PageRecords for r, in ascending page order.
// The effective end of range is clamped to the document's page count.
// Pages whose text cannot be extracted yield "" rather than failing
// the run. The whole range is materialized before returning; the
// section locator and the formatters need random access.
func (e *Extractor) ExtractPages(r types.PageRange) ([]types.PageRecord, error) {
	doc, err := e.backend.Open(e.path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	total := doc.NumPages()

	start := 0
	if r.Start > 0 {
		start = r.Start - 1
	}
	end := total
	if r.End > 0 && r.End < total {
		end = r.End
	}

	var records []types.PageRecord
	for i := start; i < end; i++ {
		text, err := doc.PageText(i)
		if err != nil {
			text = ""
		}
		records = append(records, types.PageRecord{
			PageNumber: i + 1,
			Text:       text,
		})
	}
	return records, nil
}

// FindSection extracts the search range and scans it for the page span
// containing label. The boolean is false when the label appears on no
// page in the range.
func (e *Extractor) FindSection(label string, search types.PageRange) (types.SectionMatch, bool, error) {
	pages, err := e.ExtractPages(search)
	if err != nil {
		return types.SectionMatch{}, false, err
	}
	match, ok := section.Find(pages, label)
	return match, ok, nil
}
