// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package backend

import (
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/pdiddy/pdfextract/pkg/types"
)

func init() {
	Register(&ledongthucBackend{})
}

// ledongthucBackend extracts text through ledongthuc/pdf. Pure Go, so
// it is present in every build and serves as the auto fallback.
type ledongthucBackend struct{}

func (b *ledongthucBackend) ID() types.BackendID { return types.BackendLedongthuc }

func (b *ledongthucBackend) Open(path string) (Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s with ledongthuc/pdf: %w", path, err)
	}
	return &ledongthucDocument{file: f, reader: reader}, nil
}

type ledongthucDocument struct {
	file   *os.File
	reader *pdflib.Reader
}

func (d *ledongthucDocument) NumPages() int {
	return d.reader.NumPage()
}

// PageText returns the plain text of page i. The library's pages are
// 1-indexed; null page objects are normalized to "" so the backend
// stays interchangeable with fitz on textless pages.
func (d *ledongthucDocument) PageText(i int) (string, error) {
	page := d.reader.Page(i + 1)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

func (d *ledongthucDocument) Close() error {
	return d.file.Close()
}
