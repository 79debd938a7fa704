// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !nofitz

package backend

import (
	"fmt"

	"github.com/gen2brain/go-fitz"

	"github.com/pdiddy/pdfextract/pkg/types"
)

func init() {
	Register(&fitzBackend{})
}

// fitzBackend extracts text through go-fitz (MuPDF bindings). It is the
// preferred backend for auto resolution; exclude it with the nofitz
// build tag on platforms where the bundled MuPDF libraries are not
// usable.
type fitzBackend struct{}

func (b *fitzBackend) ID() types.BackendID { return types.BackendFitz }

func (b *fitzBackend) Open(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s with mupdf: %w", path, err)
	}
	return &fitzDocument{doc: doc}, nil
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) NumPages() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) PageText(i int) (string, error) {
	return d.doc.Text(i)
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
