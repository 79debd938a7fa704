// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfextract/internal/backend"
	"github.com/pdiddy/pdfextract/pkg/types"
)

// fakeDocument implements backend.Document over an in-memory page list.
type fakeDocument struct {
	pages    []string
	pageErrs map[int]error
	closed   int
}

func (d *fakeDocument) NumPages() int { return len(d.pages) }

func (d *fakeDocument) PageText(i int) (string, error) {
	if err, ok := d.pageErrs[i]; ok {
		return "", err
	}
	return d.pages[i], nil
}

func (d *fakeDocument) Close() error {
	d.closed++
	return nil
}

// fakeBackend implements backend.Backend, returning the same document
// for every Open.
type fakeBackend struct {
	doc     *fakeDocument
	openErr error
}

func (b *fakeBackend) ID() types.BackendID { return types.BackendLedongthuc }

func (b *fakeBackend) Open(path string) (backend.Document, error) {
	if b.openErr != nil {
		return nil, b.openErr
	}
	return b.doc, nil
}

// stubPDF creates a placeholder file so New's existence check passes.
func stubPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7"), 0o644))
	return path
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.pdf"), &fakeBackend{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDF file not found")
}

func TestExtractPages(t *testing.T) {
	fivePages := []string{"one", "two", "three", "four", "five"}

	tests := []struct {
		name      string
		pages     []string
		r         types.PageRange
		wantNums  []int
		wantTexts []string
	}{
		{
			name:      "unset range covers the whole document",
			pages:     fivePages,
			r:         types.PageRange{},
			wantNums:  []int{1, 2, 3, 4, 5},
			wantTexts: fivePages,
		},
		{
			name:      "inclusive interior range",
			pages:     fivePages,
			r:         types.PageRange{Start: 2, End: 4},
			wantNums:  []int{2, 3, 4},
			wantTexts: []string{"two", "three", "four"},
		},
		{
			name:      "end clamped to the page count",
			pages:     fivePages,
			r:         types.PageRange{Start: 4, End: 99},
			wantNums:  []int{4, 5},
			wantTexts: []string{"four", "five"},
		},
		{
			name:     "start beyond the document yields nothing",
			pages:    fivePages,
			r:        types.PageRange{Start: 9},
			wantNums: nil,
		},
		{
			name:      "single page range",
			pages:     fivePages,
			r:         types.PageRange{Start: 3, End: 3},
			wantNums:  []int{3},
			wantTexts: []string{"three"},
		},
		{
			name:     "empty document",
			pages:    nil,
			r:        types.PageRange{},
			wantNums: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &fakeDocument{pages: tt.pages}
			ex, err := New(stubPDF(t), &fakeBackend{doc: doc})
			require.NoError(t, err)

			got, err := ex.ExtractPages(tt.r)
			require.NoError(t, err)

			var nums []int
			var texts []string
			for _, rec := range got {
				nums = append(nums, rec.PageNumber)
				texts = append(texts, rec.Text)
			}
			assert.Equal(t, tt.wantNums, nums)
			if tt.wantTexts != nil {
				assert.Equal(t, tt.wantTexts, texts)
			}
			assert.Equal(t, 1, doc.closed, "document handle must be released")
		})
	}
}

func TestExtractPagesCoercesFailedPages(t *testing.T) {
	doc := &fakeDocument{
		pages:    []string{"one", "garbled", "three"},
		pageErrs: map[int]error{1: errors.New("undecodable glyphs")},
	}
	ex, err := New(stubPDF(t), &fakeBackend{doc: doc})
	require.NoError(t, err)

	got, err := ex.ExtractPages(types.PageRange{})
	require.NoError(t, err)

	want := []types.PageRecord{
		{PageNumber: 1, Text: "one"},
		{PageNumber: 2, Text: ""},
		{PageNumber: 3, Text: "three"},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 1, doc.closed, "handle released despite page errors")
}

func TestExtractPagesIdempotent(t *testing.T) {
	doc := &fakeDocument{pages: []string{"a", "b", "c"}}
	ex, err := New(stubPDF(t), &fakeBackend{doc: doc})
	require.NoError(t, err)

	first, err := ex.ExtractPages(types.PageRange{Start: 1, End: 3})
	require.NoError(t, err)
	second, err := ex.ExtractPages(types.PageRange{Start: 1, End: 3})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, doc.closed, "one open/close per extraction call")
}

func TestExtractPagesOpenError(t *testing.T) {
	ex, err := New(stubPDF(t), &fakeBackend{openErr: errors.New("corrupt xref table")})
	require.NoError(t, err)

	_, err = ex.ExtractPages(types.PageRange{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt xref table")
}

func TestFindSection(t *testing.T) {
	doc := &fakeDocument{pages: []string{
		"front matter",         // page 1
		"table of contents",    // page 2
		"intro prose",          // page 3
		"background",           // page 4
		"3.2 Cache Coherence",  // page 5
		"3.3 Memory Models\n…", // page 6
	}}
	ex, err := New(stubPDF(t), &fakeBackend{doc: doc})
	require.NoError(t, err)

	match, found, err := ex.FindSection("3.2", types.PageRange{})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, types.SectionMatch{StartPage: 5, EndPage: 5}, match)
}

func TestFindSectionRespectsSearchRange(t *testing.T) {
	doc := &fakeDocument{pages: []string{
		"1.1 Early Section", // page 1, outside the search range
		"prose",             // page 2
		"prose",             // page 3
	}}
	ex, err := New(stubPDF(t), &fakeBackend{doc: doc})
	require.NoError(t, err)

	_, found, err := ex.FindSection("1.1", types.PageRange{Start: 2, End: 3})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBackendID(t *testing.T) {
	ex, err := New(stubPDF(t), &fakeBackend{doc: &fakeDocument{}})
	require.NoError(t, err)
	assert.Equal(t, types.BackendLedongthuc, ex.Backend())
}
