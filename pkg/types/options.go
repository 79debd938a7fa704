// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BackendID identifies a PDF text-extraction backend.
type BackendID string

const (
	// BackendFitz is the MuPDF-based backend (cgo).
	BackendFitz BackendID = "fitz"

	// BackendLedongthuc is the pure-Go backend.
	BackendLedongthuc BackendID = "ledongthuc"

	// BackendAuto selects the first available backend, preferring fitz.
	BackendAuto BackendID = "auto"
)

// Format selects the output encoding for extracted pages.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatHTML     Format = "html"
)

// DocInfo holds document-level facts reported by the info command.
type DocInfo struct {
	// Path is the inspected file.
	Path string `json:"path" yaml:"path"`

	// PageCount is the document's total number of pages.
	PageCount int `json:"page_count" yaml:"page_count"`

	// PDFVersion is the version declared in the file header (e.g. "1.7").
	PDFVersion string `json:"pdf_version,omitempty" yaml:"pdf_version,omitempty"`
}
