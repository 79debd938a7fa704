// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared record types passed between the
// extraction, section-location, and formatting stages.
package types

// PageRecord is one page's extracted text tagged with its 1-indexed
// page number. Records are never mutated after extraction; a sequence
// of them is ordered by ascending page number and contiguous within
// the requested range.
type PageRecord struct {
	// PageNumber is the 1-indexed page number within the document.
	PageNumber int `json:"page_number" yaml:"page_number"`

	// Text is the page's extracted text. Textless pages carry "".
	Text string `json:"text" yaml:"text"`
}

// PageRange bounds an extraction request. Both ends are 1-indexed and
// inclusive; zero means unset ("from the first page" / "through the
// last page"). Start <= End is the caller's responsibility and is not
// validated anywhere.
type PageRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// SectionMatch is the inclusive 1-indexed page span the section
// locator found for a label.
type SectionMatch struct {
	StartPage int `json:"start_page" yaml:"start_page"`
	EndPage   int `json:"end_page" yaml:"end_page"`
}
