// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package section locates the page span of a labeled document
// subsection within a sequence of extracted pages.
// See docs/ARCHITECTURE § Section Locator.
package section

import (
	"strings"

	"github.com/pdiddy/pdfextract/pkg/types"
)

// Find scans pages in order for the span covering the section labeled
// label (e.g. "14.1" or "Chapter 14"). It is a layout heuristic for
// documents whose numbered section headers start lines at the left
// margin, not a document-structure parse:
//
//   - The section starts at the first page containing label as a
//     literal substring. No word-boundary check is applied, so short
//     labels match inside larger numbers.
//   - On later pages, the first line that starts (after trimming) with
//     an ASCII digit and whose first whitespace-delimited token is not
//     label marks the start of the next section; the span ends on the
//     previous page.
//   - With no such line, the span runs through the last page scanned.
//
// The boolean is false when label appears nowhere in pages.
func Find(pages []types.PageRecord, label string) (types.SectionMatch, bool) {
	start := 0

	for _, page := range pages {
		if start == 0 {
			if strings.Contains(page.Text, label) {
				start = page.PageNumber
			}
			continue
		}

		for _, line := range strings.Split(page.Text, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || !isASCIIDigit(trimmed[0]) {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) > 0 && fields[0] != label {
				return types.SectionMatch{StartPage: start, EndPage: page.PageNumber - 1}, true
			}
		}
	}

	if start != 0 {
		return types.SectionMatch{StartPage: start, EndPage: pages[len(pages)-1].PageNumber}, true
	}
	return types.SectionMatch{}, false
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
