// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docinfo reports document-level facts about a PDF without
// extracting its text. See docs/ARCHITECTURE § Inspection.
package docinfo

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pdfextract/pkg/types"
)

// Inspect reads the PDF at path and returns its page count and header
// version. Validation is relaxed; many real-world PDFs are not
// strictly conformant.
func Inspect(path string) (types.DocInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.DocInfo{}, fmt.Errorf("PDF file not found: %s: %w", path, err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return types.DocInfo{}, fmt.Errorf("reading %s: %w", path, err)
	}

	info := types.DocInfo{
		Path:      path,
		PageCount: ctx.PageCount,
	}
	if ctx.HeaderVersion != nil {
		info.PDFVersion = ctx.HeaderVersion.String()
	}
	return info, nil
}
