// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfextract/internal/backend"
	"github.com/pdiddy/pdfextract/internal/extract"
	"github.com/pdiddy/pdfextract/internal/format"
	"github.com/pdiddy/pdfextract/pkg/types"
)

func init() {
	rootCmd.Flags().Int("start", 0, "start page (1-indexed, inclusive)")
	rootCmd.Flags().Int("end", 0, "end page (1-indexed, inclusive)")
	rootCmd.Flags().String("section", "", "section label to locate (e.g. '14.1'); overrides --start/--end")
	rootCmd.Flags().Int("search-start", 0, "start page for section search")
	rootCmd.Flags().Int("search-end", 0, "end page for section search")
	rootCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	rootCmd.Flags().String("format", "text", "output format: text, markdown, json, yaml, or html")
	rootCmd.Flags().String("backend", "auto", "extraction backend: fitz, ledongthuc, or auto")
	rootCmd.Flags().Bool("no-page-numbers", false, "omit page banners in text output")
}

// validFormats is the accepted set for --format.
var validFormats = map[types.Format]bool{
	types.FormatText:     true,
	types.FormatMarkdown: true,
	types.FormatJSON:     true,
	types.FormatYAML:     true,
	types.FormatHTML:     true,
}

// validBackends is the accepted set for --backend.
var validBackends = map[types.BackendID]bool{
	types.BackendFitz:       true,
	types.BackendLedongthuc: true,
	types.BackendAuto:       true,
}

func runExtract(cmd *cobra.Command, args []string) error {
	pdfPath := args[0]

	outFormat := types.Format(stringSetting(cmd, "format"))
	if !validFormats[outFormat] {
		return fmt.Errorf("invalid format %q (expected text, markdown, json, yaml, or html)", outFormat)
	}
	pref := types.BackendID(stringSetting(cmd, "backend"))
	if !validBackends[pref] {
		return fmt.Errorf("invalid backend %q (expected fitz, ledongthuc, or auto)", pref)
	}

	b, err := backend.Resolve(pref)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Using backend: %s\n", b.ID())

	ex, err := extract.New(pdfPath, b)
	if err != nil {
		return err
	}

	var pageRange types.PageRange
	sectionLabel, _ := cmd.Flags().GetString("section")
	if sectionLabel != "" {
		searchStart, _ := cmd.Flags().GetInt("search-start")
		searchEnd, _ := cmd.Flags().GetInt("search-end")

		fmt.Fprintf(os.Stderr, "Searching for section '%s'...\n", sectionLabel)
		match, found, err := ex.FindSection(sectionLabel, types.PageRange{Start: searchStart, End: searchEnd})
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("section '%s' not found", sectionLabel)
		}
		fmt.Fprintf(os.Stderr, "Found section at pages %d-%d\n", match.StartPage, match.EndPage)
		pageRange = types.PageRange{Start: match.StartPage, End: match.EndPage}
	} else {
		pageRange.Start, _ = cmd.Flags().GetInt("start")
		pageRange.End, _ = cmd.Flags().GetInt("end")
	}

	fmt.Fprintf(os.Stderr, "Extracting pages %s to %s...\n",
		boundLabel(pageRange.Start, "first"), boundLabel(pageRange.End, "last"))
	pages, err := ex.ExtractPages(pageRange)
	if err != nil {
		return err
	}

	noPageNumbers, _ := cmd.Flags().GetBool("no-page-numbers")
	output, err := format.Render(outFormat, pages, !noPageNumbers)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(output), 0o644); err != nil {
			return fmt.Errorf("writing output to %s: %w", outPath, err)
		}
		fmt.Fprintf(os.Stderr, "Output written to: %s\n", outPath)
		return nil
	}

	fmt.Println(output)
	return nil
}

// stringSetting returns the flag value when set on the command line,
// otherwise the config-file/env value when present, otherwise the flag
// default. Lets pdfextract.yaml supply per-user defaults for backend
// and format.
func stringSetting(cmd *cobra.Command, name string) string {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetString(name)
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

// boundLabel renders a range bound for progress output; unset bounds
// read as "first"/"last".
func boundLabel(page int, unset string) string {
	if page == 0 {
		return unset
	}
	return strconv.Itoa(page)
}
