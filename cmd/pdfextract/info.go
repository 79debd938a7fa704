// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfextract/internal/docinfo"
)

var infoCmd = &cobra.Command{
	Use:   "info <pdf>",
	Short: "Print page count and version information for a PDF",
	Long: `Info inspects a PDF without extracting its text and reports the page
count and the PDF version declared in the file header. Useful as a
pre-flight check before choosing a page range.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	info, err := docinfo.Inspect(args[0])
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("File:        %s\n", info.Path)
	fmt.Printf("Pages:       %d\n", info.PageCount)
	if info.PDFVersion != "" {
		fmt.Printf("PDF version: %s\n", info.PDFVersion)
	}
	return nil
}
