// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfextract CLI.
// See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd extracts text from one PDF per invocation. Extraction is the
// root command itself rather than a subcommand; the tool does one
// thing.
var rootCmd = &cobra.Command{
	Use:   "pdfextract <pdf> [flags]",
	Short: "Extract text from PDF files by page range or section",
	Long: `pdfextract pulls textual content out of a PDF over a page range, or over
the span of a numbered section located by scanning page text, and renders
it as plain text, markdown, JSON, YAML, or HTML.

Extraction is delegated to one of two backends: fitz (MuPDF bindings,
preferred) or ledongthuc (pure Go). The default "auto" picks the first
one compiled into the binary.

Examples:
  # Extract pages 297-316
  pdfextract input.pdf --start 297 --end 316

  # Extract a section located by its label
  pdfextract input.pdf --section "14.1" --search-start 297 --search-end 316

  # Write markdown to a file
  pdfextract input.pdf --start 1 --end 20 --format markdown -o out.md`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfextract.yaml or ~/.config/pdfextract/config.yaml)")
	rootCmd.SilenceUsage = true
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfextract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfextract"))
		}
	}

	viper.SetEnvPrefix("PDFEXTRACT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
