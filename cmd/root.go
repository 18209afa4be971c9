package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pdftools/internal/config"
	"pdftools/internal/logger"
)

var version = "1.0.0"

// cfg holds the loaded configuration for all subcommands.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pdftools",
	Short: "pdftools - a command-line toolbox for PDF manipulation",
	Long: `pdftools is a command-line toolbox for working with PDF files.

It can compress, rotate, watermark, protect, unlock, sign and OCR
documents, replace text in place while preserving layout, extract text
positions for preview overlays, and convert PDFs to DOCX, XLSX, PPTX
and HTML.

Structured results are printed to stdout as JSON; logs go to stderr.`,
	Version: version,
}

// Execute runs the CLI with the given configuration.
func Execute(c *config.Config) {
	cfg = c
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
