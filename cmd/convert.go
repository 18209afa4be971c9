package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pdftools/internal/convert"
	"pdftools/internal/logger"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input.pdf] [output]",
	Short: "Convert a PDF to DOCX, XLSX, PPTX or HTML",
	Long: `Convert a PDF into another format, chosen by the output extension or
the --format flag.

  docx  text content as paragraphs, page breaks preserved
  xlsx  one sheet per page, text lines as rows
  pptx  one slide per page, rendered as a full-slide image
  html  one positioned section per page

Conversions are content-oriented; exact print layout is only preserved
by the image-based pptx output.`,
	Example: `  pdftools convert report.pdf report.docx
  pdftools convert table.pdf table.xlsx
  pdftools convert deck.pdf deck.pptx --dpi 200
  pdftools convert page.pdf page.html`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("format", "f", "", "Target format: docx, xlsx, pptx or html (default: from output extension)")
	convertCmd.Flags().Int("dpi", 0, "Render resolution for pptx slides (overrides configuration)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("convert")
	inputPath, outputPath := args[0], args[1]

	format, _ := cmd.Flags().GetString("format")
	dpi, _ := cmd.Flags().GetInt("dpi")
	if dpi <= 0 {
		dpi = cfg.RenderDPI
	}
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
	}

	if _, err := validatePDFFile(inputPath, log); err != nil {
		return err
	}

	var err error
	switch format {
	case "docx":
		err = convert.ToDOCX(inputPath, outputPath)
	case "xlsx":
		err = convert.ToXLSX(inputPath, outputPath, cfg.LineTolerance)
	case "pptx":
		err = convert.ToPPTX(inputPath, outputPath, dpi)
	case "html":
		title := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		err = convert.ToHTML(inputPath, outputPath, title)
	default:
		return fmt.Errorf("unsupported target format %q (expected docx, xlsx, pptx or html)", format)
	}
	if err != nil {
		log.Error().Err(err).Str("file", inputPath).Str("format", format).Msg("Conversion failed")
		return err
	}

	return printJSON(map[string]any{
		"success": true,
		"output":  outputPath,
		"format":  format,
	})
}
