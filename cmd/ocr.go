package cmd

import (
	"github.com/spf13/cobra"

	"pdftools/internal/logger"
	"pdftools/internal/ocr"
)

var ocrCmd = &cobra.Command{
	Use:   "ocr [input.pdf] [output.pdf]",
	Short: "Make a scanned PDF searchable using Tesseract",
	Long: `Run OCR over a scanned PDF and write a searchable copy.

Each page is rendered, recognized with Tesseract and rebuilt with an
invisible text layer aligned to the page image. Documents that already
contain text are copied through unchanged.

Tesseract and the language packs named by --language must be installed.`,
	Example: `  # OCR an English scan at the default 300 DPI
  pdftools ocr scan.pdf scan_searchable.pdf

  # German and English, lower resolution
  pdftools ocr brief.pdf brief_searchable.pdf --language deu+eng --dpi 200`,
	Args: cobra.ExactArgs(2),
	RunE: runOCR,
}

func init() {
	rootCmd.AddCommand(ocrCmd)

	ocrCmd.Flags().StringP("language", "l", "", "Tesseract language string, e.g. eng or eng+deu")
	ocrCmd.Flags().Int("dpi", 0, "Rendering resolution for pages without text")
	ocrCmd.Flags().Int("timeout", 600, "Processing timeout in seconds")
}

func runOCR(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("ocr")
	inputPath, outputPath := args[0], args[1]

	language, _ := cmd.Flags().GetString("language")
	dpi, _ := cmd.Flags().GetInt("dpi")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	if language == "" {
		language = cfg.OCRLanguage
	}
	if dpi <= 0 {
		dpi = cfg.RenderDPI
	}

	if _, err := validatePDFFile(inputPath, log); err != nil {
		return err
	}

	ctx, cancel := createContextWithTimeout(timeoutSecs, log)
	defer cancel()

	log.Info().
		Str("file", inputPath).
		Str("language", language).
		Int("dpi", dpi).
		Msg("Starting OCR processing")

	svc := ocr.NewService(ocr.Options{Language: language, DPI: dpi})
	result, err := svc.ProcessPDF(ctx, inputPath, outputPath)
	if err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("OCR processing failed")
		return err
	}

	return printJSON(map[string]any{
		"success":        true,
		"output":         outputPath,
		"page_count":     result.PageCount,
		"copied_through": result.CopiedThrough,
		"failed_pages":   result.FailedPages,
		"duration":       result.ProcessingDuration.String(),
	})
}
