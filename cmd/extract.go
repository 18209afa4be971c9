package cmd

import (
	"github.com/spf13/cobra"

	"pdftools/internal/extract"
	"pdftools/internal/logger"
)

var extractCmd = &cobra.Command{
	Use:   "extract [input.pdf]",
	Short: "Extract text positions as JSON",
	Long: `List every piece of text in the document with its position and size.

Coordinates use a top-left origin and are multiplied by --scale, so
they line up with a page preview rendered at that scale. The result is
printed to stdout as JSON.`,
	Example: `  # Positions matching a 2x preview
  pdftools extract form.pdf

  # Positions in plain PDF points
  pdftools extract form.pdf --scale 1`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().Float64("scale", 0, "Coordinate scale factor (overrides configuration)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("extract")
	inputPath := args[0]

	scale, _ := cmd.Flags().GetFloat64("scale")
	if scale <= 0 {
		scale = cfg.ExtractScale
	}

	if _, err := validatePDFFile(inputPath, log); err != nil {
		return err
	}

	result, err := extract.TextItems(inputPath, scale, cfg.LineTolerance)
	if err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("Extraction failed")
		return err
	}

	return printJSON(result)
}
