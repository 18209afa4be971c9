package cmd

import (
	"github.com/spf13/cobra"

	"pdftools/internal/logger"
	"pdftools/internal/transform"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate [input.pdf] [output.pdf]",
	Short: "Rotate pages of a PDF",
	Long: `Rotate pages of a PDF by 90, 180 or 270 degrees.

By default every page is rotated; --pages limits the rotation to a
comma separated list of 0-indexed page numbers. The angle is added to
each page's existing rotation, so rotating a document twice by 90
degrees is the same as rotating it once by 180.`,
	Example: `  # Turn a landscape scan upright
  pdftools rotate scan.pdf upright.pdf --degrees 270

  # Rotate only the first and third page
  pdftools rotate scan.pdf out.pdf --degrees 90 --pages 0,2`,
	Args: cobra.ExactArgs(2),
	RunE: runRotate,
}

func init() {
	rootCmd.AddCommand(rotateCmd)

	rotateCmd.Flags().IntP("degrees", "d", 90, "Rotation angle: 90, 180 or 270")
	rotateCmd.Flags().IntSliceP("pages", "p", nil, "0-indexed pages to rotate (default all)")
}

func runRotate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("rotate")
	inputPath, outputPath := args[0], args[1]
	degrees, _ := cmd.Flags().GetInt("degrees")
	pages, _ := cmd.Flags().GetIntSlice("pages")

	if _, err := validatePDFFile(inputPath, log); err != nil {
		return err
	}

	if err := transform.Rotate(inputPath, outputPath, degrees, pages); err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("Rotation failed")
		return err
	}

	return printJSON(map[string]any{
		"success": true,
		"output":  outputPath,
		"degrees": degrees,
	})
}
