package cmd

import (
	"github.com/spf13/cobra"

	"pdftools/internal/logger"
	"pdftools/internal/transform"
)

var watermarkCmd = &cobra.Command{
	Use:   "watermark [input.pdf] [output.pdf] [text]",
	Short: "Stamp a text watermark on every page",
	Long: `Stamp a semi-transparent text watermark on every page of a PDF.

The watermark runs diagonally from the lower left to the upper right by
default; --position center places it horizontally in the page center
instead.`,
	Example: `  # Default diagonal gray watermark
  pdftools watermark draft.pdf marked.pdf "CONFIDENTIAL"

  # Centered red watermark at lower opacity
  pdftools watermark draft.pdf marked.pdf "DRAFT" --position center --color "#CC0000" --opacity 0.2`,
	Args: cobra.ExactArgs(3),
	RunE: runWatermark,
}

func init() {
	rootCmd.AddCommand(watermarkCmd)

	watermarkCmd.Flags().String("position", "diagonal", "Watermark position: diagonal or center")
	watermarkCmd.Flags().Int("font-size", 48, "Watermark font size in points")
	watermarkCmd.Flags().Float64("opacity", 0.3, "Watermark opacity between 0 and 1")
	watermarkCmd.Flags().String("color", "#808080", "Watermark color as #rrggbb")
}

func runWatermark(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("watermark")
	inputPath, outputPath, text := args[0], args[1], args[2]

	position, _ := cmd.Flags().GetString("position")
	fontSize, _ := cmd.Flags().GetInt("font-size")
	opacity, _ := cmd.Flags().GetFloat64("opacity")
	hexColor, _ := cmd.Flags().GetString("color")

	if _, err := validatePDFFile(inputPath, log); err != nil {
		return err
	}

	opts := transform.WatermarkOptions{
		Position: transform.WatermarkPosition(position),
		FontSize: fontSize,
		Opacity:  opacity,
		HexColor: hexColor,
	}
	if err := transform.Watermark(inputPath, outputPath, text, opts); err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("Watermarking failed")
		return err
	}

	return printJSON(map[string]any{
		"success":  true,
		"output":   outputPath,
		"position": position,
	})
}
