package cmd

import (
	"github.com/spf13/cobra"

	"pdftools/internal/logger"
	"pdftools/internal/transform"
)

var compressCmd = &cobra.Command{
	Use:   "compress [input.pdf] [output.pdf]",
	Short: "Compress a PDF by optimizing its internal structure",
	Long: `Compress a PDF file by optimizing its object streams and removing
redundant data.

The level controls how aggressively objects are rewritten: low only
repacks streams, medium also consolidates resource dictionaries, high
additionally deduplicates identical content streams.

If the optimized file would be larger than the original, the original
is kept, so the output never grows. Compression statistics are printed
to stdout as JSON.`,
	Example: `  # Compress report.pdf into report_small.pdf
  pdftools compress report.pdf report_small.pdf

  # Squeeze a scanned document as far as possible
  pdftools compress scan.pdf scan_small.pdf --level high`,
	Args: cobra.ExactArgs(2),
	RunE: runCompress,
}

func init() {
	rootCmd.AddCommand(compressCmd)

	compressCmd.Flags().StringP("level", "l", transform.LevelMedium, "Compression level: low, medium or high")
}

func runCompress(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("compress")
	inputPath, outputPath := args[0], args[1]
	level, _ := cmd.Flags().GetString("level")

	if _, err := validatePDFFile(inputPath, log); err != nil {
		return err
	}

	stats, err := transform.Compress(inputPath, outputPath, level)
	if err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("Compression failed")
		return err
	}

	return printJSON(stats)
}
