package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pdftools/internal/logger"
	"pdftools/internal/transform"
)

var signCmd = &cobra.Command{
	Use:   "sign [input.pdf] [output.pdf]",
	Short: "Stamp a signature onto a PDF page",
	Long: `Stamp a signature onto one page of a PDF.

The signature is either plain text, rendered in black 16pt Helvetica,
or an image passed as base64 (or as a file via --image-file). Position
is given in points from the bottom-left corner of the page.`,
	Example: `  # Text signature near the bottom of page 3
  pdftools sign contract.pdf signed.pdf --text "Jane Doe" --page 3 --x 72 --y 100

  # Image signature from a PNG file
  pdftools sign contract.pdf signed.pdf --image-file signature.png --x 300 --y 80 --width 150`,
	Args: cobra.ExactArgs(2),
	RunE: runSign,
}

func init() {
	rootCmd.AddCommand(signCmd)

	signCmd.Flags().String("text", "", "Signature text")
	signCmd.Flags().String("image", "", "Base64-encoded PNG or JPEG signature image")
	signCmd.Flags().String("image-file", "", "Path to a PNG or JPEG signature image")
	signCmd.Flags().Int("page", 1, "1-based page to sign")
	signCmd.Flags().Float64("x", 72, "Horizontal position in points from the left edge")
	signCmd.Flags().Float64("y", 72, "Vertical position in points from the bottom edge")
	signCmd.Flags().Float64("width", 0, "Image signature width in points (default 150)")
	signCmd.Flags().Float64("height", 0, "Image signature height in points (default 50)")
}

func runSign(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("sign")
	inputPath, outputPath := args[0], args[1]

	text, _ := cmd.Flags().GetString("text")
	imageB64, _ := cmd.Flags().GetString("image")
	imageFile, _ := cmd.Flags().GetString("image-file")
	page, _ := cmd.Flags().GetInt("page")
	x, _ := cmd.Flags().GetFloat64("x")
	y, _ := cmd.Flags().GetFloat64("y")
	width, _ := cmd.Flags().GetFloat64("width")
	height, _ := cmd.Flags().GetFloat64("height")

	if _, err := validatePDFFile(inputPath, log); err != nil {
		return err
	}

	opts := transform.SignatureOptions{Page: page, X: x, Y: y, Width: width, Height: height}

	var err error
	switch {
	case text != "":
		err = transform.SignText(inputPath, outputPath, text, opts)
	case imageFile != "":
		var raw []byte
		raw, err = os.ReadFile(imageFile)
		if err != nil {
			return fmt.Errorf("reading signature image: %w", err)
		}
		err = transform.SignImage(inputPath, outputPath, encodeBase64(raw), opts)
	case imageB64 != "":
		err = transform.SignImage(inputPath, outputPath, imageB64, opts)
	default:
		return fmt.Errorf("one of --text, --image or --image-file is required")
	}
	if err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("Signing failed")
		return err
	}

	return printJSON(map[string]any{
		"success": true,
		"output":  outputPath,
		"page":    page,
	})
}
