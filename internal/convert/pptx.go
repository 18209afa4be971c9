package convert

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"pdftools/internal/logger"
)

// ToPPTX converts the PDF into a slide deck with one slide per page. Each
// page is rasterized at the given DPI and placed as a full-slide image, so
// the deck looks exactly like the document at the cost of editability.
func ToPPTX(inputPath, outputPath string, dpi int) error {
	if dpi <= 0 {
		dpi = 150
	}
	doc, err := openDoc(inputPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	bound, err := doc.Bound(0)
	if err != nil {
		return fmt.Errorf("reading page bounds: %w", err)
	}
	deck := newDeck(float64(bound.Dx()), float64(bound.Dy()))

	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return fmt.Errorf("rendering page %d: %w", i+1, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encoding page %d: %w", i+1, err)
		}
		deck.addSlide(buf.Bytes())
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := deck.write(out); err != nil {
		out.Close()
		os.Remove(outputPath)
		return fmt.Errorf("writing PPTX: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	log := logger.WithComponent("convert")
	log.Info().
		Str("output", outputPath).
		Int("slides", doc.NumPage()).
		Int("dpi", dpi).
		Msg("converted PDF to PPTX")
	return nil
}
