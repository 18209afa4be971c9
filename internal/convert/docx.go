package convert

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"pdftools/internal/logger"
)

// ToDOCX converts the PDF into a Word document, one paragraph per text
// line, with a page break between source pages.
func ToDOCX(inputPath, outputPath string) error {
	doc, err := openDoc(inputPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	w := docx.New().WithDefaultTheme()
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return fmt.Errorf("extracting text of page %d: %w", i+1, err)
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimRight(line, " \t\r")
			p := w.AddParagraph()
			if line != "" {
				p.AddText(line)
			}
		}
		if i < doc.NumPage()-1 {
			w.AddParagraph().AddPageBreaks()
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if _, err := w.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("writing DOCX: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	log := logger.WithComponent("convert")
	log.Info().
		Str("output", outputPath).
		Int("pages", doc.NumPage()).
		Msg("converted PDF to DOCX")
	return nil
}
