package ocr

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gardar/ocrchestra/pkg/pdfocr"
	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"

	"pdftools/internal/logger"
)

type tesseractService struct {
	opts Options
}

func (s *tesseractService) ProcessPDF(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	start := time.Now()
	log := logger.WithComponent("ocr")

	if _, err := os.Stat(inputPath); err != nil {
		return nil, newError("open", ErrFileNotFound, inputPath)
	}
	doc, err := fitz.New(inputPath)
	if err != nil {
		return nil, newError("open", ErrInvalidPDF, err.Error())
	}
	defer doc.Close()

	result := &Result{PageCount: doc.NumPage()}

	if hasTextLayer(doc) {
		log.Info().Str("input", inputPath).Msg("document already searchable, copying through")
		if err := copyFile(inputPath, outputPath); err != nil {
			return nil, newError("copy", err, outputPath)
		}
		result.CopiedThrough = true
		result.ProcessedAt = time.Now()
		result.ProcessingDuration = time.Since(start)
		return result, nil
	}

	images := make([][]byte, 0, result.PageCount)
	hocrPages := make([]string, 0, result.PageCount)

	for i := 0; i < result.PageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, newError("process", err, "")
		}

		pngData, err := renderPage(doc, i, s.opts.DPI)
		if err != nil {
			return nil, newError("render", ErrRenderFailed, err.Error())
		}
		images = append(images, pngData)

		hocr, err := s.recognize(pngData)
		if err != nil {
			// keep the page as a bare image rather than dropping it
			log.Warn().Err(err).Int("page", i+1).Msg("recognition failed, embedding page without text layer")
			result.FailedPages = append(result.FailedPages, i+1)
			hocr = ""
		}
		hocrPages = append(hocrPages, hocr)
	}

	merged := mergeHOCRPages(hocrPages)
	out, err := pdfocr.AssembleWithOCR(merged, images, pdfocr.OCRConfig{Font: pdfocr.DefaultFont})
	if err != nil {
		return nil, newError("assemble", ErrAssembleFailed, err.Error())
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return nil, newError("write", err, outputPath)
	}

	result.ProcessedAt = time.Now()
	result.ProcessingDuration = time.Since(start)
	log.Info().
		Str("output", outputPath).
		Int("pages", result.PageCount).
		Int("failed_pages", len(result.FailedPages)).
		Dur("duration", result.ProcessingDuration).
		Msg("built searchable PDF")
	return result, nil
}

// recognize runs one rendered page through Tesseract and returns its HOCR.
// A fresh client per page keeps recognition state from leaking across
// pages.
func (s *tesseractService) recognize(pngData []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(strings.Split(s.opts.Language, "+")...); err != nil {
		return "", err
	}
	if err := client.SetImageFromBytes(pngData); err != nil {
		return "", err
	}
	return client.HOCRText()
}

func renderPage(doc *fitz.Document, page, dpi int) ([]byte, error) {
	img, err := doc.ImageDPI(page, float64(dpi))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// hasTextLayer reports whether any page of the document carries extractable
// text.
func hasTextLayer(doc *fitz.Document) bool {
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err == nil && strings.TrimSpace(text) != "" {
			return true
		}
	}
	return false
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
