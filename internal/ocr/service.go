// Package ocr turns scanned PDFs into searchable ones using a local
// Tesseract installation.
//
// Each page is rasterized, run through Tesseract for HOCR output, and the
// recognized text is embedded as an invisible layer positioned over the
// page image. Documents that already carry a text layer are copied through
// untouched, since re-recognizing rendered text only degrades it.
//
// Requirements:
//   - Tesseract must be installed with the language packs named in the
//     configured language string (e.g. "eng", "deu", "eng+deu").
//
// Implementation Details:
//   - Pages render at the configured DPI (300 by default); higher values
//     improve recognition on small print at the cost of memory.
//   - A page whose recognition fails is kept as a bare image so the output
//     always has every page of the input.
package ocr

import (
	"context"
	"time"
)

// Service defines the interface for building searchable PDFs.
type Service interface {
	// ProcessPDF reads the PDF at inputPath and writes a searchable
	// version to outputPath.
	ProcessPDF(ctx context.Context, inputPath, outputPath string) (*Result, error)
}

// Result describes the outcome of one OCR run.
type Result struct {
	// PageCount is the number of pages in the input document.
	PageCount int `json:"page_count"`

	// CopiedThrough is true when the input already had a text layer and
	// was passed through without recognition.
	CopiedThrough bool `json:"copied_through"`

	// FailedPages lists 1-based pages whose recognition failed and which
	// were embedded as bare images.
	FailedPages []int `json:"failed_pages,omitempty"`

	// ProcessedAt is the timestamp when processing completed.
	ProcessedAt time.Time `json:"processed_at"`

	// ProcessingDuration is how long the run took.
	ProcessingDuration time.Duration `json:"processing_duration"`
}

// Options configures the OCR pipeline.
type Options struct {
	// Language is the Tesseract language string, e.g. "eng" or "eng+deu".
	Language string

	// DPI is the rasterization resolution for pages without text.
	DPI int
}

// NewService creates a Tesseract-backed OCR service.
func NewService(opts Options) Service {
	if opts.Language == "" {
		opts.Language = "eng"
	}
	if opts.DPI <= 0 {
		opts.DPI = 300
	}
	return &tesseractService{opts: opts}
}
