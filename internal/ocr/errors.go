package ocr

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates the input PDF does not exist.
	ErrFileNotFound = errors.New("PDF file not found")

	// ErrInvalidPDF indicates the file could not be opened as a PDF.
	ErrInvalidPDF = errors.New("invalid PDF file")

	// ErrRenderFailed indicates a page could not be rasterized.
	ErrRenderFailed = errors.New("page rendering failed")

	// ErrAssembleFailed indicates the searchable PDF could not be built
	// from the rendered pages and recognized text.
	ErrAssembleFailed = errors.New("searchable PDF assembly failed")
)

// OCRError wraps a pipeline failure with the operation that produced it.
type OCRError struct {
	Op      string
	Err     error
	Details string
}

func (e *OCRError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ocr %s: %v (%s)", e.Op, e.Err, e.Details)
	}
	return fmt.Sprintf("ocr %s: %v", e.Op, e.Err)
}

func (e *OCRError) Unwrap() error { return e.Err }

func (e *OCRError) Is(target error) bool { return errors.Is(e.Err, target) }

func newError(op string, err error, details string) *OCRError {
	return &OCRError{Op: op, Err: err, Details: details}
}
