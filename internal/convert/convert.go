// Package convert renders PDF documents into other office and web formats.
//
// Conversions are layout-lossy by design: DOCX and XLSX carry the text
// content in reading order, HTML carries the renderer's markup per page,
// and PPTX carries one full-page image per slide.
package convert

import (
	"errors"
	"fmt"
	"os"

	"github.com/gen2brain/go-fitz"
)

var (
	// ErrFileNotFound indicates the input PDF does not exist.
	ErrFileNotFound = errors.New("PDF file not found")

	// ErrInvalidPDF indicates the input could not be opened as a PDF.
	ErrInvalidPDF = errors.New("invalid PDF file")

	// ErrEmptyDocument indicates the input has no pages.
	ErrEmptyDocument = errors.New("document has no pages")
)

// openDoc opens the PDF at path and rejects empty documents.
func openDoc(path string) (*fitz.Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	if doc.NumPage() == 0 {
		doc.Close()
		return nil, ErrEmptyDocument
	}
	return doc, nil
}
