// Package transform bundles single-file PDF operations: compression,
// rotation, watermarking, encryption, decryption and signature stamping.
// Every operation reads one input PDF and writes one output PDF, leaving
// the input untouched.
package transform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var (
	// ErrFileNotFound indicates the input PDF does not exist.
	ErrFileNotFound = errors.New("PDF file not found")

	// ErrInvalidPDF indicates the file is not a readable PDF.
	ErrInvalidPDF = errors.New("invalid PDF file")

	// ErrInvalidRotation indicates an angle other than 90, 180 or 270.
	ErrInvalidRotation = errors.New("rotation must be 90, 180 or 270 degrees")

	// ErrInvalidLevel indicates an unknown compression level.
	ErrInvalidLevel = errors.New("compression level must be low, medium or high")

	// ErrInvalidPages indicates a page selection with no usable entries.
	ErrInvalidPages = errors.New("no valid pages selected")

	// ErrEmptyPassword indicates a missing password for protect or unlock.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrAlreadyEncrypted indicates an attempt to protect an encrypted PDF.
	ErrAlreadyEncrypted = errors.New("PDF is already encrypted, unlock it first")

	// ErrInvalidColor indicates a malformed hex color string.
	ErrInvalidColor = errors.New("invalid hex color")

	// ErrInvalidSignature indicates signature input that is neither text
	// nor decodable image data.
	ErrInvalidSignature = errors.New("invalid signature data")
)

func newConf() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// checkInput verifies the input exists and parses as a PDF.
func checkInput(path string, conf *model.Configuration) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if info.IsDir() || !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("%w: %s", ErrInvalidPDF, path)
	}
	if err := api.ValidateFile(path, conf); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	return nil
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

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
