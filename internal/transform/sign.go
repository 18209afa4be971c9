package transform

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/color"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdftools/internal/logger"
)

const (
	signatureFontSize = 16
	// Default footprint of an image signature in points.
	signatureImageWidth  = 150.0
	signatureImageHeight = 50.0
)

// SignatureOptions places a signature on one page. X and Y are points from
// the bottom-left page corner.
type SignatureOptions struct {
	Page int
	X    float64
	Y    float64
	// Width and Height bound image signatures; ignored for text. Zero
	// means the default footprint.
	Width  float64
	Height float64
}

// SignText stamps a text signature in black 16pt Helvetica.
func SignText(inputPath, outputPath, text string, opts SignatureOptions) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: empty signature text", ErrInvalidSignature)
	}
	conf := newConf()
	if err := checkInput(inputPath, conf); err != nil {
		return err
	}
	if err := copyFile(inputPath, outputPath); err != nil {
		return err
	}

	// Start from the default watermark so the stamp machinery's internal
	// caches are initialized, then override the layout.
	wm := model.DefaultWatermarkConfig()
	wm.Mode = model.WMText
	wm.TextString = text
	wm.FontName = "Helvetica"
	wm.FontSize = signatureFontSize
	wm.ScaledFontSize = signatureFontSize
	wm.Scale = 1.0
	wm.ScaleAbs = true
	wm.Color = color.Black
	wm.FillColor = color.Black
	wm.Diagonal = model.NoDiagonal
	wm.Rotation = 0
	wm.UserRotOrDiagonal = true
	wm.Opacity = 1.0
	wm.OnTop = true
	wm.Pos = types.BottomLeft
	wm.Dx = opts.X
	wm.Dy = opts.Y
	pages := []string{fmt.Sprintf("%d", pageOrFirst(opts.Page))}
	if err := api.AddWatermarksFile(outputPath, "", pages, wm, conf); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("stamping text signature: %w", err)
	}

	log := logger.WithComponent("transform")
	log.Info().
		Str("output", outputPath).
		Int("page", pageOrFirst(opts.Page)).
		Msg("signed PDF with text")
	return nil
}

// SignImage stamps a base64-encoded PNG or JPEG signature image, scaled to
// the requested footprint.
func SignImage(inputPath, outputPath, imageB64 string, opts SignatureOptions) error {
	conf := newConf()
	if err := checkInput(inputPath, conf); err != nil {
		return err
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(imageB64))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	imgCfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: undecodable image: %v", ErrInvalidSignature, err)
	}

	tmp, err := os.CreateTemp("", "signature-*."+format)
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	scale := signatureScale(imgCfg.Width, imgCfg.Height, opts)

	if err := copyFile(inputPath, outputPath); err != nil {
		return err
	}
	desc := fmt.Sprintf("pos:bl, rot:0, op:1, scale:%.4f abs", scale)
	wm, err := pdfcpu.ParseImageWatermarkDetails(tmp.Name(), desc, true, types.POINTS)
	if err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("building image signature: %w", err)
	}
	wm.Dx = opts.X
	wm.Dy = opts.Y

	pages := []string{fmt.Sprintf("%d", pageOrFirst(opts.Page))}
	if err := api.AddWatermarksFile(outputPath, "", pages, wm, conf); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("stamping image signature: %w", err)
	}

	log := logger.WithComponent("transform")
	log.Info().
		Str("output", outputPath).
		Str("format", format).
		Int("page", pageOrFirst(opts.Page)).
		Msg("signed PDF with image")
	return nil
}

// DefaultSignatureBox returns the default image signature footprint.
func DefaultSignatureBox() (w, h float64) {
	return signatureImageWidth, signatureImageHeight
}

// signatureScale fits an image of the given pixel dimensions into the
// requested footprint without distorting it, using the default box for
// dimensions the caller left at zero.
func signatureScale(imgW, imgH int, opts SignatureOptions) float64 {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width, _ = DefaultSignatureBox()
	}
	if height <= 0 {
		_, height = DefaultSignatureBox()
	}
	scale := width / float64(imgW)
	if h := height / float64(imgH); h < scale {
		scale = h
	}
	return scale
}

func pageOrFirst(p int) int {
	if p < 1 {
		return 1
	}
	return p
}
