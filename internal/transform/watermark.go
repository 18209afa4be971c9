package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/color"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdftools/internal/logger"
)

// WatermarkPosition selects the layout of the watermark text.
type WatermarkPosition string

const (
	// WatermarkCenter places horizontal text in the page center.
	WatermarkCenter WatermarkPosition = "center"
	// WatermarkDiagonal slants the text across the page from the lower
	// left to the upper right.
	WatermarkDiagonal WatermarkPosition = "diagonal"
)

// WatermarkOptions configures Watermark. Zero values fall back to a gray
// 48pt Helvetica stamp at 30% opacity.
type WatermarkOptions struct {
	Position WatermarkPosition
	FontSize int
	Opacity  float64
	HexColor string
}

const defaultWatermarkColor = "#808080"

// Watermark stamps the given text on every page of the PDF.
func Watermark(inputPath, outputPath, text string, opts WatermarkOptions) error {
	conf := newConf()
	if err := checkInput(inputPath, conf); err != nil {
		return err
	}

	if opts.Position == "" {
		opts.Position = WatermarkDiagonal
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 48
	}
	if opts.Opacity <= 0 || opts.Opacity > 1 {
		opts.Opacity = 0.3
	}
	if opts.HexColor == "" {
		opts.HexColor = defaultWatermarkColor
	}
	col, err := parseHexColor(opts.HexColor)
	if err != nil {
		return err
	}

	// Start from the default watermark so the stamp machinery's internal
	// caches are initialized, then override the layout.
	wm := model.DefaultWatermarkConfig()
	wm.Mode = model.WMText
	wm.TextString = text
	wm.FontName = "Helvetica"
	wm.FontSize = opts.FontSize
	wm.ScaledFontSize = opts.FontSize
	wm.Scale = 1.0
	wm.ScaleAbs = true
	wm.Color = col
	wm.FillColor = col
	wm.Opacity = opts.Opacity
	wm.OnTop = true
	wm.Pos = types.Center
	if opts.Position == WatermarkDiagonal {
		wm.Diagonal = model.DiagonalLLToUR
	} else {
		wm.Diagonal = model.NoDiagonal
		wm.Rotation = 0
		wm.UserRotOrDiagonal = true
	}

	if err := api.AddWatermarksFile(inputPath, outputPath, nil, wm, conf); err != nil {
		return fmt.Errorf("stamping watermark: %w", err)
	}

	log := logger.WithComponent("transform")
	log.Info().
		Str("output", outputPath).
		Str("position", string(opts.Position)).
		Msg("watermarked PDF")
	return nil
}

// parseHexColor converts "#rrggbb" into a normalized color.
func parseHexColor(s string) (color.SimpleColor, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.SimpleColor{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.SimpleColor{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.SimpleColor{
		R: float32(v>>16&0xff) / 255,
		G: float32(v>>8&0xff) / 255,
		B: float32(v&0xff) / 255,
	}, nil
}
