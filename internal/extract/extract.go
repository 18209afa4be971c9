// Package extract reports the position of every piece of text in a PDF in
// viewer coordinates, for callers that overlay selection boxes on a
// rendered preview.
package extract

import (
	"fmt"

	"pdftools/internal/logger"
	"pdftools/internal/pdfpage"
	"pdftools/pkg/models"
)

// TextItems extracts all text spans of the document at path. Coordinates
// are converted from PDF point space (bottom-left origin) to top-left
// origin and multiplied by scale, matching a preview rendered at that
// scale. lineTolerance is the vertical grouping band passed through to span
// extraction.
func TextItems(path string, scale, lineTolerance float64) (*models.ExtractResult, error) {
	if scale <= 0 {
		scale = 2.0
	}

	pages, err := pdfpage.ExtractPages(path, lineTolerance)
	if err != nil {
		return nil, err
	}

	result := &models.ExtractResult{Success: true, Scale: scale}
	for _, p := range pages {
		result.Pages = append(result.Pages, models.PageInfo{
			Page:   p.Number,
			Width:  p.Width * scale,
			Height: p.Height * scale,
		})
		for _, s := range p.Spans {
			result.TextItems = append(result.TextItems, models.TextItem{
				Text:     s.Text,
				Page:     p.Number,
				X:        s.Box.X0 * scale,
				Y:        pdfpage.FlipY(s.Box.Y1, p.Height) * scale,
				Width:    s.Box.Width() * scale,
				Height:   s.Box.Height() * scale,
				FontSize: s.FontSize,
				FontName: s.FontName,
				Color:    hexColor(s.Color),
			})
		}
	}

	log := logger.WithComponent("extract")
	log.Debug().
		Str("path", path).
		Int("items", len(result.TextItems)).
		Float64("scale", scale).
		Msg("extracted text positions")
	return result, nil
}

// hexColor renders a normalized RGB triple as #rrggbb.
func hexColor(rgb [3]float64) string {
	clamp := func(v float64) int {
		n := int(v*255 + 0.5)
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return n
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(rgb[0]), clamp(rgb[1]), clamp(rgb[2]))
}
