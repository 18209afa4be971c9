package replace

import (
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/color"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/rs/zerolog"

	"pdftools/internal/pdfpage"
)

const (
	// Padding added around a redaction box so glyph edges do not peek out.
	redactPad = 1.0
	// Rough width of an average glyph as a multiple of the font size, used
	// to shrink text into a bounding box.
	avgGlyphRatio = 0.5

	minInsertFontSize     = 6
	defaultInsertFontSize = 10
	fallbackFont          = "Helvetica"
)

// overlayWriter paints rectangles and text onto existing pages through the
// pdfcpu stamp machinery. Every call mutates the file at path in place.
type overlayWriter struct {
	conf *model.Configuration
	log  zerolog.Logger
}

func newOverlayWriter(log zerolog.Logger) *overlayWriter {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &overlayWriter{conf: conf, log: log}
}

// textStamp builds a horizontal text stamp anchored at the bottom-left
// corner. Starting from the default watermark keeps the internal caches the
// stamp machinery relies on initialized.
func textStamp(text, fontName string, fontSize int, dx, dy float64) *model.Watermark {
	wm := model.DefaultWatermarkConfig()
	wm.Mode = model.WMText
	wm.TextString = text
	wm.FontName = fontName
	wm.FontSize = fontSize
	wm.ScaledFontSize = fontSize
	wm.Scale = 1.0
	wm.ScaleAbs = true
	wm.Diagonal = model.NoDiagonal
	wm.Rotation = 0
	wm.UserRotOrDiagonal = true
	wm.Opacity = 1.0
	wm.OnTop = true
	wm.Pos = types.BottomLeft
	wm.Dx = dx
	wm.Dy = dy
	wm.Update = false
	return wm
}

// redact paints an opaque white rectangle over the box on the given page.
// The underlying text objects remain in the file, so callers tracking page
// state must treat the covered region as blank themselves.
func (w *overlayWriter) redact(path string, page int, box pdfpage.Rect) error {
	box = box.Expand(redactPad)
	bg := color.White
	wm := textStamp(" ", fallbackFont, defaultInsertFontSize, box.X0, box.Y0)
	wm.BgColor = &bg
	wm.Width = int(box.Width())
	wm.Height = int(box.Height())
	pages := []string{fmt.Sprintf("%d", page)}
	if err := api.AddWatermarksFile(path, "", pages, wm, w.conf); err != nil {
		return fmt.Errorf("painting redaction box on page %d: %w", page, err)
	}
	return nil
}

// insertAttempt is one way of placing the replacement text.
type insertAttempt struct {
	name     string
	fontName string
	fontSize int
}

// insert stamps text into the vacated box, trying progressively safer
// typography until one attempt sticks: the original font shrunk to fit the
// box, the original font at its original size, Helvetica at the original
// size, Helvetica at a small default. Returns the name of the attempt that
// succeeded.
func (w *overlayWriter) insert(path string, page int, box pdfpage.Rect, text, fontName string, fontSize float64) (string, error) {
	origFont := coreFont(fontName)
	origSize := int(fontSize)
	if origSize < minInsertFontSize {
		origSize = defaultInsertFontSize
	}

	attempts := []insertAttempt{
		{name: "fitted", fontName: origFont, fontSize: fitFontSize(text, box, origSize)},
		{name: "original", fontName: origFont, fontSize: origSize},
		{name: "fallback_font", fontName: fallbackFont, fontSize: origSize},
		{name: "fallback_default", fontName: fallbackFont, fontSize: defaultInsertFontSize},
	}

	var lastErr error
	for _, a := range attempts {
		err := w.stampText(path, page, box, text, a.fontName, a.fontSize)
		if err == nil {
			w.log.Debug().
				Str("attempt", a.name).
				Str("font", a.fontName).
				Int("size", a.fontSize).
				Int("page", page).
				Msg("inserted replacement text")
			return a.name, nil
		}
		lastErr = err
		w.log.Debug().
			Err(err).
			Str("attempt", a.name).
			Msg("insertion attempt failed")
	}
	return "", lastErr
}

func (w *overlayWriter) stampText(path string, page int, box pdfpage.Rect, text, fontName string, fontSize int) error {
	wm := textStamp(text, fontName, fontSize, box.X0, box.Y0)
	wm.Color = color.Black
	wm.FillColor = color.Black
	pages := []string{fmt.Sprintf("%d", page)}
	return api.AddWatermarksFile(path, "", pages, wm, w.conf)
}

// fitFontSize shrinks the original size until the text plausibly fits the
// box width, estimating glyph width as a fixed fraction of the size.
func fitFontSize(text string, box pdfpage.Rect, origSize int) int {
	n := len([]rune(text))
	if n == 0 || box.Width() <= 0 {
		return origSize
	}
	size := origSize
	for size > minInsertFontSize {
		if float64(n)*avgGlyphRatio*float64(size) <= box.Width() {
			break
		}
		size--
	}
	return size
}

// coreFont maps a font name as extracted from page content to one of the
// built-in core fonts the stamp machinery can always render. Extracted
// names often carry a subset prefix such as "ABCDEE+Calibri-Bold".
func coreFont(name string) string {
	if i := strings.IndexByte(name, '+'); i >= 0 {
		name = name[i+1:]
	}
	lower := strings.ToLower(name)

	bold := strings.Contains(lower, "bold")
	italic := strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")

	switch {
	case strings.Contains(lower, "courier") || strings.Contains(lower, "mono"):
		return styled("Courier", bold, italic, "Oblique")
	case strings.Contains(lower, "times") || strings.Contains(lower, "serif") || strings.Contains(lower, "georgia") || strings.Contains(lower, "garamond"):
		if !bold && !italic {
			return "Times-Roman"
		}
		return styled("Times", bold, italic, "Italic")
	case strings.Contains(lower, "symbol"):
		return "Symbol"
	case strings.Contains(lower, "zapf") || strings.Contains(lower, "dingbat"):
		return "ZapfDingbats"
	default:
		return styled("Helvetica", bold, italic, "Oblique")
	}
}

func styled(family string, bold, italic bool, italicName string) string {
	switch {
	case bold && italic:
		return family + "-Bold" + italicName
	case bold:
		return family + "-Bold"
	case italic:
		return family + "-" + italicName
	default:
		return family
	}
}
