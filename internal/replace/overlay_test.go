package replace

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdftools/internal/pdfpage"
)

func TestRedactThenInsertOnFixture(t *testing.T) {
	path := fixturePDF(t, "Confidential")
	w := newOverlayWriter(zerolog.Nop())
	box := pdfpage.Rect{X0: 72, Y0: 90, X1: 200, Y1: 110}

	require.NoError(t, w.redact(path, 1, box))

	attempt, err := w.insert(path, 1, box, "Public", "Helvetica", 12)
	require.NoError(t, err)
	assert.Equal(t, "fitted", attempt)
}

func TestCoreFont(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Helvetica", "Helvetica"},
		{"ABCDEE+Calibri-Bold", "Helvetica-Bold"},
		{"Arial-ItalicMT", "Helvetica-Oblique"},
		{"Arial-BoldItalicMT", "Helvetica-BoldOblique"},
		{"Times-Roman", "Times-Roman"},
		{"TimesNewRomanPS-BoldMT", "Times-Bold"},
		{"Georgia-Italic", "Times-Italic"},
		{"Courier", "Courier"},
		{"XYZABC+CourierNewPS-BoldMT", "Courier-Bold"},
		{"JetBrainsMono-Regular", "Courier"},
		{"Symbol", "Symbol"},
		{"ZapfDingbats", "ZapfDingbats"},
		{"", "Helvetica"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, coreFont(tt.in), "coreFont(%q)", tt.in)
	}
}

func TestFitFontSizeShrinksToBox(t *testing.T) {
	box := pdfpage.Rect{X0: 0, Y0: 0, X1: 64, Y1: 12}

	// 16 chars at 10pt need ~80pt, the box offers 64, 8pt fits exactly
	got := fitFontSize("aaaaaaaaaaaaaaaa", box, 10)
	assert.Equal(t, 8, got)
	assert.LessOrEqual(t, float64(got)*avgGlyphRatio*16, box.Width())
}

func TestFitFontSizeKeepsSizeWhenItFits(t *testing.T) {
	box := pdfpage.Rect{X0: 0, Y0: 0, X1: 200, Y1: 12}
	assert.Equal(t, 10, fitFontSize("short", box, 10))
}

func TestFitFontSizeNeverBelowMinimum(t *testing.T) {
	box := pdfpage.Rect{X0: 0, Y0: 0, X1: 5, Y1: 12}
	assert.Equal(t, minInsertFontSize, fitFontSize("far too long for this box", box, 12))
}

func TestFitFontSizeEmptyText(t *testing.T) {
	box := pdfpage.Rect{X0: 0, Y0: 0, X1: 50, Y1: 12}
	assert.Equal(t, 10, fitFontSize("", box, 10))
}
