package pdfpage

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frag(s string, x, y, w, size float64, font string) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w, FontSize: size, Font: font}
}

func TestBuildLinesGroupsByBaseline(t *testing.T) {
	texts := []pdf.Text{
		frag("Invoice", 72, 700, 40, 12, "Helvetica-Bold"),
		frag("Number", 120, 700.4, 42, 12, "Helvetica-Bold"),
		frag("Total", 72, 650, 30, 12, "Helvetica"),
	}

	lines := buildLines(texts, 0.5)
	require.Len(t, lines, 2)
	assert.Equal(t, "Invoice Number", lines[0].Text)
	assert.Equal(t, "Total", lines[1].Text)
}

func TestBuildLinesTopOfPageFirst(t *testing.T) {
	texts := []pdf.Text{
		frag("bottom", 72, 100, 40, 10, "Helvetica"),
		frag("top", 72, 700, 20, 10, "Helvetica"),
	}

	lines := buildLines(texts, 0.5)
	require.Len(t, lines, 2)
	assert.Equal(t, "top", lines[0].Text)
	assert.Equal(t, "bottom", lines[1].Text)
}

func TestBuildLinesSkipsWhitespaceFragments(t *testing.T) {
	texts := []pdf.Text{
		frag("  ", 72, 700, 5, 10, "Helvetica"),
		frag("word", 80, 700, 25, 10, "Helvetica"),
	}

	lines := buildLines(texts, 0.5)
	require.Len(t, lines, 1)
	assert.Equal(t, "word", lines[0].Text)
	assert.Len(t, lines[0].Spans, 1)
}

func TestRowToLineSplitsOnFontChange(t *testing.T) {
	row := []pdf.Text{
		frag("Name:", 72, 700, 32, 10, "Helvetica-Bold"),
		frag("Acme", 108, 700, 28, 10, "Helvetica"),
	}

	ln := rowToLine(row)
	require.Len(t, ln.Spans, 2)
	assert.Equal(t, "Name:", ln.Spans[0].Text)
	assert.Equal(t, "Helvetica-Bold", ln.Spans[0].FontName)
	assert.Equal(t, "Acme", ln.Spans[1].Text)
	assert.Equal(t, "Name: Acme", ln.Text)
}

func TestRowToLineMergesWordsWithinSpan(t *testing.T) {
	row := []pdf.Text{
		frag("paid", 72, 700, 22, 10, "Helvetica"),
		// gap of 6pt at size 10 is a word break, not a span break
		frag("in", 100, 700, 10, 10, "Helvetica"),
		frag("full", 113, 700, 18, 10, "Helvetica"),
	}

	ln := rowToLine(row)
	require.Len(t, ln.Spans, 1)
	assert.Equal(t, "paid in full", ln.Spans[0].Text)
	assert.InDelta(t, 72, ln.Spans[0].Box.X0, 1e-9)
	assert.InDelta(t, 131, ln.Spans[0].Box.X1, 1e-9)
}

func TestRowToLineSplitsOnLargeGap(t *testing.T) {
	row := []pdf.Text{
		frag("left", 72, 700, 20, 10, "Helvetica"),
		// 400pt gap at size 10 separates table columns
		frag("right", 492, 700, 26, 10, "Helvetica"),
	}

	ln := rowToLine(row)
	require.Len(t, ln.Spans, 2)
	assert.Equal(t, "left right", ln.Text)
}

func TestFragmentBoxEstimatesMissingWidth(t *testing.T) {
	// extractors routinely report W == 0 per glyph; the box must still
	// have a usable width
	b := fragmentBox(frag("abc", 100, 500, 0, 12, "Helvetica"), 12)
	assert.False(t, b.IsDegenerate())
	assert.InDelta(t, 118, b.X1, 1e-9)
}

func TestBuildLinesKeepsZeroWidthFragments(t *testing.T) {
	texts := []pdf.Text{
		frag("I", 72, 700, 0, 12, "Helvetica"),
		frag("n", 78, 700, 0, 12, "Helvetica"),
		frag("v", 84, 700, 0, 12, "Helvetica"),
	}

	lines := buildLines(texts, 0.5)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Spans, 1)
	assert.Equal(t, "Inv", lines[0].Spans[0].Text)
}

func TestFragmentBoxUsesBaseline(t *testing.T) {
	b := fragmentBox(frag("x", 100, 500, 10, 10, "Helvetica"), 10)
	assert.InDelta(t, 498, b.Y0, 1e-9)
	assert.InDelta(t, 508, b.Y1, 1e-9)
	assert.InDelta(t, 100, b.X0, 1e-9)
	assert.InDelta(t, 110, b.X1, 1e-9)
}

func TestFontSizeFallback(t *testing.T) {
	assert.Equal(t, defaultFontSize, fontSizeOf(pdf.Text{S: "x"}))
	assert.Equal(t, 14.0, fontSizeOf(pdf.Text{S: "x", FontSize: 14}))
}

func TestLineBoxIsUnionOfSpans(t *testing.T) {
	row := []pdf.Text{
		frag("a", 72, 700, 10, 10, "Helvetica-Bold"),
		frag("b", 300, 700, 10, 14, "Helvetica"),
	}

	ln := rowToLine(row)
	assert.InDelta(t, 72, ln.Box.X0, 1e-9)
	assert.InDelta(t, 310, ln.Box.X1, 1e-9)
	// the taller 14pt span stretches the union
	assert.InDelta(t, 700-descentRatio*14, ln.Box.Y0, 1e-9)
	assert.InDelta(t, 700+ascentRatio*14, ln.Box.Y1, 1e-9)
}
