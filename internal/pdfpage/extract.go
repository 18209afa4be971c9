package pdfpage

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"pdftools/internal/logger"
)

const (
	// Fraction of the font size above the baseline occupied by glyphs.
	ascentRatio = 0.8
	// Fraction of the font size below the baseline occupied by glyphs.
	descentRatio = 0.2
	// Horizontal gap, as a multiple of the font size, that separates two
	// fragments into distinct words within one span.
	wordGapRatio = 0.3
	// Horizontal gap, as a multiple of the font size, beyond which two
	// fragments are considered unrelated and start a new span.
	spanBreakRatio = 2.0

	defaultFontSize = 10.0
)

// Page holds the extracted text geometry for a single page.
type Page struct {
	Number int // 1-based
	Width  float64
	Height float64
	Spans  []TextSpan
	Lines  []Line
}

// ExtractPages reads every page of the PDF at path and returns its text
// geometry. lineTolerance is the vertical band, as a fraction of the font
// size, within which fragments are grouped onto one line.
func ExtractPages(path string, lineTolerance float64) ([]Page, error) {
	log := logger.WithComponent("pdfpage")

	dims, err := pageDims(path)
	if err != nil {
		return nil, err
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages != len(dims) {
		log.Debug().
			Int("text_pages", numPages).
			Int("dim_pages", len(dims)).
			Msg("page count mismatch between readers")
	}

	pages := make([]Page, 0, numPages)
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		p := Page{Number: pageNum}
		if pageNum-1 < len(dims) {
			p.Width = dims[pageNum-1].w
			p.Height = dims[pageNum-1].h
		}

		page := r.Page(pageNum)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			pages = append(pages, p)
			continue
		}

		texts := page.Content().Text
		p.Lines = buildLines(texts, lineTolerance)
		for _, ln := range p.Lines {
			p.Spans = append(p.Spans, ln.Spans...)
		}
		pages = append(pages, p)
	}

	log.Debug().
		Str("path", path).
		Int("pages", len(pages)).
		Msg("extracted text geometry")
	return pages, nil
}

// ExtractPage returns the geometry of a single page (1-based).
func ExtractPage(path string, pageNum int, lineTolerance float64) (*Page, error) {
	pages, err := ExtractPages(path, lineTolerance)
	if err != nil {
		return nil, err
	}
	if pageNum < 1 || pageNum > len(pages) {
		return nil, fmt.Errorf("page %d out of range, document has %d pages", pageNum, len(pages))
	}
	return &pages[pageNum-1], nil
}

type dim struct{ w, h float64 }

// pageDims reads the media box dimensions of every page in points.
func pageDims(path string) ([]dim, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading PDF structure of %s: %w", path, err)
	}
	pd, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("reading page dimensions of %s: %w", path, err)
	}
	dims := make([]dim, len(pd))
	for i, d := range pd {
		dims[i] = dim{w: d.Width, h: d.Height}
	}
	return dims, nil
}

// buildLines groups raw text fragments into lines of spans. Fragments are
// first bucketed into rows by baseline, then each row is split into spans
// wherever the font changes or a large horizontal gap appears.
func buildLines(texts []pdf.Text, lineTolerance float64) []Line {
	frags := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		frags = append(frags, t)
	}
	if len(frags) == 0 {
		return nil
	}

	// Top of page first, then left to right within a row.
	sort.SliceStable(frags, func(i, j int) bool {
		if frags[i].Y != frags[j].Y {
			return frags[i].Y > frags[j].Y
		}
		return frags[i].X < frags[j].X
	})

	var lines []Line
	var row []pdf.Text
	rowY := frags[0].Y

	flush := func() {
		if len(row) == 0 {
			return
		}
		if ln := rowToLine(row); len(ln.Spans) > 0 {
			lines = append(lines, ln)
		}
		row = row[:0]
	}

	for _, t := range frags {
		tol := fontSizeOf(t) * lineTolerance
		if math.Abs(t.Y-rowY) > tol {
			flush()
			rowY = t.Y
		}
		row = append(row, t)
	}
	flush()
	return lines
}

// rowToLine merges the fragments of one row into spans and wraps them in a
// Line. Fragments already arrive sorted left to right.
func rowToLine(row []pdf.Text) Line {
	sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

	var spans []TextSpan
	var cur *TextSpan
	var curEndX float64

	for _, t := range row {
		size := fontSizeOf(t)
		box := fragmentBox(t, size)
		if box.IsDegenerate() {
			continue
		}

		gap := t.X - curEndX
		sameStyle := cur != nil && cur.FontName == t.Font && math.Abs(cur.FontSize-size) < 0.1
		if cur != nil && sameStyle && gap <= spanBreakRatio*size {
			if gap >= wordGapRatio*size && !strings.HasSuffix(cur.Text, " ") {
				cur.Text += " "
			}
			cur.Text += t.S
			cur.Box = cur.Box.Union(box)
			curEndX = box.X1
			continue
		}

		spans = append(spans, TextSpan{
			Text:     t.S,
			Box:      box,
			FontSize: size,
			FontName: t.Font,
			Color:    [3]float64{0, 0, 0},
		})
		cur = &spans[len(spans)-1]
		curEndX = box.X1
	}

	ln := Line{Spans: spans}
	if len(spans) == 0 {
		return ln
	}
	parts := make([]string, len(spans))
	ln.Box = spans[0].Box
	for i, s := range spans {
		parts[i] = s.Text
		ln.Box = ln.Box.Union(s.Box)
	}
	ln.Text = strings.Join(parts, " ")
	ln.YCenter = ln.Box.CenterY()
	return ln
}

// avgGlyphWidthRatio estimates a glyph's advance as a fraction of the font
// size when the extractor does not report a width. Many PDFs, including
// anything written by common generators, come back with W == 0 per glyph.
const avgGlyphWidthRatio = 0.5

func fragmentBox(t pdf.Text, size float64) Rect {
	w := t.W
	if w <= 0 {
		w = float64(len([]rune(t.S))) * size * avgGlyphWidthRatio
	}
	return Rect{
		X0: t.X,
		Y0: t.Y - descentRatio*size,
		X1: t.X + w,
		Y1: t.Y + ascentRatio*size,
	}
}

func fontSizeOf(t pdf.Text) float64 {
	if t.FontSize > 0 {
		return t.FontSize
	}
	return defaultFontSize
}
