// Package pdfpage extracts positioned text from PDF pages and groups it
// into spans and lines.
//
// A span is a contiguous run of text sharing one font and size as reported
// by the PDF text model. A line is the ordered set of spans sharing a
// vertical position within a tolerance band. Spans are immutable snapshots
// of the current page state: any mutation of the page (redaction, overlay)
// invalidates previously extracted geometry, and callers must re-extract.
package pdfpage

import "math"

// Rect is an axis-aligned rectangle in PDF point space with the origin in
// the bottom-left corner of the page (x grows right, y grows up).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return (r.X0 + r.X1) / 2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return (r.Y0 + r.Y1) / 2 }

// IsDegenerate reports whether the rectangle has non-positive extent on
// either axis.
func (r Rect) IsDegenerate() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X0 < other.X1 && other.X0 < r.X1 && r.Y0 < other.Y1 && other.Y0 < r.Y1
}

// OverlapRatio returns the share of r's area covered by the intersection
// with other, in [0,1]. A degenerate r yields 0.
func (r Rect) OverlapRatio(other Rect) float64 {
	if r.IsDegenerate() || !r.Intersects(other) {
		return 0
	}
	w := math.Min(r.X1, other.X1) - math.Max(r.X0, other.X0)
	h := math.Min(r.Y1, other.Y1) - math.Max(r.Y0, other.Y0)
	return (w * h) / (r.Width() * r.Height())
}

// Expand grows the rectangle by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{X0: r.X0 - pad, Y0: r.Y0 - pad, X1: r.X1 + pad, Y1: r.Y1 + pad}
}

// TextSpan is a contiguous run of text sharing one font and size on a page.
type TextSpan struct {
	Text     string
	Box      Rect
	FontSize float64
	FontName string
	// Color is the text fill color as normalized RGB. The underlying text
	// model does not report fill color, so this is black unless a caller
	// overrides it.
	Color [3]float64
}

// Line is an ordered sequence of spans judged to share a vertical position.
// Spans are ordered left to right. Text is the concatenation of the member
// span texts separated by single spaces; Box is the union of the member
// boxes. A line always has at least one span.
type Line struct {
	Spans   []TextSpan
	Text    string
	Box     Rect
	YCenter float64
}
