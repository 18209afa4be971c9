package pdfpage

// Anchor coordinates arrive from callers in pixel space with a top-left
// origin, typically measured on a rendered preview of the page. Page
// geometry lives in PDF point space with a bottom-left origin. The
// conversion scales each axis independently by the ratio of page points to
// source pixels, so it is correct for any render resolution as long as the
// preview covered the full page.

// Viewport describes the pixel dimensions of the rendered image an anchor
// was measured on.
type Viewport struct {
	Width  float64
	Height float64
}

// ToPagePoint converts a top-left-origin pixel coordinate on the viewport
// into a top-left-origin point coordinate on a page of the given size.
func (v Viewport) ToPagePoint(xPx, yPx, pageW, pageH float64) (x, y float64) {
	if v.Width <= 0 || v.Height <= 0 {
		return xPx, yPx
	}
	return xPx * (pageW / v.Width), yPx * (pageH / v.Height)
}

// FlipY converts a top-left-origin y coordinate into the bottom-left-origin
// space used by page geometry.
func FlipY(y, pageH float64) float64 { return pageH - y }
