package pdfpage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportToPagePoint(t *testing.T) {
	// a 612x792pt page rendered at 2x is 1224x1584px
	vp := Viewport{Width: 1224, Height: 1584}

	x, y := vp.ToPagePoint(612, 792, 612, 792)
	assert.InDelta(t, 306, x, 1e-9)
	assert.InDelta(t, 396, y, 1e-9)

	x, y = vp.ToPagePoint(0, 0, 612, 792)
	assert.Zero(t, x)
	assert.Zero(t, y)

	x, y = vp.ToPagePoint(1224, 1584, 612, 792)
	assert.InDelta(t, 612, x, 1e-9)
	assert.InDelta(t, 792, y, 1e-9)
}

func TestViewportToPagePointNonUniformScale(t *testing.T) {
	vp := Viewport{Width: 1000, Height: 2000}

	x, y := vp.ToPagePoint(500, 500, 612, 792)
	assert.InDelta(t, 306, x, 1e-9)
	assert.InDelta(t, 198, y, 1e-9)
}

func TestViewportZeroSizePassesThrough(t *testing.T) {
	vp := Viewport{}
	x, y := vp.ToPagePoint(100, 200, 612, 792)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 200.0, y)
}

func TestFlipY(t *testing.T) {
	assert.Equal(t, 792.0, FlipY(0, 792))
	assert.Equal(t, 0.0, FlipY(792, 792))
	assert.Equal(t, 692.0, FlipY(100, 792))
}
