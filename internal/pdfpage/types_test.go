package pdfpage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectUnion(t *testing.T) {
	a := Rect{X0: 10, Y0: 10, X1: 20, Y1: 20}
	b := Rect{X0: 15, Y0: 5, X1: 30, Y1: 18}

	u := a.Union(b)
	assert.Equal(t, Rect{X0: 10, Y0: 5, X1: 30, Y1: 20}, u)
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}

	assert.True(t, a.Intersects(Rect{X0: 5, Y0: 5, X1: 15, Y1: 15}))
	assert.False(t, a.Intersects(Rect{X0: 10, Y0: 0, X1: 20, Y1: 10}), "touching edges do not overlap")
	assert.False(t, a.Intersects(Rect{X0: 50, Y0: 50, X1: 60, Y1: 60}))
}

func TestRectOverlapRatio(t *testing.T) {
	a := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}

	assert.InDelta(t, 0.25, a.OverlapRatio(Rect{X0: 5, Y0: 5, X1: 20, Y1: 20}), 1e-9)
	assert.InDelta(t, 1.0, a.OverlapRatio(Rect{X0: -5, Y0: -5, X1: 15, Y1: 15}), 1e-9)
	assert.Zero(t, a.OverlapRatio(Rect{X0: 20, Y0: 20, X1: 30, Y1: 30}))
}

func TestRectOverlapRatioDegenerate(t *testing.T) {
	empty := Rect{X0: 5, Y0: 5, X1: 5, Y1: 10}
	assert.Zero(t, empty.OverlapRatio(Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}))
}

func TestRectIsDegenerate(t *testing.T) {
	assert.True(t, Rect{X0: 1, Y0: 1, X1: 1, Y1: 5}.IsDegenerate())
	assert.True(t, Rect{X0: 1, Y0: 5, X1: 2, Y1: 5}.IsDegenerate())
	assert.False(t, Rect{X0: 1, Y0: 1, X1: 2, Y1: 2}.IsDegenerate())
}

func TestRectExpand(t *testing.T) {
	r := Rect{X0: 10, Y0: 10, X1: 20, Y1: 20}.Expand(2)
	assert.Equal(t, Rect{X0: 8, Y0: 8, X1: 22, Y1: 22}, r)
}
