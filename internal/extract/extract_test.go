package extract

import (
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.pdf")
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.Text(72, 100, "HelloPositions")
	require.NoError(t, doc.OutputFileAndClose(path))
	return path
}

func TestTextItems(t *testing.T) {
	result, err := TextItems(fixturePDF(t), 2.0, 0.5)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 2.0, result.Scale)
	require.Len(t, result.Pages, 1)
	// A4 is 595.28x841.89pt, doubled by the scale
	assert.InDelta(t, 1190.55, result.Pages[0].Width, 0.5)
	assert.InDelta(t, 1683.78, result.Pages[0].Height, 0.5)

	require.NotEmpty(t, result.TextItems)
	item := result.TextItems[0]
	assert.Contains(t, item.Text, "HelloPositions")
	assert.Equal(t, 1, item.Page)
	assert.Positive(t, item.Width)
	assert.Positive(t, item.Height)
	// text near the top of the page stays near the top in top-left coords
	assert.Less(t, item.Y, result.Pages[0].Height/2)
	assert.Equal(t, "#000000", item.Color)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#000000", hexColor([3]float64{0, 0, 0}))
	assert.Equal(t, "#ffffff", hexColor([3]float64{1, 1, 1}))
	assert.Equal(t, "#ff8000", hexColor([3]float64{1, 0.502, 0}))
	assert.Equal(t, "#ff0000", hexColor([3]float64{2, -1, 0}))
}

func TestTextItemsDefaultScale(t *testing.T) {
	result, err := TextItems(fixturePDF(t), 0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2.0, result.Scale)
}

func TestTextItemsMissingFile(t *testing.T) {
	_, err := TextItems(filepath.Join(t.TempDir(), "missing.pdf"), 2.0, 0.5)
	assert.Error(t, err)
}
