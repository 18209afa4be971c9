package convert

import (
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func fixturePDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.pdf")
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.Text(72, 100, "Quarterly")
	doc.Text(200, 100, "Report")
	doc.Text(72, 140, "Revenue")
	require.NoError(t, doc.OutputFileAndClose(path))
	return path
}

func TestOpenDocMissingFile(t *testing.T) {
	_, err := openDoc(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestToXLSX(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, ToXLSX(fixturePDF(t), out, 0.5))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Page 1")
	a1, err := f.GetCellValue("Page 1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Quarterly", a1)
	b1, err := f.GetCellValue("Page 1", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Report", b1)
	a2, err := f.GetCellValue("Page 1", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Revenue", a2)
}

func TestToXLSXMissingFile(t *testing.T) {
	err := ToXLSX(filepath.Join(t.TempDir(), "missing.pdf"), "out.xlsx", 0.5)
	assert.Error(t, err)
}

func TestHTMLEscape(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt;c&gt; &quot;d&quot;", htmlEscape(`a & b <c> "d"`))
}
