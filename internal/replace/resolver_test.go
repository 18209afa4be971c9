package replace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdftools/internal/pdfpage"
)

func TestPruneRedactedDropsCoveredSpans(t *testing.T) {
	covered := span("secret", 72, 700, "Helvetica", 10)
	visible := span("public", 72, 600, "Helvetica", 10)
	p := pageWith(covered, visible)

	pruned := pruneRedacted(p, []pdfpage.Rect{covered.Box.Expand(1)})

	require.Len(t, pruned.Spans, 1)
	assert.Equal(t, "public", pruned.Spans[0].Text)
	require.Len(t, pruned.Lines, 1)
	assert.Equal(t, "public", pruned.Lines[0].Text)
}

func TestPruneRedactedRebuildsPartialLines(t *testing.T) {
	a := span("keep", 72, 700, "Helvetica", 10)
	b := span("drop", 150, 700, "Helvetica", 10)
	p := &pdfpage.Page{
		Number: 1, Width: 612, Height: 792,
		Spans: []pdfpage.TextSpan{a, b},
		Lines: []pdfpage.Line{{
			Spans: []pdfpage.TextSpan{a, b},
			Text:  "keep drop",
			Box:   a.Box.Union(b.Box),
		}},
	}

	pruned := pruneRedacted(p, []pdfpage.Rect{b.Box.Expand(1)})

	require.Len(t, pruned.Lines, 1)
	assert.Equal(t, "keep", pruned.Lines[0].Text)
	assert.InDelta(t, a.Box.X1, pruned.Lines[0].Box.X1, 1e-9)
}

func TestPruneRedactedNoRectsIsIdentity(t *testing.T) {
	p := pageWith(span("text", 72, 700, "Helvetica", 10))
	assert.Same(t, p, pruneRedacted(p, nil))
}

func TestApplyRejectsEmptyBatch(t *testing.T) {
	r := NewResolver(0.8, 0.5)

	_, err := r.Apply(context.Background(), "in.pdf", "out.pdf", nil)
	assert.ErrorIs(t, err, ErrNoRequests)
}

func TestApplyRejectsEmptyOldText(t *testing.T) {
	r := NewResolver(0.8, 0.5)

	_, err := r.Apply(context.Background(), "in.pdf", "out.pdf", []Request{{OldText: "  "}})
	assert.ErrorIs(t, err, ErrEmptyOldText)
}

func TestApplyRejectsMissingFile(t *testing.T) {
	r := NewResolver(0.8, 0.5)

	_, err := r.Apply(context.Background(), filepath.Join(t.TempDir(), "gone.pdf"), "out.pdf", []Request{{OldText: "x"}})
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestApplyRejectsNonPDF(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bogus.pdf")
	require.NoError(t, os.WriteFile(in, []byte("not a pdf"), 0o644))

	r := NewResolver(0.8, 0.5)
	_, err := r.Apply(context.Background(), in, filepath.Join(dir, "out.pdf"), []Request{{OldText: "x"}})
	assert.ErrorIs(t, err, ErrInvalidPDF)
}

func fixturePDF(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.pdf")
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	for i, line := range lines {
		doc.Text(72, 100+float64(i)*20, line)
	}
	require.NoError(t, doc.OutputFileAndClose(path))
	return path
}

func TestApplyReplacesTextOnPage(t *testing.T) {
	in := fixturePDF(t, "Invoice Total: 100")
	out := filepath.Join(t.TempDir(), "out.pdf")

	r := NewResolver(0.8, 0.5)
	report, err := r.Apply(context.Background(), in, out, []Request{
		{OldText: "100", NewText: "250", Page: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Applied)
	assert.Equal(t, 0, report.Unmatched)
	require.Len(t, report.Results, 1)
	res := report.Results[0]
	assert.Equal(t, StatusInserted, res.Status)
	assert.Equal(t, MatchLine, res.Kind)
	assert.Equal(t, MethodSubstring, res.Method)
	assert.FileExists(t, out)
}

func TestApplyUnmatchedIsNonFatal(t *testing.T) {
	in := fixturePDF(t, "Invoice Total: 100")
	out := filepath.Join(t.TempDir(), "out.pdf")

	r := NewResolver(0.8, 0.5)
	report, err := r.Apply(context.Background(), in, out, []Request{
		{OldText: "does not appear anywhere", NewText: "x", Page: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, report.Applied)
	assert.Equal(t, 1, report.Unmatched)

	// the output keeps the untouched content
	pages, err := pdfpage.ExtractPages(out, 0.5)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	require.NotEmpty(t, pages[0].Lines)
	assert.Contains(t, normalize(pages[0].Lines[0].Text), "invoicetotal")
}

func TestApplyEmptyNewTextRedacts(t *testing.T) {
	in := fixturePDF(t, "Invoice Total: 100")
	out := filepath.Join(t.TempDir(), "out.pdf")

	r := NewResolver(0.8, 0.5)
	report, err := r.Apply(context.Background(), in, out, []Request{
		{OldText: "100", NewText: "", Page: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Applied)
	require.Len(t, report.Results, 1)
	assert.Equal(t, StatusRedacted, report.Results[0].Status)
	assert.FileExists(t, out)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "nested", "dst.bin")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, copyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}
