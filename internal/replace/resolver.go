package replace

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/rs/zerolog"

	"pdftools/internal/logger"
	"pdftools/internal/pdfpage"
)

// Fraction of a span's area that must sit under a painted-out region for
// the span to be treated as already blank.
const redactedOverlapMin = 0.5

// Resolver applies batches of replacement requests to PDF files.
type Resolver struct {
	threshold float64
	lineTol   float64
	writer    *overlayWriter
	log       zerolog.Logger
}

// NewResolver builds a resolver. similarityThreshold is the minimum fuzzy
// match score in (0,1]; lineTolerance is the vertical grouping band as a
// fraction of the font size.
func NewResolver(similarityThreshold, lineTolerance float64) *Resolver {
	log := logger.WithComponent("replace")
	return &Resolver{
		threshold: similarityThreshold,
		lineTol:   lineTolerance,
		writer:    newOverlayWriter(log),
		log:       log,
	}
}

// Apply runs every request against the PDF at inputPath and writes the
// mutated document to outputPath. Requests are processed one at a time in
// order, and the page geometry is re-read after each mutation so every
// request matches against the document as it currently stands. A request
// that fails does not stop the batch; the returned report records the
// outcome of each one. The error return is reserved for problems with the
// document or the batch itself.
func (r *Resolver) Apply(ctx context.Context, inputPath, outputPath string, requests []Request) (*Report, error) {
	if len(requests) == 0 {
		return nil, newError("apply", ErrNoRequests, "")
	}
	for i, req := range requests {
		if strings.TrimSpace(req.OldText) == "" {
			return nil, newError("apply", ErrEmptyOldText, fmt.Sprintf("request %d", i+1))
		}
	}
	if _, err := os.Stat(inputPath); err != nil {
		return nil, newError("apply", ErrFileNotFound, inputPath)
	}
	if err := api.ValidateFile(inputPath, r.writer.conf); err != nil {
		return nil, newError("apply", ErrInvalidPDF, err.Error())
	}

	// Work on a scratch copy next to the output so a failed run never
	// leaves a half-mutated file at outputPath.
	work := outputPath + ".tmp"
	if err := copyFile(inputPath, work); err != nil {
		return nil, newError("apply", err, "creating working copy")
	}
	defer os.Remove(work)

	report := &Report{}
	// Overpainting hides text visually but leaves the text objects in the
	// file, so re-extraction would still see them. Regions painted out in
	// this run are remembered and their spans dropped from later matching.
	redacted := map[int][]pdfpage.Rect{}

	for i, req := range requests {
		if err := ctx.Err(); err != nil {
			return nil, newError("apply", err, fmt.Sprintf("cancelled before request %d", i+1))
		}
		report.add(r.applyOne(work, req, redacted))
	}

	if err := os.Rename(work, outputPath); err != nil {
		return nil, newError("apply", err, "moving result into place")
	}
	r.log.Info().
		Str("output", outputPath).
		Int("applied", report.Applied).
		Int("unmatched", report.Unmatched).
		Int("failed", report.Failed).
		Msg("replacement batch finished")
	return report, nil
}

func (r *Resolver) applyOne(work string, req Request, redacted map[int][]pdfpage.Rect) Result {
	res := Result{Request: req, Status: StatusPending}

	pages, err := pdfpage.ExtractPages(work, r.lineTol)
	if err != nil {
		res.Status = StatusUnmatched
		res.Error = fmt.Sprintf("re-reading page geometry: %v", err)
		return res
	}

	pageNum := req.page()
	if pageNum > len(pages) {
		res.Status = StatusUnmatched
		res.Error = fmt.Sprintf("%v: requested page %d, document has %d", ErrPageOutOfRange, pageNum, len(pages))
		return res
	}
	page := pruneRedacted(&pages[pageNum-1], redacted[pageNum])

	m, ok := findMatch(page, req, r.threshold)
	if !ok {
		res.Status = StatusUnmatched
		res.Error = ErrNoMatch.Error()
		r.log.Warn().
			Str("old_text", req.OldText).
			Int("page", pageNum).
			Msg("no match for replacement target")
		return res
	}
	res.Status = StatusMatched
	res.Kind = m.kind
	res.Method = m.method
	res.Score = m.score
	res.MatchedText = m.text
	res.Box = m.box
	res.FontName = m.fontName
	res.FontSize = m.fontSize

	if err := r.writer.redact(work, pageNum, m.box); err != nil {
		res.Error = err.Error()
		return res
	}
	redacted[pageNum] = append(redacted[pageNum], m.box.Expand(redactPad))
	res.Status = StatusRedacted

	if req.NewText == "" {
		return res
	}

	// A substring match blanks the whole candidate, so the insertion has
	// to carry the untouched part of its text along with the replacement.
	insertText := req.NewText
	if m.method == MethodSubstring {
		if spliced, ok := spliceReplacement(m.text, req.OldText, req.NewText); ok {
			insertText = spliced
		}
	}

	if _, err := r.writer.insert(work, pageNum, m.box, insertText, m.fontName, m.fontSize); err != nil {
		res.Status = StatusInsertFailed
		res.Error = fmt.Sprintf("%v: %v", ErrInsertFailed, err)
		return res
	}
	res.Status = StatusInserted
	return res
}

// pruneRedacted returns a copy of the page with spans under already painted
// regions removed and lines rebuilt from the surviving spans.
func pruneRedacted(page *pdfpage.Page, rects []pdfpage.Rect) *pdfpage.Page {
	if len(rects) == 0 {
		return page
	}
	covered := func(box pdfpage.Rect) bool {
		for _, rc := range rects {
			if box.OverlapRatio(rc) >= redactedOverlapMin {
				return true
			}
		}
		return false
	}

	pruned := &pdfpage.Page{Number: page.Number, Width: page.Width, Height: page.Height}
	for _, s := range page.Spans {
		if !covered(s.Box) {
			pruned.Spans = append(pruned.Spans, s)
		}
	}
	for _, ln := range page.Lines {
		var keep []pdfpage.TextSpan
		for _, s := range ln.Spans {
			if !covered(s.Box) {
				keep = append(keep, s)
			}
		}
		if len(keep) == 0 {
			continue
		}
		nl := pdfpage.Line{Spans: keep, Box: keep[0].Box}
		for i, s := range keep {
			if i > 0 {
				nl.Text += " "
				nl.Box = nl.Box.Union(s.Box)
			}
			nl.Text += s.Text
		}
		nl.YCenter = nl.Box.CenterY()
		pruned.Lines = append(pruned.Lines, nl)
	}
	return pruned
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
