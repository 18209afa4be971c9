package replace

import (
	"math"
	"strings"
	"unicode"

	"pdftools/internal/pdfpage"
)

// MatchMethod records which comparison tier produced a match. Tiers are
// tried strictly in order: exact, then substring containment in either
// direction, then character set similarity.
type MatchMethod string

const (
	MethodExact     MatchMethod = "exact"
	MethodSubstring MatchMethod = "substring"
	MethodFuzzy     MatchMethod = "fuzzy"
)

// normalize strips every whitespace character and lowercases the rest, so
// comparisons survive the erratic spacing PDF extraction produces.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// hasInnerSpace reports whether the trimmed text contains whitespace, i.e.
// spans multiple words.
func hasInnerSpace(s string) bool {
	return strings.ContainsFunc(strings.TrimSpace(s), unicode.IsSpace)
}

// jaccard returns the similarity of the character sets of two normalized
// strings, in [0,1].
func jaccard(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	sa := map[rune]struct{}{}
	for _, r := range a {
		sa[r] = struct{}{}
	}
	sb := map[rune]struct{}{}
	for _, r := range b {
		sb[r] = struct{}{}
	}
	inter := 0
	for r := range sa {
		if _, ok := sb[r]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// candidate is a span or line considered for matching.
type candidate struct {
	text     string
	box      pdfpage.Rect
	kind     MatchKind
	fontName string
	fontSize float64
}

// match is a candidate that passed one of the comparison tiers.
type match struct {
	candidate
	method MatchMethod
	score  float64
}

// findMatch locates the best candidate for the request on the page.
//
// Lines are matched first; multi-word targets match nothing else, since
// their words are usually split across several spans. Single-word targets
// fall back to individual spans when no line clears the similarity floor.
// Within one comparison tier, an anchor picks the candidate nearest to it;
// without an anchor the highest score wins and reading order settles ties.
func findMatch(page *pdfpage.Page, req Request, threshold float64) (match, bool) {
	want := normalize(req.OldText)
	if want == "" {
		return match{}, false
	}

	if m, ok := bestMatch(lineCandidates(page), want, req, page, threshold); ok {
		return m, true
	}
	if hasInnerSpace(req.OldText) {
		return match{}, false
	}
	return bestMatch(spanCandidates(page), want, req, page, threshold)
}

// spliceReplacement rewrites oldText to newText inside the matched
// candidate text. When the match covered more than the requested text, the
// redaction blanked the whole candidate, so the insertion has to restore
// the surrounding text too. Returns false when the old text cannot be
// located verbatim in the candidate, in which case the caller inserts the
// bare replacement.
func spliceReplacement(candidateText, oldText, newText string) (string, bool) {
	old := strings.TrimSpace(oldText)
	if old == "" {
		return "", false
	}
	i := strings.Index(strings.ToLower(candidateText), strings.ToLower(old))
	if i < 0 {
		return "", false
	}
	return candidateText[:i] + newText + candidateText[i+len(old):], true
}

func spanCandidates(page *pdfpage.Page) []candidate {
	cands := make([]candidate, 0, len(page.Spans))
	for _, s := range page.Spans {
		cands = append(cands, candidate{
			text:     s.Text,
			box:      s.Box,
			kind:     MatchSpan,
			fontName: s.FontName,
			fontSize: s.FontSize,
		})
	}
	return cands
}

func lineCandidates(page *pdfpage.Page) []candidate {
	cands := make([]candidate, 0, len(page.Lines))
	for _, ln := range page.Lines {
		c := candidate{text: ln.Text, box: ln.Box, kind: MatchLine}
		// a line inherits the style of its first span
		if len(ln.Spans) > 0 {
			c.fontName = ln.Spans[0].FontName
			c.fontSize = ln.Spans[0].FontSize
		}
		cands = append(cands, c)
	}
	return cands
}

func bestMatch(cands []candidate, want string, req Request, page *pdfpage.Page, threshold float64) (match, bool) {
	tiers := []func(candidate) (float64, bool){
		func(c candidate) (float64, bool) {
			if normalize(c.text) == want {
				return 1, true
			}
			return 0, false
		},
		func(c candidate) (float64, bool) {
			got := normalize(c.text)
			if got == "" {
				return 0, false
			}
			if strings.Contains(got, want) || strings.Contains(want, got) {
				shorter, longer := len(got), len(want)
				if shorter > longer {
					shorter, longer = longer, shorter
				}
				return float64(shorter) / float64(longer), true
			}
			return 0, false
		},
		func(c candidate) (float64, bool) {
			if score := jaccard(normalize(c.text), want); score >= threshold {
				return score, true
			}
			return 0, false
		},
	}
	methods := []MatchMethod{MethodExact, MethodSubstring, MethodFuzzy}

	for i, tier := range tiers {
		var hits []match
		for _, c := range cands {
			if score, ok := tier(c); ok {
				hits = append(hits, match{candidate: c, method: methods[i], score: score})
			}
		}
		if len(hits) == 0 {
			continue
		}
		return pickBest(hits, req, page), true
	}
	return match{}, false
}

// pickBest resolves ties within one tier. Anchored requests prefer
// proximity; otherwise the candidate with the higher score wins and reading
// order settles the rest (candidates already arrive top to bottom).
func pickBest(hits []match, req Request, page *pdfpage.Page) match {
	if req.Anchor != nil {
		ax, ay := anchorPoint(req.Anchor, page)
		best := hits[0]
		bestDist := dist(ax, ay, best.box)
		for _, h := range hits[1:] {
			if d := dist(ax, ay, h.box); d < bestDist {
				best, bestDist = h, d
			}
		}
		return best
	}
	best := hits[0]
	for _, h := range hits[1:] {
		if h.score > best.score {
			best = h
		}
	}
	return best
}

// anchorPoint converts the anchor into bottom-left page point space.
func anchorPoint(a *Anchor, page *pdfpage.Page) (float64, float64) {
	x, y := a.Viewport.ToPagePoint(a.X, a.Y, page.Width, page.Height)
	return x, pdfpage.FlipY(y, page.Height)
}

func dist(x, y float64, box pdfpage.Rect) float64 {
	return math.Hypot(x-box.CenterX(), y-box.CenterY())
}
