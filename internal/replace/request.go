// Package replace implements positional text replacement for PDF pages.
//
// Each replacement request names the text to remove, the text to put in its
// place, and optionally an anchor point that disambiguates between multiple
// occurrences. The resolver locates the best matching span or line on the
// target page, paints it out, and stamps the new text into the vacated
// region, re-reading the page geometry after every mutation so later
// requests see the document as it currently is.
package replace

import (
	"pdftools/internal/pdfpage"
)

// Status tracks a request through the resolution pipeline. A request either
// reaches StatusInserted or stops at the first stage that failed.
type Status string

const (
	StatusPending      Status = "pending"
	StatusMatched      Status = "matched"
	StatusRedacted     Status = "redacted"
	StatusInserted     Status = "inserted"
	StatusUnmatched    Status = "unmatched"
	StatusInsertFailed Status = "insert_failed"
)

// Anchor is an optional hint pinpointing where on the page the old text
// sits. Coordinates are pixels with a top-left origin, measured on a
// rendered preview whose size is given by Viewport.
type Anchor struct {
	X        float64
	Y        float64
	Viewport pdfpage.Viewport
}

// Request is one replacement to perform.
type Request struct {
	// OldText is the text to locate and remove. Matching ignores case and
	// all whitespace.
	OldText string
	// NewText replaces OldText. Empty is allowed and turns the request
	// into a pure redaction.
	NewText string
	// Page is the 1-based page to search. Values below 1 mean page 1.
	Page int
	// Anchor, when set, breaks ties between candidates of equal match
	// quality by distance to this point.
	Anchor *Anchor
}

func (r Request) page() int {
	if r.Page < 1 {
		return 1
	}
	return r.Page
}

// MatchKind says whether a request resolved against a single span or a
// whole line.
type MatchKind string

const (
	MatchSpan MatchKind = "span"
	MatchLine MatchKind = "line"
)

// Result records what happened to one request.
type Result struct {
	Request Request
	Status  Status

	// Match details, populated once Status passes StatusMatched.
	Kind        MatchKind
	Method      MatchMethod
	Score       float64
	MatchedText string
	Box         pdfpage.Rect
	FontName    string
	FontSize    float64

	// Error explains terminal failure states in words. Empty on success.
	Error string
}

// Report summarizes a resolver run over a batch of requests. Applied counts
// requests that reached their terminal success state, which is
// StatusInserted for replacements and StatusRedacted for pure redactions.
type Report struct {
	Results   []Result
	Applied   int
	Unmatched int
	Failed    int
}

// Succeeded reports whether every request in the batch was fully applied.
func (r Report) Succeeded() bool { return r.Unmatched == 0 && r.Failed == 0 }

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	switch res.Status {
	case StatusInserted, StatusRedacted:
		r.Applied++
	case StatusUnmatched:
		r.Unmatched++
	default:
		r.Failed++
	}
}
