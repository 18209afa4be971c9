// Package models defines the JSON shapes the command layer prints to
// stdout. Keeping them in one place pins the wire format independently of
// the internal packages that produce the data.
package models

// TextItem is one positioned piece of text. Coordinates are top-left
// origin, multiplied by the render scale the caller requested, so they line
// up with a preview image of the page rendered at that scale.
type TextItem struct {
	Text     string  `json:"text"`
	Page     int     `json:"page"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	FontSize float64 `json:"fontSize"`
	FontName string  `json:"fontName,omitempty"`
	Color    string  `json:"color"`
}

// PageInfo describes one page's scaled dimensions.
type PageInfo struct {
	Page   int     `json:"page"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ExtractResult is the full payload of a text position extraction.
type ExtractResult struct {
	Success   bool       `json:"success"`
	Scale     float64    `json:"scale"`
	Pages     []PageInfo `json:"pages"`
	TextItems []TextItem `json:"textItems"`
}

// ReplacementOutcome is the per-request entry of a replacement report.
type ReplacementOutcome struct {
	OldText     string  `json:"old_text"`
	NewText     string  `json:"new_text"`
	Page        int     `json:"page"`
	Status      string  `json:"status"`
	MatchKind   string  `json:"match_kind,omitempty"`
	MatchMethod string  `json:"match_method,omitempty"`
	Similarity  float64 `json:"similarity,omitempty"`
	MatchedText string  `json:"matched_text,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// ReplacementReport is the batch summary of a replacement run.
type ReplacementReport struct {
	Success          bool                 `json:"success"`
	Requested        int                  `json:"requested"`
	ReplacementsMade int                  `json:"replacements_made"`
	Unmatched        int                  `json:"unmatched"`
	Failed           int                  `json:"failed"`
	Results          []ReplacementOutcome `json:"results"`
}
