package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdftools/internal/pdfpage"
	"pdftools/internal/replace"
)

func TestParseRequests(t *testing.T) {
	requests, err := parseRequests([]byte(`[
		{"oldText": "ACME Corp", "newText": "Initech", "pageNum": 1},
		{"oldText": "2024", "newText": "2025", "pageNum": 2,
		 "x": 512, "y": 88, "pageWidth": 1224, "pageHeight": 1584}
	]`))
	require.NoError(t, err)
	require.Len(t, requests, 2)

	assert.Equal(t, "ACME Corp", requests[0].OldText)
	assert.Nil(t, requests[0].Anchor)

	require.NotNil(t, requests[1].Anchor)
	assert.Equal(t, 512.0, requests[1].Anchor.X)
	assert.Equal(t, pdfpage.Viewport{Width: 1224, Height: 1584}, requests[1].Anchor.Viewport)
}

func TestParseRequestsRejectsMissingOldText(t *testing.T) {
	_, err := parseRequests([]byte(`[{"newText": "x", "pageNum": 1}]`))
	assert.ErrorContains(t, err, "oldText")
}

func TestParseRequestsRejectsAnchorWithoutViewport(t *testing.T) {
	_, err := parseRequests([]byte(`[{"oldText": "a", "newText": "b", "x": 10, "y": 20}]`))
	assert.ErrorContains(t, err, "pageWidth")
}

func TestParseRequestsRejectsMalformedJSON(t *testing.T) {
	_, err := parseRequests([]byte(`{not json`))
	assert.ErrorContains(t, err, "parsing")
}

func TestReportToModel(t *testing.T) {
	report := &replace.Report{
		Applied:   1,
		Unmatched: 1,
		Results: []replace.Result{
			{
				Request:     replace.Request{OldText: "a", NewText: "b", Page: 1},
				Status:      replace.StatusInserted,
				Kind:        replace.MatchSpan,
				Method:      replace.MethodExact,
				Score:       1.0,
				MatchedText: "a",
			},
			{
				Request: replace.Request{OldText: "gone", Page: 2},
				Status:  replace.StatusUnmatched,
				Error:   "no matching text found",
			},
		},
	}

	out := reportToModel(report)
	assert.False(t, out.Success)
	assert.Equal(t, 2, out.Requested)
	assert.Equal(t, 1, out.ReplacementsMade)
	require.Len(t, out.Results, 2)
	assert.Equal(t, "inserted", out.Results[0].Status)
	assert.Equal(t, "exact", out.Results[0].MatchMethod)
	assert.Equal(t, "no matching text found", out.Results[1].Error)
}
