package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pdftools/internal/logger"
	"pdftools/internal/pdfpage"
	"pdftools/internal/replace"
	"pdftools/pkg/models"
)

var replaceCmd = &cobra.Command{
	Use:   "replace [input.pdf] [output.pdf] [old-text] [new-text]",
	Short: "Replace text in a PDF while preserving layout",
	Long: `Find a piece of text on a page, paint it out and stamp the
replacement into the vacated space, keeping the original position and
approximating the original typography.

Matching ignores case and whitespace and falls back from exact to
substring to character-set similarity. When the same text appears more
than once, --anchor-x/--anchor-y (pixel coordinates on a preview
rendered at --viewport-width x --viewport-height) pick the nearest
occurrence.

For several replacements in one pass, use --json with an inline JSON
array (or --requests with a file holding the same array):

  [
    {"oldText": "ACME Corp", "newText": "Initech", "pageNum": 1},
    {"oldText": "2024", "newText": "2025", "pageNum": 2,
     "x": 512, "y": 88, "pageWidth": 1224, "pageHeight": 1584}
  ]

Requests are applied in order against the already-modified document.
The per-request outcomes are printed to stdout as JSON.`,
	Example: `  # Single replacement on page 1
  pdftools replace invoice.pdf fixed.pdf "ACME Corp" "Initech"

  # Disambiguate with an anchor measured on a 2x preview
  pdftools replace invoice.pdf fixed.pdf "2024" "2025" --page 2 --anchor-x 512 --anchor-y 88 --viewport-width 1224 --viewport-height 1584

  # Batch mode
  pdftools replace invoice.pdf fixed.pdf --requests changes.json`,
	Args: cobra.RangeArgs(2, 4),
	RunE: runReplace,
}

// replaceRequestJSON is the wire form of one batch entry. The pixel-space
// fields describe the preview the anchor was measured on.
type replaceRequestJSON struct {
	OldText    string   `json:"oldText"`
	NewText    string   `json:"newText"`
	PageNum    int      `json:"pageNum"`
	X          *float64 `json:"x,omitempty"`
	Y          *float64 `json:"y,omitempty"`
	PageWidth  float64  `json:"pageWidth,omitempty"`
	PageHeight float64  `json:"pageHeight,omitempty"`
}

func init() {
	rootCmd.AddCommand(replaceCmd)

	replaceCmd.Flags().Int("page", 1, "1-based page to search")
	replaceCmd.Flags().Float64("anchor-x", -1, "Anchor x in preview pixels")
	replaceCmd.Flags().Float64("anchor-y", -1, "Anchor y in preview pixels")
	replaceCmd.Flags().Float64("viewport-width", 0, "Preview width in pixels the anchor was measured on")
	replaceCmd.Flags().Float64("viewport-height", 0, "Preview height in pixels the anchor was measured on")
	replaceCmd.Flags().String("json", "", "Inline JSON array of replacement requests")
	replaceCmd.Flags().String("requests", "", "JSON file with a batch of replacement requests")
	replaceCmd.Flags().Float64("threshold", 0, "Minimum fuzzy match similarity (overrides configuration)")
	replaceCmd.Flags().Int("timeout", 300, "Processing timeout in seconds")
}

func runReplace(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("replace")
	inputPath, outputPath := args[0], args[1]

	inlineJSON, _ := cmd.Flags().GetString("json")
	requestsFile, _ := cmd.Flags().GetString("requests")
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	if _, err := validatePDFFile(inputPath, log); err != nil {
		return err
	}

	var requests []replace.Request
	var err error
	switch {
	case inlineJSON != "":
		requests, err = parseRequests([]byte(inlineJSON))
		if err != nil {
			return err
		}
	case requestsFile != "":
		data, readErr := os.ReadFile(requestsFile)
		if readErr != nil {
			return fmt.Errorf("reading requests file: %w", readErr)
		}
		requests, err = parseRequests(data)
		if err != nil {
			return err
		}
	default:
		if len(args) != 4 {
			return fmt.Errorf("old-text and new-text arguments are required without --json or --requests")
		}
		req, err := requestFromFlags(cmd, args[2], args[3])
		if err != nil {
			return err
		}
		requests = []replace.Request{req}
	}

	if threshold <= 0 {
		threshold = cfg.SimilarityThreshold
	}

	ctx, cancel := createContextWithTimeout(timeoutSecs, log)
	defer cancel()

	resolver := replace.NewResolver(threshold, cfg.LineTolerance)
	report, err := resolver.Apply(ctx, inputPath, outputPath, requests)
	if err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("Replacement run failed")
		return err
	}

	return printJSON(reportToModel(report))
}

func requestFromFlags(cmd *cobra.Command, oldText, newText string) (replace.Request, error) {
	page, _ := cmd.Flags().GetInt("page")
	ax, _ := cmd.Flags().GetFloat64("anchor-x")
	ay, _ := cmd.Flags().GetFloat64("anchor-y")
	vw, _ := cmd.Flags().GetFloat64("viewport-width")
	vh, _ := cmd.Flags().GetFloat64("viewport-height")

	req := replace.Request{OldText: oldText, NewText: newText, Page: page}
	if ax >= 0 && ay >= 0 {
		if vw <= 0 || vh <= 0 {
			return req, fmt.Errorf("--viewport-width and --viewport-height are required with an anchor")
		}
		req.Anchor = &replace.Anchor{
			X:        ax,
			Y:        ay,
			Viewport: pdfpage.Viewport{Width: vw, Height: vh},
		}
	}
	return req, nil
}

func parseRequests(data []byte) ([]replace.Request, error) {
	var wire []replaceRequestJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parsing replacement requests: %w", err)
	}

	requests := make([]replace.Request, 0, len(wire))
	for i, w := range wire {
		if w.OldText == "" {
			return nil, fmt.Errorf("request %d: oldText is required", i+1)
		}
		req := replace.Request{OldText: w.OldText, NewText: w.NewText, Page: w.PageNum}
		if w.X != nil && w.Y != nil {
			if w.PageWidth <= 0 || w.PageHeight <= 0 {
				return nil, fmt.Errorf("request %d: pageWidth and pageHeight are required with an anchor", i+1)
			}
			req.Anchor = &replace.Anchor{
				X:        *w.X,
				Y:        *w.Y,
				Viewport: pdfpage.Viewport{Width: w.PageWidth, Height: w.PageHeight},
			}
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func reportToModel(report *replace.Report) models.ReplacementReport {
	out := models.ReplacementReport{
		Success:          report.Succeeded(),
		Requested:        len(report.Results),
		ReplacementsMade: report.Applied,
		Unmatched:        report.Unmatched,
		Failed:           report.Failed,
	}
	for _, res := range report.Results {
		out.Results = append(out.Results, models.ReplacementOutcome{
			OldText:     res.Request.OldText,
			NewText:     res.Request.NewText,
			Page:        res.Request.Page,
			Status:      string(res.Status),
			MatchKind:   string(res.Kind),
			MatchMethod: string(res.Method),
			Similarity:  res.Score,
			MatchedText: res.MatchedText,
			Error:       res.Error,
		})
	}
	return out
}
