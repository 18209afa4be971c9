package convert

import (
	"fmt"
	"os"
	"strings"

	"pdftools/internal/logger"
)

const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
.pdf-page { margin: 2em auto; max-width: 60em; }
.pdf-page + .pdf-page { border-top: 1px solid #ccc; padding-top: 2em; }
</style>
</head>
<body>
%s</body>
</html>
`

// ToHTML converts the PDF into a single HTML document with one section per
// page, using the renderer's positioned markup.
func ToHTML(inputPath, outputPath, title string) error {
	doc, err := openDoc(inputPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	var body strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		page, err := doc.HTML(i, false)
		if err != nil {
			return fmt.Errorf("rendering page %d as HTML: %w", i+1, err)
		}
		fmt.Fprintf(&body, "<div class=\"pdf-page\" id=\"page-%d\">\n%s\n</div>\n", i+1, page)
	}

	out := fmt.Sprintf(htmlShell, htmlEscape(title), body.String())
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return err
	}

	log := logger.WithComponent("convert")
	log.Info().
		Str("output", outputPath).
		Int("pages", doc.NumPage()).
		Msg("converted PDF to HTML")
	return nil
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
