package ocr

import (
	"fmt"
	"strings"
)

// Tesseract emits one standalone HOCR document per image, each containing a
// single ocr_page div with id "page_1". The assembler wants one document
// with an ocr_page per input image, so the per-page bodies are spliced into
// a shared shell and renumbered.

const (
	hocrHeader = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
 <head>
  <title></title>
  <meta http-equiv="Content-Type" content="text/html;charset=utf-8"/>
  <meta name='ocr-system' content='tesseract'/>
  <meta name='ocr-capabilities' content='ocr_page ocr_carea ocr_par ocr_line ocrx_word'/>
 </head>
 <body>
`
	hocrFooter = ` </body>
</html>
`
)

// mergeHOCRPages combines per-page HOCR documents into one multi-page
// document. An empty entry yields a pageless placeholder so page order
// stays aligned with the input images.
func mergeHOCRPages(pages []string) []byte {
	var b strings.Builder
	b.WriteString(hocrHeader)
	for i, page := range pages {
		body := extractBody(page)
		if strings.TrimSpace(body) == "" {
			fmt.Fprintf(&b, "  <div class='ocr_page' id='page_%d'></div>\n", i+1)
			continue
		}
		body = strings.Replace(body, "id='page_1'", fmt.Sprintf("id='page_%d'", i+1), 1)
		body = strings.Replace(body, `id="page_1"`, fmt.Sprintf(`id="page_%d"`, i+1), 1)
		b.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			b.WriteByte('\n')
		}
	}
	b.WriteString(hocrFooter)
	return []byte(b.String())
}

// extractBody returns the markup between the body tags, or the input
// unchanged when no body element is present.
func extractBody(doc string) string {
	start := strings.Index(doc, "<body>")
	if start < 0 {
		return doc
	}
	start += len("<body>")
	end := strings.LastIndex(doc, "</body>")
	if end < start {
		return doc[start:]
	}
	return doc[start:end]
}
