package pdf

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/microcosm-cc/bluemonday"
)

const fallbackNote = "For full formatting, view the HTML version or print from browser."

var (
	titlePattern     = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	paragraphPattern = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	stripPolicy      = bluemonday.StrictPolicy()
)

// FallbackConverter writes a plain A4 PDF with the candidate name and summary.
// It needs no browser and is used when Chrome is unavailable.
type FallbackConverter struct{}

func (FallbackConverter) Convert(ctx context.Context, document string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(strings.Replace(extractText(document, titlePattern), " - Resume", "", 1))
	summary := extractText(document, paragraphPattern)

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(19.05, 19.05, 19.05)
	doc.SetAutoPageBreak(true, 19.05)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 24)
	doc.SetTextColor(0x25, 0x63, 0xeb)
	doc.MultiCell(0, 11, tr(name), "", "C", false)
	doc.Ln(5)

	if summary != "" {
		doc.Ln(3)
		doc.SetFont("Helvetica", "B", 14)
		doc.SetTextColor(0x25, 0x63, 0xeb)
		doc.CellFormat(0, 8, tr("Professional Summary"), "B", 1, "L", false, 0, "")
		doc.Ln(2)
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(0x37, 0x41, 0x51)
		doc.MultiCell(0, 5, tr(summary), "", "L", false)
		doc.Ln(2)
	}

	doc.Ln(5)
	doc.SetFont("Helvetica", "I", 10)
	doc.SetTextColor(0x37, 0x41, 0x51)
	doc.MultiCell(0, 5, tr(fallbackNote), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("fallback pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// extractText returns the tag-free text of the first match of pattern.
func extractText(document string, pattern *regexp.Regexp) string {
	m := pattern.FindStringSubmatch(document)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(m[1])))
}
