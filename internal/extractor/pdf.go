package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/finbridge/statement-ingest/internal/models"
)

// MinViableText is the minimum number of extracted characters below which
// a statement is treated as unreadable (scanned, encrypted, or empty).
const MinViableText = 50

// ExtractPages decodes a PDF byte buffer and returns the text of each page
// in page order. Row-based extraction runs first because it preserves the
// line boundaries the dialect parsers anchor on; plain-text extraction is
// the fallback when it yields too little. It fails on corrupt or encrypted
// documents and on PDFs with no pages; per-page extraction errors are
// tolerated as long as at least one page yields text.
func ExtractPages(data []byte) (pages []string, err error) {
	// The pdf library panics on some malformed xref tables.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("PDF decode failed: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	numPages := reader.NumPage()
	if numPages < 1 {
		return nil, fmt.Errorf("PDF contains no pages")
	}

	pages = extractByRow(reader, numPages)
	if !IsViableText(pages) {
		if fallback := extractByPlainText(reader, numPages); TotalTextLen(fallback) > TotalTextLen(pages) {
			pages = fallback
		}
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no text could be extracted from any page")
	}

	return pages, nil
}

// extractByRow rebuilds each page from its text rows, one line per row.
func extractByRow(reader *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		if text := rowText(rows); text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}

// rowText joins the words of each row with single spaces and the rows with
// line breaks, dropping rows that come out empty.
func rowText(rows pdf.Rows) string {
	var lines []string
	for _, row := range rows {
		var parts []string
		for _, word := range row.Content {
			parts = append(parts, word.S)
		}
		if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// extractByPlainText is the fallback for documents whose row structure the
// library cannot recover.
func extractByPlainText(reader *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}
	return pages
}

// Lines flattens per-page text into a single ordered sequence of trimmed,
// non-empty lines. Pages are concatenated in page order with a separating
// line break, so lookahead windows can cross page boundaries.
func Lines(pages []string) []models.RawLine {
	var lines []models.RawLine
	for pageNum, page := range pages {
		for idx, line := range strings.Split(page, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			lines = append(lines, models.RawLine{
				Page:  pageNum + 1,
				Index: idx,
				Text:  trimmed,
			})
		}
	}
	return lines
}

// TotalTextLen is the combined character count across pages, used for the
// viability check and for diagnostics.
func TotalTextLen(pages []string) int {
	total := 0
	for _, p := range pages {
		total += len(p)
	}
	return total
}

// IsViableText reports whether enough text was extracted to be worth
// parsing at all.
func IsViableText(pages []string) bool {
	return TotalTextLen(pages) > MinViableText
}
