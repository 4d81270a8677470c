package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date layouts tried after a dialect's primary format fails, in priority
// order. Non-padded layouts accept both "2" and "02" day/month tokens.
var dateFallbackLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/06",
	"2-1-06",
	"2.1.06",
	"2 Jan 2006",
	"2 Jan 06",
	"2 January 2006",
}

// Dialect primary date layouts.
const (
	layoutDayMonYY   = "2 Jan 06"   // HSBC, Lloyds: "31 Jul 25"
	layoutDayMonYYYY = "2 Jan 2006" // Barclays, NatWest: "15 Jan 2024"

	// LayoutSlashYYYY is the strict numeric layout of Lloyds CSV exports.
	LayoutSlashYYYY = "2/1/2006"
)

var innerSpaceRe = regexp.MustCompile(`\s+`)

// collapseSpaces trims and squeezes runs of whitespace to single spaces.
func collapseSpaces(s string) string {
	return strings.TrimSpace(innerSpaceRe.ReplaceAllString(s, " "))
}

// ParseDate parses a date token against the dialect's primary layout and
// then the shared fallback list. The second return is false when every
// layout fails; callers must discard the candidate in that case.
func ParseDate(token, primary string) (time.Time, bool) {
	token = collapseSpaces(token)
	if token == "" {
		return time.Time{}, false
	}
	if primary != "" {
		if t, err := time.Parse(primary, token); err == nil {
			return t, true
		}
	}
	for _, layout := range dateFallbackLayouts {
		if layout == primary {
			continue
		}
		if t, err := time.Parse(layout, token); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseAmount converts a monetary token like "£1,234.56" to its magnitude.
// Empty or unparseable tokens yield 0.0, never an error; callers enforce
// positivity themselves.
func ParseAmount(token string) float64 {
	cleaned := strings.NewReplacer(
		"£", "",
		"$", "",
		"€", "",
		",", "",
		" ", "",
		" ", "",
	).Replace(strings.TrimSpace(token))

	if cleaned == "" || cleaned == "-" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// Amount grammars shared by the dialects.
var (
	// decimalAmountRe matches a plain decimal amount, with optional
	// thousands separators: "25.50", "2,853.99".
	decimalAmountRe = regexp.MustCompile(`\b(\d{1,3}(?:,\d{3})*\.\d{2})\b`)
	// currencyAmountRe matches a symbol-prefixed amount that may omit
	// pence: "£25", "$1,200.50".
	currencyAmountRe = regexp.MustCompile(`[£$]\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	// bareAmountRe matches any comma-grouped decimal run, used where
	// position (not word boundary) disambiguates: "2853.99".
	bareAmountRe = regexp.MustCompile(`([\d,]+\.\d{2})`)
)

// Date grammars shared by the dialects.
var (
	// anchorDayMonYYRe matches "DD Mon YY" at line start (HSBC, Lloyds).
	anchorDayMonYYRe = regexp.MustCompile(`^(\d{2}\s+[A-Za-z]{3}\s+\d{2})\b`)
	// numericDateRe matches DD/MM/YYYY with /, - or . separators.
	numericDateRe = regexp.MustCompile(`(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`)
	// textDateRe matches "DD Mon YY" or "DD Mon YYYY" anywhere.
	textDateRe = regexp.MustCompile(`(\d{1,2}\s+[A-Za-z]{3}\s+\d{2,4})`)
	// longDateRe matches "DD Month YYYY" with the month written out.
	longDateRe = regexp.MustCompile(`(\d{1,2}\s+[A-Za-z]{4,}\s+\d{4})`)
)

// firstAmountIndex returns the byte offsets of the first decimal amount in
// s, or nil when there is none.
func firstAmountIndex(s string) []int {
	return bareAmountRe.FindStringIndex(s)
}

// stripFromFirstAmount removes everything from the first decimal amount
// onwards, leaving the descriptive prefix.
func stripFromFirstAmount(s string) string {
	if loc := firstAmountIndex(s); loc != nil {
		return strings.TrimSpace(s[:loc[0]])
	}
	return strings.TrimSpace(s)
}
