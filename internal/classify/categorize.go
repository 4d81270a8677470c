package classify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/finbridge/statement-ingest/internal/models"
)

// OtherConfidence is the confidence assigned when no keyword table matches.
const OtherConfidence = 0.3

// categoryRule is one entry of an ordered keyword table. Tables are slices,
// not maps: keyword sets overlap ("insurance" appears under both
// transportation and healthcare) and first-match-wins must be reproducible.
type categoryRule struct {
	category   string
	keywords   []string
	confidence float64
}

// genericCategories is the shared table, checked in this exact order.
var genericCategories = []categoryRule{
	{"food", []string{
		"tesco", "asda", "sainsbury", "morrisons", "aldi", "lidl",
		"restaurant", "cafe", "takeaway", "pizza", "mcdonald", "kfc",
		"food", "grocery", "supermarket",
	}, 0.9},
	{"transportation", []string{
		"fuel", "petrol", "diesel", "train", "bus", "taxi", "uber",
		"parking", "mot", "insurance", "car", "vehicle",
	}, 0.8},
	{"utilities", []string{
		"electric", "gas", "water", "phone", "internet", "broadband",
		"mobile", "energy", "utility",
	}, 0.9},
	{"entertainment", []string{
		"netflix", "spotify", "amazon prime", "cinema", "theatre",
		"gym", "fitness", "sport", "game",
	}, 0.8},
	{"shopping", []string{
		"amazon", "ebay", "argos", "currys", "john lewis", "marks spencer",
		"next", "zara", "h&m", "clothes", "clothing",
	}, 0.7},
	{"healthcare", []string{
		"pharmacy", "chemist", "doctor", "dentist", "hospital",
		"medical", "health", "prescription",
	}, 0.9},
	{"housing", []string{
		"rent", "mortgage", "council tax", "home insurance",
		"maintenance", "repair", "diy",
	}, 0.9},
}

// hsbcCategories carries merchant names seen on HSBC statements.
var hsbcCategories = []categoryRule{
	{"transportation", []string{"tfl travel ch", "tfl.gov.uk/cp", "fuel", "petrol", "parking"}, 0.95},
	{"food", []string{"circolo popolare", "ristorante venezia", "restaurant", "food"}, 0.9},
	{"transfers", []string{"internet transfer", "sent from revolut"}, 0.95},
	{"income", []string{"cognizant", "salary", "payroll"}, 0.95},
	{"cash", []string{"atm cash", "cash withdrawal"}, 0.9},
	{"shopping", []string{"amazon prime", "apple.com/bill", "revolut"}, 0.85},
	{"utilities", []string{"american express", "hsbc card pymt"}, 0.9},
	{"rent", []string{"rent"}, 0.95},
	{"entertainment", []string{"fca stratford", "cinema", "theatre", "entertainment"}, 0.8},
}

// lloydsCategories carries merchant names seen on Lloyds statements.
var lloydsCategories = []categoryRule{
	{"food", []string{
		"tesco", "asda", "sainsbury", "morrisons", "aldi", "lidl", "waitrose",
		"chopstix", "great indian", "subway", "ppoint",
	}, 0.9},
	{"transportation", []string{"flix", "fuel", "petrol", "parking", "train", "bus"}, 0.9},
	{"utilities", []string{"lebara mobile", "phone", "mobile", "internet", "gas", "electric"}, 0.9},
	{"rent", []string{"velour homes", "alliance east lond", "rent", "housing"}, 0.95},
	{"cash", []string{"lloyds bank cashba", "atm", "cash"}, 0.9},
	{"shopping", []string{"amazon", "selecta"}, 0.8},
}

func bankTable(bank models.BankType) []categoryRule {
	switch bank {
	case models.BankHSBC:
		return hsbcCategories
	case models.BankLloyds:
		return lloydsCategories
	default:
		return nil
	}
}

func matchTable(table []categoryRule, lower string) (string, float64, bool) {
	for _, rule := range table {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category, rule.confidence, true
			}
		}
	}
	return "", 0, false
}

// Categorize assigns a category and confidence from layered keyword
// tables: the bank-specific merchant table first (a hit above 0.7
// short-circuits), then the shared generic table, else ("other", 0.3).
func Categorize(bank models.BankType, description string) (string, float64) {
	lower := strings.ToLower(description)

	if table := bankTable(bank); table != nil {
		if cat, conf, ok := matchTable(table, lower); ok && conf > 0.7 {
			return cat, conf
		}
	}

	if cat, conf, ok := matchTable(genericCategories, lower); ok {
		return cat, conf
	}

	return "other", OtherConfidence
}

// LloydsCSVCategory refines categorization for the Lloyds CSV format,
// where the transaction type code disambiguates transfers and rent before
// merchant matching. Card payments with no recognized merchant default to
// shopping at 0.7.
func LloydsCSVCategory(description, code string) (string, float64) {
	lower := strings.ToLower(description)

	if code == "FPO" && strings.Contains(lower, "alliance") {
		return "rent", 0.95
	}
	if code == "CPT" {
		if cat, conf, ok := matchTable(lloydsCategories, lower); ok {
			return cat, conf
		}
		return "shopping", 0.7
	}

	if cat, conf, ok := matchTable(lloydsCategories, lower); ok {
		return cat, conf
	}
	return "other", OtherConfidence
}

var refRunRe = regexp.MustCompile(`[A-Z0-9]{6,}`)

// CleanDescription produces the cosmetic rendering of a description:
// whitespace collapsed, reference-number runs of 6+ uppercase
// alphanumerics removed, remaining words title-cased. It never affects
// category selection.
func CleanDescription(description string) string {
	cleaned := refRunRe.ReplaceAllString(description, "")

	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	runes := []rune(strings.ToLower(w))
	if len(runes) == 0 {
		return w
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
