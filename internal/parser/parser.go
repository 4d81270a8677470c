// Package parser reconstructs transactions from the flattened line
// sequence of a bank statement. Each supported bank has its own strategy;
// unknown banks and bank-specific passes that find nothing fall back to
// the generic strategy.
package parser

import (
	"strings"

	"github.com/finbridge/statement-ingest/internal/models"
)

// Strategy is one dialect's parsing rules. Parse is a pure function of
// the line sequence; per-line failures are recovered by skipping, so it
// returns no error.
type Strategy interface {
	Bank() models.BankType
	DisplayName() string
	Parse(lines []models.RawLine) []models.Transaction
}

// ForBank maps a bank identifier to its strategy. Unknown identifiers
// resolve to the generic strategy; this never fails.
func ForBank(name string) Strategy {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hsbc":
		return &HSBCStrategy{}
	case "lloyds", "lloyds bank":
		return &LloydsStrategy{}
	case "barclays":
		return &BarclaysStrategy{}
	case "natwest", "nat west":
		return &NatWestStrategy{}
	default:
		return &GenericStrategy{}
	}
}

// ParseLines runs the bank's strategy over the line sequence. When a
// bank-specific pass yields zero transactions, the generic strategy is
// tried and its results used instead. The second return names the
// strategy that actually produced the output.
func ParseLines(bankName string, lines []models.RawLine) ([]models.Transaction, string) {
	strategy := ForBank(bankName)
	txns := strategy.Parse(lines)

	if len(txns) == 0 && strategy.Bank() != models.BankGeneric {
		generic := &GenericStrategy{}
		if fallback := generic.Parse(lines); len(fallback) > 0 {
			return fallback, string(models.BankGeneric)
		}
	}

	return txns, string(strategy.Bank())
}

// bank identity markers used by AutoDetect.
var detectMarkers = []struct {
	bank    models.BankType
	needles []string
}{
	{models.BankHSBC, []string{"hsbc", "hsbc.co.uk"}},
	{models.BankLloyds, []string{"lloyds", "lloydsbank.com"}},
	{models.BankBarclays, []string{"barclays", "barclays.co.uk"}},
	{models.BankNatWest, []string{"natwest", "natwest.com", "national westminster"}},
}

// AutoDetect identifies the bank from statement content. Unrecognized
// content resolves to generic rather than failing.
func AutoDetect(pages []string) models.BankType {
	combined := strings.ToLower(strings.Join(pages, "\n"))
	for _, m := range detectMarkers {
		for _, needle := range m.needles {
			if strings.Contains(combined, needle) {
				return m.bank
			}
		}
	}
	return models.BankGeneric
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
