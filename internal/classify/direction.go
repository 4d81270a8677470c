// Package classify derives transaction direction and spending category
// from bank type codes and description text.
package classify

import (
	"strings"

	"github.com/finbridge/statement-ingest/internal/models"
)

// HSBC type codes. CR is the only incoming code; everything else the bank
// stamps on a statement line is money out.
var hsbcCreditCodes = map[string]bool{"CR": true}

var hsbcDebitCodes = map[string]bool{
	"TFR": true, "ATM": true, "VIS": true, "BP": true,
	"DD": true, "OBP": true, "CARD": true,
}

// Lloyds type codes: FPI = faster payment in, FPO = faster payment out,
// DEB = debit card, CPT = cashpoint, TFR = transfer (either direction).
var lloydsInboundCodes = map[string]bool{"FPI": true, "TFR": true}

var lloydsDebitCodes = map[string]bool{"DEB": true, "FPO": true, "CPT": true}

// For resolves the direction of a transaction. Bank-specific code tables
// take priority; unknown or absent codes fall back to a keyword scan of
// the description.
func For(bank models.BankType, code, description string) models.Direction {
	switch bank {
	case models.BankHSBC:
		if hsbcCreditCodes[code] {
			return models.Credit
		}
		if hsbcDebitCodes[code] {
			return models.Debit
		}
	case models.BankLloyds:
		if lloydsInboundCodes[code] && strings.Contains(strings.ToLower(description), "in") {
			return models.Credit
		}
		if lloydsDebitCodes[code] {
			return models.Debit
		}
	}
	return KeywordDirection(description)
}

var creditKeywords = []string{
	"salary", "wage", "pay", "deposit", "transfer in", "credit",
	"refund", "cashback", "interest", "dividend", "payment received",
}

var debitKeywords = []string{
	"withdrawal", "purchase", "payment", "fee", "charge", "debit",
	"atm", "card payment", "direct debit", "standing order",
}

// KeywordDirection classifies by description alone. Credit keywords are
// checked first; when nothing matches the transaction is assumed to be
// outgoing, which is the conservative default for unclassified movements.
func KeywordDirection(description string) models.Direction {
	lower := strings.ToLower(description)

	for _, kw := range creditKeywords {
		if strings.Contains(lower, kw) {
			return models.Credit
		}
	}
	for _, kw := range debitKeywords {
		if strings.Contains(lower, kw) {
			return models.Debit
		}
	}
	return models.Debit
}
