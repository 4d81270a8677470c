package parser

import (
	"regexp"
	"strings"

	"github.com/finbridge/statement-ingest/internal/models"
)

// GenericStrategy is the dialect of last resort: it looks for a date
// anywhere on the line (three grammars) and amounts anywhere after it
// (two grammars), without requiring the bank's column layout. It runs for
// unrecognized banks and whenever a bank-specific pass finds nothing.
type GenericStrategy struct{}

func (s *GenericStrategy) Bank() models.BankType { return models.BankGeneric }

func (s *GenericStrategy) DisplayName() string { return "Generic" }

const (
	genericMinLineLen     = 10
	genericMinDescription = 3
)

// Date grammars tried in order; the first hit wins.
var genericDateRes = []*regexp.Regexp{numericDateRe, textDateRe, longDateRe}

// Headers and footers that survive description cleaning but are never
// transactions.
var genericNoiseWords = map[string]bool{
	"balance": true, "total": true, "page": true, "statement": true,
}

func (s *GenericStrategy) Parse(lines []models.RawLine) []models.Transaction {
	var txns []models.Transaction

	for _, line := range lines {
		if txn, ok := s.parseLine(line.Text); ok {
			txns = append(txns, txn)
		}
	}

	return txns
}

func (s *GenericStrategy) parseLine(text string) (models.Transaction, bool) {
	if len(text) < genericMinLineLen {
		return models.Transaction{}, false
	}

	var dateLoc []int
	for _, re := range genericDateRes {
		if loc := re.FindStringSubmatchIndex(text); loc != nil {
			dateLoc = loc
			break
		}
	}
	if dateLoc == nil {
		return models.Transaction{}, false
	}

	dateTok := text[dateLoc[2]:dateLoc[3]]
	date, ok := ParseDate(dateTok, "")
	if !ok {
		return models.Transaction{}, false
	}

	rest := text[dateLoc[1]:]

	// Two amount grammars, tried independently: currency-prefixed first,
	// then plain decimals.
	tokens := currencyAmountRe.FindAllStringSubmatch(rest, -1)
	if len(tokens) == 0 {
		tokens = decimalAmountRe.FindAllStringSubmatch(rest, -1)
	}

	// Keep only tokens with a positive magnitude; the first is the
	// transaction amount, the second (if any) the running balance.
	var positive []string
	for _, m := range tokens {
		if ParseAmount(m[1]) > 0 {
			positive = append(positive, m[1])
		}
	}
	if len(positive) == 0 {
		return models.Transaction{}, false
	}

	// Description is what remains after removing the amount tokens.
	desc := rest
	for _, m := range tokens {
		desc = strings.Replace(desc, m[0], "", 1)
	}
	desc = collapseSpaces(strings.NewReplacer("£", "", "$", "").Replace(desc))
	if len(desc) < genericMinDescription || genericNoiseWords[strings.ToLower(desc)] {
		return models.Transaction{}, false
	}

	c := newCandidate(date, dateTok, "")
	c.addFragment(desc)
	c.amountTok = positive[0]
	if len(positive) > 1 {
		c.balanceTok = positive[1]
	}
	c.addSource(text)

	return c.build(models.BankGeneric, genericMinDescription)
}
