package parser

import (
	"regexp"
	"strings"

	"github.com/finbridge/statement-ingest/internal/models"
)

// LloydsStrategy handles Lloyds personal statements.
//
// A Lloyds line carries, in order: date ("DD Mon YY"), description, a
// three-letter type code, money in / money out, and balance. PDF
// extraction mangles the column gaps into dot runs, so the line is taken
// apart positionally from the right: the balance is always the last
// decimal token, the amount is the decimal immediately before it, and the
// type code is the first standalone three-letter uppercase token in what
// remains.
type LloydsStrategy struct{}

func (s *LloydsStrategy) Bank() models.BankType { return models.BankLloyds }

func (s *LloydsStrategy) DisplayName() string { return "Lloyds" }

const lloydsMinDescription = 3

var (
	// Balance at end of line, e.g. "1,566.83".
	lloydsBalanceRe = regexp.MustCompile(`([\d,]+\.\d{2})\s*$`)
	// Amount (possibly blank) at the end of the pre-balance text.
	lloydsAmountRe = regexp.MustCompile(`([\d,]*\.?\d*)\s*$`)
	// Type code: DEB, FPI, FPO, TFR, CPT or any other 3-letter token.
	lloydsCodeRe = regexp.MustCompile(`\b([A-Z]{3})\b`)
	// Dot runs left over from the statement's column leaders.
	dotRunRe = regexp.MustCompile(`\.{2,}`)
)

func (s *LloydsStrategy) Parse(lines []models.RawLine) []models.Transaction {
	var txns []models.Transaction

	for _, line := range lines {
		if txn, ok := s.parseLine(line.Text); ok {
			txns = append(txns, txn)
		}
	}

	return txns
}

func (s *LloydsStrategy) parseLine(text string) (models.Transaction, bool) {
	m := anchorDayMonYYRe.FindStringSubmatch(text)
	if m == nil {
		return models.Transaction{}, false
	}
	date, ok := ParseDate(m[1], layoutDayMonYY)
	if !ok {
		return models.Transaction{}, false
	}
	remaining := strings.TrimSpace(text[len(m[0]):])

	bal := lloydsBalanceRe.FindStringSubmatchIndex(remaining)
	if bal == nil {
		return models.Transaction{}, false
	}
	balanceTok := remaining[bal[2]:bal[3]]
	beforeBalance := strings.TrimSpace(remaining[:bal[0]])

	// The money-in/money-out cell sits directly before the balance. A
	// blank cell leaves an empty token here, which parses to zero and
	// drops the candidate below.
	amountTok := ""
	descAndCode := beforeBalance
	if am := lloydsAmountRe.FindStringSubmatchIndex(beforeBalance); am != nil {
		amountTok = beforeBalance[am[2]:am[3]]
		descAndCode = strings.TrimSpace(beforeBalance[:am[0]])
	}

	code := "UNK"
	desc := descAndCode
	if cm := lloydsCodeRe.FindStringIndex(descAndCode); cm != nil {
		code = descAndCode[cm[0]:cm[1]]
		desc = strings.TrimSpace(descAndCode[:cm[0]])
	}

	desc = collapseSpaces(dotRunRe.ReplaceAllString(desc, " "))
	if len(desc) < lloydsMinDescription {
		return models.Transaction{}, false
	}

	c := newCandidate(date, m[1], code)
	c.addFragment(desc)
	c.amountTok = amountTok
	c.balanceTok = balanceTok
	c.addSource(text)

	return c.build(models.BankLloyds, lloydsMinDescription)
}
