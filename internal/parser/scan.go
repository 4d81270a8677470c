package parser

import (
	"strings"
	"time"

	"github.com/finbridge/statement-ingest/internal/classify"
	"github.com/finbridge/statement-ingest/internal/models"
)

// candidate is a transaction under assembly. It is created when a
// date-anchored line is found, accumulates description fragments and
// amount/balance tokens from lookahead lines, and is either built into a
// Transaction (amount confirmed) or dropped (window exhausted, amount
// non-positive, or description too short). A dropped candidate is never
// emitted.
type candidate struct {
	date       time.Time
	dateToken  string
	code       string
	fragments  []string
	amountTok  string
	balanceTok string
	source     []string
}

func newCandidate(date time.Time, dateToken, code string) *candidate {
	return &candidate{date: date, dateToken: dateToken, code: code}
}

// addFragment appends a piece of description text.
func (c *candidate) addFragment(s string) {
	s = strings.TrimSpace(s)
	if s != "" {
		c.fragments = append(c.fragments, s)
	}
}

// addSource records a physical line that contributed to this candidate.
func (c *candidate) addSource(line string) {
	line = strings.TrimSpace(line)
	if line != "" {
		c.source = append(c.source, line)
	}
}

// confirmed reports whether an amount token has been found.
func (c *candidate) confirmed() bool {
	return c.amountTok != ""
}

// build finalizes the candidate into an immutable Transaction. It returns
// false when the amount is non-positive or the cleaned description is
// shorter than minDesc, in which case the candidate must be discarded.
func (c *candidate) build(bank models.BankType, minDesc int) (models.Transaction, bool) {
	amount := ParseAmount(c.amountTok)
	if amount <= 0 {
		return models.Transaction{}, false
	}

	desc := collapseSpaces(strings.Join(c.fragments, " "))
	if len(desc) < minDesc {
		return models.Transaction{}, false
	}

	txn := models.Transaction{
		Date:        c.date,
		Description: desc,
		Amount:      amount,
		Direction:   classify.For(bank, c.code, desc),
		DialectCode: c.code,
		RawText:     strings.Join(c.source, " "),
	}

	if c.balanceTok != "" {
		if bal := ParseAmount(c.balanceTok); bal > 0 {
			txn.Balance = &bal
		}
	}

	return txn, true
}
