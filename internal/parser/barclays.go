package parser

import (
	"regexp"
	"strings"

	"github.com/finbridge/statement-ingest/internal/models"
)

// BarclaysStrategy handles Barclays statements, which keep each
// transaction on a single line:
//
//	DD Mon YYYY  description  amount [balance]
//
// No multi-line assembly is needed.
type BarclaysStrategy struct{}

func (s *BarclaysStrategy) Bank() models.BankType { return models.BankBarclays }

func (s *BarclaysStrategy) DisplayName() string { return "Barclays" }

const barclaysMinDescription = 2

var barclaysLineRe = regexp.MustCompile(
	`^(\d{2}\s+[A-Za-z]{3}\s+\d{4})\s+(.+?)\s+([\d,]+\.\d{2})(?:\s+([\d,]+\.\d{2}))?\s*$`,
)

func (s *BarclaysStrategy) Parse(lines []models.RawLine) []models.Transaction {
	var txns []models.Transaction

	for _, line := range lines {
		m := barclaysLineRe.FindStringSubmatch(line.Text)
		if m == nil {
			continue
		}
		date, ok := ParseDate(m[1], layoutDayMonYYYY)
		if !ok {
			continue
		}

		c := newCandidate(date, m[1], "")
		c.addFragment(strings.TrimSpace(m[2]))
		c.amountTok = m[3]
		c.balanceTok = m[4]
		c.addSource(line.Text)

		if txn, ok := c.build(models.BankBarclays, barclaysMinDescription); ok {
			txns = append(txns, txn)
		}
	}

	return txns
}
