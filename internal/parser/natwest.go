package parser

import (
	"regexp"
	"strings"

	"github.com/finbridge/statement-ingest/internal/models"
)

// NatWestStrategy handles NatWest statements: one transaction per line,
// with both the amount and the running balance always present:
//
//	DD Mon YYYY  description  amount  balance
type NatWestStrategy struct{}

func (s *NatWestStrategy) Bank() models.BankType { return models.BankNatWest }

func (s *NatWestStrategy) DisplayName() string { return "NatWest" }

const natwestMinDescription = 2

var natwestLineRe = regexp.MustCompile(
	`^(\d{2}\s+[A-Za-z]{3}\s+\d{4})\s+(.+?)\s+([\d,]+\.\d{2})\s+([\d,]+\.\d{2})\s*$`,
)

func (s *NatWestStrategy) Parse(lines []models.RawLine) []models.Transaction {
	var txns []models.Transaction

	for _, line := range lines {
		m := natwestLineRe.FindStringSubmatch(line.Text)
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

		if txn, ok := c.build(models.BankNatWest, natwestMinDescription); ok {
			txns = append(txns, txn)
		}
	}

	return txns
}
