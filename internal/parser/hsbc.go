package parser

import (
	"strings"
	"time"

	"github.com/finbridge/statement-ingest/internal/models"
)

// HSBCStrategy handles HSBC personal statements.
//
// HSBC lays transactions out as
//
//	Date | Payment type and details | Paid out | Paid in | Balance
//
// with dates as "DD Mon YY". Two quirks drive the design: the type code
// (CR, TFR, ATM, ...) prefixes the details with no separator, and a single
// date line can anchor several transactions, the rest appearing on the
// undated lines that follow until the next date anchor.
type HSBCStrategy struct{}

func (s *HSBCStrategy) Bank() models.BankType { return models.BankHSBC }

func (s *HSBCStrategy) DisplayName() string { return "HSBC" }

const (
	// hsbcGroupWindow bounds the undated-line scan after a date anchor
	// (exclusive, so at most 9 lines are inspected).
	hsbcGroupWindow = 10
	// hsbcAmountWindow bounds the amount search below a dated code line.
	hsbcAmountWindow = 3
	// Continuation (undated) transactions only accept amounts in this
	// range, rejecting stray balance figures.
	hsbcMinContinuationAmount = 0.50
	hsbcMaxContinuationAmount = 10000.00

	hsbcMinDescription = 2
)

// Codes checked against the start of a dated line, in match order.
var hsbcDatedCodes = []string{"CR", "TFR", "ATM", "VIS", "BP", "DD", "OBP"}

// Codes checked against the start of an undated continuation line.
var hsbcUndatedCodes = []string{"VIS", "ATM", "BP", "CR", "DD"}

// cardMarker is the literal HSBC prints before contactless card rows; it
// maps to a synthetic CARD code.
const cardMarker = ")))"

// Boilerplate markers: any line containing one of these is skipped before
// date matching.
var hsbcSkipMarkers = []string{
	"Contact tel", "Text phone", "www.hsbc.co.uk", "Your Statement",
	"Account Name", "Sortcode", "Account Number", "Sheet Number",
	"Opening Balance", "Payments In", "Payments Out", "Closing Balance",
	"International Bank Account Number", "Bank Identifier Code",
	"see reverse for call times", "used by deaf or speech impaired",
	"BALANCEBROUGHTFORWARD", "BALANCECARRIEDFORWARD",
}

// Markers skipped inside a transaction group without ending it.
var hsbcGroupSkipMarkers = []string{"BALANCE", "Contact tel", "Text phone", "Account Name"}

func (s *HSBCStrategy) Parse(lines []models.RawLine) []models.Transaction {
	var txns []models.Transaction

	for i := 0; i < len(lines); i++ {
		text := lines[i].Text
		if containsAny(text, hsbcSkipMarkers) {
			continue
		}

		m := anchorDayMonYYRe.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		date, ok := ParseDate(m[1], layoutDayMonYY)
		if !ok {
			continue
		}
		remaining := strings.TrimSpace(text[len(m[0]):])

		if txn, ok := s.datedTransaction(date, m[1], remaining, lines, i); ok {
			txns = append(txns, txn)
		}

		// The date line may anchor further transactions on the undated
		// lines below it, up to the next date anchor. The window is
		// exclusive: offsets 1 through hsbcGroupWindow-1.
		for j := i + 1; j < len(lines) && j < i+hsbcGroupWindow; j++ {
			next := lines[j].Text
			if anchorDayMonYYRe.MatchString(next) {
				break
			}
			if containsAny(next, hsbcGroupSkipMarkers) {
				continue
			}
			if txn, ok := s.undatedTransaction(date, next, lines, j); ok {
				txns = append(txns, txn)
			}
		}
	}

	return txns
}

// splitCode strips a known type code from the front of a line. HSBC glues
// the code straight onto the details ("CRCOGNIZANT"), so this is a plain
// prefix match against the dialect's closed code set.
func splitCode(line string, codes []string) (code, rest string, ok bool) {
	for _, c := range codes {
		if strings.HasPrefix(line, c) {
			return c, strings.TrimSpace(line[len(c):]), true
		}
	}
	if strings.HasPrefix(line, cardMarker) {
		return "CARD", strings.TrimSpace(line[len(cardMarker):]), true
	}
	return "", line, false
}

// datedTransaction assembles the transaction anchored directly on a date
// line. The amount may sit on the same line or within the next few lines;
// leftover text on a lookahead amount line joins the description.
func (s *HSBCStrategy) datedTransaction(date time.Time, dateTok, remaining string, lines []models.RawLine, idx int) (models.Transaction, bool) {
	code, details, ok := splitCode(remaining, hsbcDatedCodes)
	if !ok {
		// No type code after the date: not a transaction start.
		return models.Transaction{}, false
	}

	c := newCandidate(date, dateTok, code)
	c.addSource(dateTok + " " + remaining)

	if m := bareAmountRe.FindString(remaining); m != "" {
		c.amountTok = m
		c.addFragment(stripFromFirstAmount(details))
		return c.build(models.BankHSBC, hsbcMinDescription)
	}

	// Amount wasn't on the date line; search the lookahead window.
	c.addFragment(details)
	for j := idx + 1; j < len(lines) && j <= idx+hsbcAmountWindow; j++ {
		next := lines[j].Text
		m := bareAmountRe.FindString(next)
		if m == "" {
			continue
		}
		c.amountTok = m
		if part := stripFromFirstAmount(next); len(part) > 2 {
			c.addFragment(part)
		}
		c.addSource(next)
		return c.build(models.BankHSBC, hsbcMinDescription)
	}

	// Window exhausted without an amount: abandon the candidate.
	return models.Transaction{}, false
}

// undatedTransaction assembles an additional transaction from a
// code-prefixed line below a date anchor. Amounts outside the
// continuation range are rejected as stray balance figures.
func (s *HSBCStrategy) undatedTransaction(date time.Time, line string, lines []models.RawLine, idx int) (models.Transaction, bool) {
	code, details, ok := splitCode(line, hsbcUndatedCodes)
	if !ok {
		return models.Transaction{}, false
	}

	c := newCandidate(date, "", code)
	c.addSource(line)

	if m := bareAmountRe.FindString(line); m != "" {
		c.amountTok = m
		c.addFragment(stripFromFirstAmount(details))
	} else if idx+1 < len(lines) {
		next := lines[idx+1].Text
		if m := bareAmountRe.FindString(next); m != "" {
			c.amountTok = m
			c.addFragment(details)
			if part := stripFromFirstAmount(next); len(part) > 2 {
				c.addFragment(part)
			}
			c.addSource(next)
		}
	}

	if !c.confirmed() {
		return models.Transaction{}, false
	}

	amount := ParseAmount(c.amountTok)
	if amount < hsbcMinContinuationAmount || amount > hsbcMaxContinuationAmount {
		return models.Transaction{}, false
	}

	return c.build(models.BankHSBC, hsbcMinDescription)
}
