package parser

import (
	"testing"

	"github.com/finbridge/statement-ingest/internal/models"
)

func TestHSBCStrategy_DatedLine(t *testing.T) {
	s := &HSBCStrategy{}

	txns := s.Parse(rawLines(
		"31 Jul 25 CRCOGNIZANT 2,853.99",
	))

	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}

	txn := txns[0]
	if txn.Description != "COGNIZANT" {
		t.Errorf("description: got %q, want %q", txn.Description, "COGNIZANT")
	}
	if txn.Amount != 2853.99 {
		t.Errorf("amount: got %f, want 2853.99", txn.Amount)
	}
	if txn.Direction != models.Credit {
		t.Errorf("direction: got %q, want credit", txn.Direction)
	}
	if txn.DialectCode != "CR" {
		t.Errorf("code: got %q, want CR", txn.DialectCode)
	}
	if txn.Date.Day() != 31 || txn.Date.Month() != 7 || txn.Date.Year() != 2025 {
		t.Errorf("date: got %v", txn.Date)
	}
}

func TestHSBCStrategy_AmountOnFollowingLine(t *testing.T) {
	s := &HSBCStrategy{}

	txns := s.Parse(rawLines(
		"31 Jul 25 DDBRITISH GAS",
		"89.50",
	))

	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if txns[0].Description != "BRITISH GAS" {
		t.Errorf("description: got %q", txns[0].Description)
	}
	if txns[0].Amount != 89.50 {
		t.Errorf("amount: got %f, want 89.50", txns[0].Amount)
	}
	if txns[0].Direction != models.Debit {
		t.Errorf("direction: got %q, want debit", txns[0].Direction)
	}
}

func TestHSBCStrategy_UndatedContinuation(t *testing.T) {
	s := &HSBCStrategy{}

	// One date anchors two transactions: the dated one and a
	// code-prefixed continuation line below it.
	txns := s.Parse(rawLines(
		"31 Jul 25 VISTESCO STORES 25.50",
		"ATMCASH LONDON 100.00",
	))

	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txns))
	}
	if txns[1].DialectCode != "ATM" {
		t.Errorf("code: got %q, want ATM", txns[1].DialectCode)
	}
	if !txns[1].Date.Equal(txns[0].Date) {
		t.Error("continuation should inherit the anchor date")
	}
}

func TestHSBCStrategy_CardMarker(t *testing.T) {
	s := &HSBCStrategy{}

	txns := s.Parse(rawLines(
		"31 Jul 25 )))NETFLIX.COM 9.99",
	))

	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if txns[0].DialectCode != "CARD" {
		t.Errorf("code: got %q, want CARD", txns[0].DialectCode)
	}
	if txns[0].Direction != models.Debit {
		t.Errorf("direction: got %q, want debit", txns[0].Direction)
	}
}

func TestHSBCStrategy_ContinuationAmountRange(t *testing.T) {
	s := &HSBCStrategy{}

	// 25,000.00 on a continuation line is a stray balance figure, not a
	// transaction amount.
	txns := s.Parse(rawLines(
		"31 Jul 25 VISTESCO STORES 25.50",
		"ATMSOMEWHERE 25,000.00",
	))

	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
}

func TestHSBCStrategy_GroupWindowBound(t *testing.T) {
	s := &HSBCStrategy{}

	filler := func(n int) []string {
		lines := make([]string, n)
		for i := range lines {
			lines[i] = "some descriptive text"
		}
		return lines
	}

	// A continuation 9 lines below the anchor is still in the group.
	inWindow := append([]string{"31 Jul 25 VISTESCO STORES 25.50"}, filler(8)...)
	inWindow = append(inWindow, "ATMCASH LONDON 100.00")

	txns := s.Parse(rawLines(inWindow...))
	if len(txns) != 2 {
		t.Fatalf("expected 2 transactions at offset 9, got %d", len(txns))
	}

	// 10 lines below it is out.
	outOfWindow := append([]string{"31 Jul 25 VISTESCO STORES 25.50"}, filler(9)...)
	outOfWindow = append(outOfWindow, "ATMCASH LONDON 100.00")

	txns = s.Parse(rawLines(outOfWindow...))
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction at offset 10, got %d", len(txns))
	}
}

func TestHSBCStrategy_SkipsBoilerplate(t *testing.T) {
	s := &HSBCStrategy{}

	txns := s.Parse(rawLines(
		"Your Statement",
		"Account Name MR J DOE",
		"01 Jul 25 BALANCEBROUGHTFORWARD 1,000.00",
		"Opening Balance 1,000.00",
	))

	if len(txns) != 0 {
		t.Fatalf("expected no transactions from boilerplate, got %d", len(txns))
	}
}

func TestHSBCStrategy_NoDateNoTransaction(t *testing.T) {
	s := &HSBCStrategy{}

	txns := s.Parse(rawLines(
		"VISTESCO STORES 25.50",
		"random text with an amount 99.99",
	))

	if len(txns) != 0 {
		t.Fatalf("expected no transactions without a date anchor, got %d", len(txns))
	}
}

func TestHSBCStrategy_MissingAmountAbandoned(t *testing.T) {
	s := &HSBCStrategy{}

	txns := s.Parse(rawLines(
		"31 Jul 25 TFRSOME TRANSFER",
		"no amounts here",
		"nor here",
		"still nothing",
		"42.00 too far down to count",
	))

	if len(txns) != 0 {
		t.Fatalf("expected candidate to be abandoned, got %d transactions", len(txns))
	}
}
