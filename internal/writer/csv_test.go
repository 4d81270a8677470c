package writer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/finbridge/statement-ingest/internal/models"
)

func sampleBatch() *models.BatchResult {
	balance := 974.50
	return &models.BatchResult{
		BatchID:  "b-123",
		BankName: "hsbc",
		Transactions: []models.Transaction{
			{
				Date:              time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				Description:       "TESCO STORES",
				Amount:            25.50,
				Balance:           &balance,
				Direction:         models.Debit,
				SuggestedCategory: "food",
				ConfidenceScore:   0.9,
			},
			{
				Date:              time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
				Description:       "SALARY",
				Amount:            2000,
				Direction:         models.Credit,
				SuggestedCategory: "other",
				ConfidenceScore:   0.3,
			},
		},
		TotalCount: 2,
		Success:    true,
	}
}

func TestCSVWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: true}

	if err := w.Write(&buf, sampleBatch()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")

	// 3 metadata rows + column header + 2 transactions
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "# Bank") {
		t.Errorf("expected bank metadata row, got %q", lines[0])
	}
	if lines[3] != "Date,Description,Direction,Amount,Balance,Category,Confidence" {
		t.Errorf("unexpected column header: %q", lines[3])
	}
	if lines[4] != "2024-01-15,TESCO STORES,debit,25.50,974.50,food,0.90" {
		t.Errorf("unexpected row: %q", lines[4])
	}
	if !strings.Contains(lines[5], "2000.00") {
		t.Errorf("expected amount in row, got %q", lines[5])
	}
	// No balance for the second transaction.
	if !strings.Contains(lines[5], ",2000.00,,") {
		t.Errorf("expected empty balance cell, got %q", lines[5])
	}
}

func TestCSVWriter_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}

	if err := w.Write(&buf, sampleBatch()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Date,") {
		t.Errorf("expected column header first, got %q", lines[0])
	}
}

func TestCSVWriter_EmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}

	if err := w.Write(&buf, &models.BatchResult{Success: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
}
