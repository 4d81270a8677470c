package writer

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/finbridge/statement-ingest/internal/models"
)

func TestXLSXWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := &XLSXWriter{}

	if err := w.Write(&buf, sampleBatch()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Date" || rows[0][1] != "Description" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][1] != "TESCO STORES" {
		t.Errorf("description: got %q", rows[1][1])
	}
	if rows[1][2] != "debit" {
		t.Errorf("direction: got %q", rows[1][2])
	}
}

func TestXLSXWriter_EmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	w := &XLSXWriter{}

	if err := w.Write(&buf, &models.BatchResult{Success: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header row only, got %d", len(rows))
	}
}
