package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/finbridge/statement-ingest/internal/models"
)

// CSVWriter writes a processed batch to CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes the batch to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, batch *models.BatchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, batch)
}

// Write writes the batch in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, batch *models.BatchResult) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	// Write metadata as comments (CSV header rows)
	if w.IncludeHeader {
		if batch.BankName != "" {
			writer.Write([]string{"# Bank", batch.BankName})
		}
		if batch.BatchID != "" {
			writer.Write([]string{"# Batch", batch.BatchID})
		}
		writer.Write([]string{"# Transactions", strconv.Itoa(batch.TotalCount)})
	}

	header := []string{"Date", "Description", "Direction", "Amount", "Balance", "Category", "Confidence"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range batch.Transactions {
		balance := ""
		if txn.Balance != nil {
			balance = formatAmount(*txn.Balance)
		}
		row := []string{
			txn.Date.Format("2006-01-02"),
			txn.Description,
			string(txn.Direction),
			formatAmount(txn.Amount),
			balance,
			txn.SuggestedCategory,
			strconv.FormatFloat(txn.ConfidenceScore, 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
