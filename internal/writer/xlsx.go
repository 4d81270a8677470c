package writer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/finbridge/statement-ingest/internal/models"
)

const xlsxSheet = "Transactions"

// XLSXWriter writes a processed batch to an Excel workbook.
type XLSXWriter struct{}

// WriteToFile writes the batch to an .xlsx file at the given path.
func (w *XLSXWriter) WriteToFile(path string, batch *models.BatchResult) error {
	f, err := w.build(batch)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", path, err)
	}
	return nil
}

// Write writes the batch as an XLSX workbook to the given writer.
func (w *XLSXWriter) Write(out io.Writer, batch *models.BatchResult) error {
	f, err := w.build(batch)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (w *XLSXWriter) build(batch *models.BatchResult) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	header := []interface{}{"Date", "Description", "Direction", "Amount", "Balance", "Category", "Confidence"}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, txn := range batch.Transactions {
		var balance interface{}
		if txn.Balance != nil {
			balance = *txn.Balance
		}
		row := []interface{}{
			txn.Date.Format("2006-01-02"),
			txn.Description,
			string(txn.Direction),
			txn.Amount,
			balance,
			txn.SuggestedCategory,
			txn.ConfidenceScore,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f, nil
}
