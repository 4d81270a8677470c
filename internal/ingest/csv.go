package ingest

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finbridge/statement-ingest/internal/classify"
	"github.com/finbridge/statement-ingest/internal/models"
	"github.com/finbridge/statement-ingest/internal/parser"
)

// lloydsCSVSignature is the start of the header row Lloyds online banking
// exports; seeing it switches to the split debit/credit column path.
const lloydsCSVSignature = "Transaction Date,Transaction Type,Sort Code,Account Number"

// ProcessCSVStatement ingests a CSV statement export. The three column
// parameters name the date, description and amount columns when the file
// has a header; without one, columns 0, 1 and 2 are assumed. A Lloyds
// header signature is auto-detected and handled specially since Lloyds
// splits the amount across separate Debit Amount and Credit Amount
// columns.
func (p *Processor) ProcessCSVStatement(csvText, dateColumn, descriptionColumn, amountColumn string, hasHeader bool, filename string) (result models.BatchResult) {
	log := p.logger()

	defer func() {
		if r := recover(); r != nil {
			result = failure(fmt.Sprintf("CSV processing failed: %v", r))
		}
	}()

	firstLine, _, _ := strings.Cut(csvText, "\n")
	if strings.Contains(firstLine, lloydsCSVSignature) {
		log.Debug("detected Lloyds CSV header", "file", filename)
		return p.processLloydsCSV(csvText)
	}

	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return failure(fmt.Sprintf("could not read CSV: %v", err))
	}
	if len(records) == 0 {
		return failure("CSV file is empty")
	}

	colIdx := map[string]int{}
	rows := records
	if hasHeader {
		for i, name := range records[0] {
			colIdx[strings.TrimSpace(name)] = i
		}
		rows = records[1:]
	}

	var txns []models.Transaction
	for _, row := range rows {
		var dateStr, desc, amountStr string
		if hasHeader {
			dateStr = field(row, colIdx, dateColumn)
			desc = field(row, colIdx, descriptionColumn)
			amountStr = field(row, colIdx, amountColumn)
		} else {
			if len(row) < 3 {
				continue
			}
			dateStr, desc, amountStr = row[0], row[1], row[2]
		}

		txn, ok := genericCSVTransaction(dateStr, desc, amountStr, row)
		if !ok {
			continue
		}
		txns = append(txns, txn)
	}

	categorized := 0
	for _, t := range txns {
		if t.SuggestedCategory != "other" {
			categorized++
		}
	}

	return models.BatchResult{
		BatchID:      uuid.NewString(),
		Transactions: nonNil(txns),
		TotalCount:   len(txns),
		Success:      true,
		Debug: models.DebugInfo{
			TextLength:       len(csvText),
			CategorizedCount: categorized,
			ParsingMethod:    "csv",
		},
	}
}

// ProcessCSVStatement is the package-level convenience form with no
// diagnostic logging.
func ProcessCSVStatement(csvText, dateColumn, descriptionColumn, amountColumn string, hasHeader bool, filename string) models.BatchResult {
	return NewProcessor(nil).ProcessCSVStatement(csvText, dateColumn, descriptionColumn, amountColumn, hasHeader, filename)
}

func field(row []string, colIdx map[string]int, name string) string {
	idx, ok := colIdx[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// genericCSVTransaction builds one transaction from named (or positional)
// columns. Rows with unparseable dates or non-positive amounts are
// skipped.
func genericCSVTransaction(dateStr, desc, amountStr string, row []string) (models.Transaction, bool) {
	desc = strings.TrimSpace(desc)
	if dateStr == "" || desc == "" || amountStr == "" {
		return models.Transaction{}, false
	}

	date, ok := parser.ParseDate(dateStr, "")
	if !ok {
		return models.Transaction{}, false
	}
	amount := parser.ParseAmount(amountStr)
	if amount <= 0 {
		return models.Transaction{}, false
	}

	cat, conf := classify.Categorize(models.BankGeneric, desc)

	return models.Transaction{
		Date:                 date,
		Description:          desc,
		Amount:               amount,
		Direction:            classify.KeywordDirection(desc),
		RawText:              strings.Join(row, ","),
		SuggestedCategory:    cat,
		ConfidenceScore:      conf,
		SuggestedDescription: classify.CleanDescription(desc),
	}, true
}

// processLloydsCSV handles the Lloyds export layout:
//
//	Transaction Date,Transaction Type,Sort Code,Account Number,
//	Transaction Description,Debit Amount,Credit Amount,Balance
//
// The credit column wins when both carry a value; the type code then
// overrides direction for the unambiguous outgoing codes.
func (p *Processor) processLloydsCSV(csvText string) models.BatchResult {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return failure(fmt.Sprintf("could not read Lloyds CSV: %v", err))
	}
	if len(records) < 2 {
		return failure("Lloyds CSV has no data rows")
	}

	colIdx := map[string]int{}
	for i, name := range records[0] {
		colIdx[strings.TrimSpace(name)] = i
	}

	var txns []models.Transaction
	categorized := 0
	for _, row := range records[1:] {
		dateStr := field(row, colIdx, "Transaction Date")
		code := field(row, colIdx, "Transaction Type")
		desc := field(row, colIdx, "Transaction Description")
		debitStr := field(row, colIdx, "Debit Amount")
		creditStr := field(row, colIdx, "Credit Amount")
		balanceStr := field(row, colIdx, "Balance")

		if dateStr == "" || desc == "" {
			continue
		}

		date, ok := parser.ParseDate(dateStr, parser.LayoutSlashYYYY)
		if !ok {
			continue
		}

		direction := models.Debit
		amount := 0.0
		if v := parser.ParseAmount(creditStr); v > 0 {
			amount = v
			direction = models.Credit
		} else if v := parser.ParseAmount(debitStr); v > 0 {
			amount = v
		}
		if amount <= 0 {
			continue
		}

		// DEB/FPO/CPT are always money out, whichever column was filled.
		switch code {
		case "DEB", "FPO", "CPT":
			direction = models.Debit
		}

		cat, conf := classify.LloydsCSVCategory(desc, code)
		if cat != "other" {
			categorized++
		}

		txn := models.Transaction{
			Date:                 date,
			Description:          desc,
			Amount:               amount,
			Direction:            direction,
			DialectCode:          code,
			RawText:              strings.Join(row, ","),
			SuggestedCategory:    cat,
			ConfidenceScore:      conf,
			SuggestedDescription: classify.CleanDescription(desc),
		}
		if bal := parser.ParseAmount(balanceStr); bal > 0 {
			txn.Balance = &bal
		}

		txns = append(txns, txn)
	}

	return models.BatchResult{
		BatchID:      uuid.NewString(),
		Transactions: nonNil(txns),
		TotalCount:   len(txns),
		BankName:     "Lloyds Bank",
		Success:      true,
		Debug: models.DebugInfo{
			TextLength:       len(csvText),
			CategorizedCount: categorized,
			ParsingMethod:    "lloyds-csv",
		},
	}
}
