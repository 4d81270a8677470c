// Package ingest exposes the statement-processing entry points. Each call
// is an independent, pure computation over the supplied bytes: failures at
// the buffer level come back as a structured result with Success=false,
// and no error or panic crosses this boundary.
package ingest

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/finbridge/statement-ingest/internal/classify"
	"github.com/finbridge/statement-ingest/internal/extractor"
	"github.com/finbridge/statement-ingest/internal/models"
	"github.com/finbridge/statement-ingest/internal/parser"
)

// Processor runs the ingestion pipeline. The zero value is usable; Log is
// an optional diagnostic logger and never affects results.
type Processor struct {
	Log *slog.Logger
}

// NewProcessor returns a Processor with the given logger; a nil logger
// discards all diagnostics.
func NewProcessor(log *slog.Logger) *Processor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Processor{Log: log}
}

func (p *Processor) logger() *slog.Logger {
	if p.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Log
}

// ProcessPDFStatement ingests a PDF statement and returns the batch of
// reconstructed transactions. An empty (or "auto") bank name is resolved
// by detecting the bank from the statement text. Month and year (when
// both non-zero) restrict the output to transactions dated in that exact
// calendar month.
func (p *Processor) ProcessPDFStatement(pdfBytes []byte, bankName string, month, year int) (result models.BatchResult) {
	log := p.logger()

	defer func() {
		if r := recover(); r != nil {
			result = failure(fmt.Sprintf("statement processing failed: %v", r))
		}
	}()

	pages, err := extractor.ExtractPages(pdfBytes)
	if err != nil {
		log.Warn("pdf extraction failed", "bank", bankName, "err", err)
		return failure(err.Error())
	}

	return p.processPages(pages, bankName, month, year)
}

// processPages runs the post-extraction pipeline over per-page text.
func (p *Processor) processPages(pages []string, bankName string, month, year int) models.BatchResult {
	log := p.logger()

	textLen := extractor.TotalTextLen(pages)
	if !extractor.IsViableText(pages) {
		return failure("PDF appears to be empty or contains very little text")
	}

	if name := strings.TrimSpace(bankName); name == "" || strings.EqualFold(name, "auto") {
		bankName = string(parser.AutoDetect(pages))
		log.Debug("auto-detected bank", "bank", bankName)
	}

	lines := extractor.Lines(pages)
	log.Debug("extracted statement text", "bank", bankName, "chars", textLen, "lines", len(lines))

	txns, method := parser.ParseLines(bankName, lines)
	log.Debug("parsed transactions", "method", method, "count", len(txns))

	txns = filterByPeriod(txns, month, year)

	bank := parser.ForBank(bankName).Bank()
	categorized := annotate(txns, bank)

	return models.BatchResult{
		BatchID:      uuid.NewString(),
		Transactions: nonNil(txns),
		TotalCount:   len(txns),
		BankName:     bankName,
		Success:      true,
		Debug: models.DebugInfo{
			TextLength:       textLen,
			CategorizedCount: categorized,
			ParsingMethod:    method,
		},
	}
}

// ProcessPDFStatement is the package-level convenience form with no
// diagnostic logging.
func ProcessPDFStatement(pdfBytes []byte, bankName string, month, year int) models.BatchResult {
	return NewProcessor(nil).ProcessPDFStatement(pdfBytes, bankName, month, year)
}

// filterByPeriod keeps transactions dated in the given calendar month,
// preserving order. Filtering only applies when both month and year are
// set; equality is strict, not a range.
func filterByPeriod(txns []models.Transaction, month, year int) []models.Transaction {
	if month == 0 || year == 0 {
		return txns
	}
	var kept []models.Transaction
	for _, t := range txns {
		if int(t.Date.Month()) == month && t.Date.Year() == year {
			kept = append(kept, t)
		}
	}
	return kept
}

// annotate fills in category, confidence and the cleaned description for
// every transaction, returning how many landed outside "other".
func annotate(txns []models.Transaction, bank models.BankType) int {
	categorized := 0
	for i := range txns {
		cat, conf := classify.Categorize(bank, txns[i].Description)
		txns[i].SuggestedCategory = cat
		txns[i].ConfidenceScore = conf
		txns[i].SuggestedDescription = classify.CleanDescription(txns[i].Description)
		if cat != "other" {
			categorized++
		}
	}
	return categorized
}

// nonNil keeps the JSON contract: transactions marshal as [], never null.
func nonNil(txns []models.Transaction) []models.Transaction {
	if txns == nil {
		return []models.Transaction{}
	}
	return txns
}

func failure(msg string) models.BatchResult {
	return models.BatchResult{
		Success:      false,
		Error:        msg,
		Transactions: []models.Transaction{},
	}
}
