package models

import "time"

// BankType identifies a supported statement dialect.
type BankType string

const (
	BankHSBC     BankType = "hsbc"
	BankLloyds   BankType = "lloyds"
	BankBarclays BankType = "barclays"
	BankNatWest  BankType = "natwest"
	BankGeneric  BankType = "generic"
)

// Direction is the movement of money relative to the account.
type Direction string

const (
	Credit Direction = "credit"
	Debit  Direction = "debit"
)

// RawLine is one non-empty, trimmed line of extracted statement text.
// Only sequential order matters to the parsers; page and index are kept
// for diagnostics.
type RawLine struct {
	Page  int    `json:"page"`
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Transaction is a single fully reconstructed statement transaction.
// Amount is always a positive magnitude; Direction carries the sign.
type Transaction struct {
	Date                 time.Time `json:"date"`
	Description          string    `json:"description"`
	Amount               float64   `json:"amount"`
	Balance              *float64  `json:"balance,omitempty"`
	Direction            Direction `json:"direction"`
	DialectCode          string    `json:"dialectCode,omitempty"` // bank type token, e.g. TFR, DEB
	RawText              string    `json:"rawText,omitempty"`
	SuggestedCategory    string    `json:"suggestedCategory,omitempty"`
	ConfidenceScore      float64   `json:"confidenceScore,omitempty"`
	SuggestedDescription string    `json:"suggestedDescription,omitempty"`
}

// DebugInfo summarises what the pipeline did with one statement.
type DebugInfo struct {
	TextLength       int    `json:"textLength"`
	CategorizedCount int    `json:"categorizedCount"`
	ParsingMethod    string `json:"parsingMethod"`
}

// BatchResult is the outcome of one statement-processing call.
type BatchResult struct {
	BatchID      string        `json:"batchId,omitempty"`
	Transactions []Transaction `json:"transactions"`
	TotalCount   int           `json:"totalCount"`
	BankName     string        `json:"bankName,omitempty"`
	Success      bool          `json:"success"`
	Error        string        `json:"error,omitempty"`
	Debug        DebugInfo     `json:"debugInfo"`
}
