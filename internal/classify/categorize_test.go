package classify

import (
	"testing"

	"github.com/finbridge/statement-ingest/internal/models"
)

func TestCategorize_Generic(t *testing.T) {
	tests := []struct {
		description string
		category    string
		confidence  float64
	}{
		{"TESCO STORES 3456", "food", 0.9},
		{"SHELL PETROL STATION", "transportation", 0.8},
		{"BRITISH GAS ENERGY", "utilities", 0.9},
		{"NETFLIX.COM", "entertainment", 0.8},
		{"EBAY PURCHASE", "shopping", 0.7},
		{"BOOTS PHARMACY", "healthcare", 0.9},
		{"RENT MARCH", "housing", 0.9},
		{"UNRECOGNIZABLE MERCHANT XJQ", "other", OtherConfidence},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			cat, conf := Categorize(models.BankGeneric, tt.description)
			if cat != tt.category {
				t.Errorf("category: got %q, want %q", cat, tt.category)
			}
			if conf != tt.confidence {
				t.Errorf("confidence: got %f, want %f", conf, tt.confidence)
			}
		})
	}
}

func TestCategorize_TableOrder(t *testing.T) {
	// "car insurance" hits both transportation and housing-adjacent
	// keywords; the earlier table entry wins.
	cat, _ := Categorize(models.BankGeneric, "DIRECT LINE CAR INSURANCE")
	if cat != "transportation" {
		t.Errorf("got %q, want transportation", cat)
	}
}

func TestCategorize_BankTableShortCircuits(t *testing.T) {
	cat, conf := Categorize(models.BankHSBC, "CRCOGNIZANT SALARY JUL")
	if cat != "income" {
		t.Errorf("category: got %q, want income", cat)
	}
	if conf != 0.95 {
		t.Errorf("confidence: got %f, want 0.95", conf)
	}

	cat, conf = Categorize(models.BankLloyds, "VELOUR HOMES RENT")
	if cat != "rent" {
		t.Errorf("category: got %q, want rent", cat)
	}
	if conf != 0.95 {
		t.Errorf("confidence: got %f, want 0.95", conf)
	}
}

func TestCategorize_BankMissFallsToGeneric(t *testing.T) {
	// Not in the HSBC merchant table, but the generic food table knows it.
	cat, conf := Categorize(models.BankHSBC, "MORRISONS SUPERMARKET")
	if cat != "food" {
		t.Errorf("category: got %q, want food", cat)
	}
	if conf != 0.9 {
		t.Errorf("confidence: got %f, want 0.9", conf)
	}
}

func TestCategorize_ConfidenceBounds(t *testing.T) {
	descriptions := []string{
		"TESCO", "UBER TRIP", "RANDOM XYZ", "NETFLIX", "", "RENT",
	}
	for _, desc := range descriptions {
		_, conf := Categorize(models.BankGeneric, desc)
		if conf < 0 || conf > 1 {
			t.Errorf("confidence out of range for %q: %f", desc, conf)
		}
	}
}

func TestLloydsCSVCategory(t *testing.T) {
	cat, conf := LloydsCSVCategory("ALLIANCE EAST LOND", "FPO")
	if cat != "rent" || conf != 0.95 {
		t.Errorf("got %q/%f, want rent/0.95", cat, conf)
	}

	// Card payment with no recognized merchant defaults to shopping.
	cat, conf = LloydsCSVCategory("SOME SHOP 123", "CPT")
	if cat != "shopping" || conf != 0.7 {
		t.Errorf("got %q/%f, want shopping/0.7", cat, conf)
	}

	cat, conf = LloydsCSVCategory("NOTHING KNOWN", "FPI")
	if cat != "other" || conf != OtherConfidence {
		t.Errorf("got %q/%f, want other/%f", cat, conf, OtherConfidence)
	}
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Six or more uppercase alphanumerics in a row count as a
		// reference run, so "STORES" goes too.
		{"TESCO STORES ABC123XYZ99", "Tesco"},
		{"sainsburys local", "Sainsburys Local"},
		{"  spaced   out  ", "Spaced Out"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CleanDescription(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
