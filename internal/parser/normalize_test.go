package parser

import (
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"25.99", 25.99},
		{"1,234.56", 1234.56},
		{"£25.99", 25.99},
		{"$25.99", 25.99},
		{"-25.99", -25.99},
		{"£1,234,567.89", 1234567.89},
		{"0.00", 0.00},
		{"", 0},
		{" 25.99 ", 25.99},
		{"not an amount", 0},
		{"-", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if got != tt.expected {
				t.Errorf("got %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		primary string
		want    time.Time
		ok      bool
	}{
		{"31 Jul 25", layoutDayMonYY, time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC), true},
		{"15 Jan 2024", layoutDayMonYYYY, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"15/01/2024", "", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"1/1/24", "", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"15-01-2024", "", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"15.01.2024", "", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"15 January 2024", "", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		// Primary fails, fallback catches it.
		{"15/01/2024", layoutDayMonYY, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"", "", time.Time{}, false},
		{"not a date", "", time.Time{}, false},
		{"32 Jan 24", layoutDayMonYY, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDate(tt.input, tt.primary)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStripFromFirstAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"COGNIZANT 2,853.99", "COGNIZANT"},
		{"BRITISH GAS 89.50 1,200.00", "BRITISH GAS"},
		{"NO AMOUNT HERE", "NO AMOUNT HERE"},
		{"9.99", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := stripFromFirstAmount(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
