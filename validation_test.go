package stockfolio

import (
	"errors"
	"testing"
)

func TestIsValidTicker(t *testing.T) {
	testCases := []struct {
		name   string
		ticker string
		want   bool
	}{
		{"Single letter", "F", true},
		{"Four letters", "AAPL", true},
		{"Lowercase accepted", "msft", true},
		{"Empty string", "", false},
		{"Five letters", "GOOGL", false},
		{"Digits", "AAP1", false},
		{"Embedded comma", "AA,L", false},
		{"Whitespace", "AA L", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidTicker(tc.ticker); got != tc.want {
				t.Errorf("IsValidTicker(%q) = %v, want %v", tc.ticker, got, tc.want)
			}
		})
	}
}

func TestIsValidPriceAndAmount(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want bool
	}{
		{"Integer", "100", true},
		{"Decimal", "10.50", true},
		{"Zero", "0", true},
		{"Leading dot", ".5", true},
		{"Negative", "-1", false},
		{"Negative decimal", "-0.01", false},
		{"Not a number", "ten", false},
		{"Empty string", "", false},
		{"Two dots", "1.2.3", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidPrice(tc.in); got != tc.want {
				t.Errorf("IsValidPrice(%q) = %v, want %v", tc.in, got, tc.want)
			}
			if got := IsValidAmount(tc.in); got != tc.want {
				t.Errorf("IsValidAmount(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsValidDate(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want bool
	}{
		{"Plain date", "2024-01-15", true},
		{"Leap day on leap year", "2024-02-29", true},
		{"Leap day on non-leap year", "2023-02-29", false},
		{"Month out of range", "2024-13-01", false},
		{"Slash separators", "2024/01/01", false},
		{"Time component", "2024-01-15T00:00:00Z", false},
		{"Empty string", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidDate(tc.in); got != tc.want {
				t.Errorf("IsValidDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseRecord(t *testing.T) {
	raw, err := ParseRecord(" aapl ", "150.25", "2024-01-15", "10")
	if err != nil {
		t.Fatalf("ParseRecord() unexpected error: %v", err)
	}
	if raw.Ticker != "AAPL" {
		t.Errorf("Ticker = %q, want %q", raw.Ticker, "AAPL")
	}
	if raw.Price.String() != "150.25" {
		t.Errorf("Price = %s, want 150.25", raw.Price)
	}
	if raw.Date.String() != "2024-01-15" {
		t.Errorf("Date = %s, want 2024-01-15", raw.Date)
	}
	if raw.Amount.String() != "10" {
		t.Errorf("Amount = %s, want 10", raw.Amount)
	}
}

func TestParseRecordReportsFailingField(t *testing.T) {
	testCases := []struct {
		name                         string
		ticker, price, date, amount  string
		wantField                    string
	}{
		{"Bad ticker", "TOOLONG", "1", "2024-01-15", "1", "ticker"},
		{"Bad price", "AAPL", "abc", "2024-01-15", "1", "price"},
		{"Bad date", "AAPL", "1", "15/01/2024", "1", "date"},
		{"Bad amount", "AAPL", "1", "2024-01-15", "-3", "amount"},
		{"First failure wins", "", "abc", "nope", "-3", "ticker"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRecord(tc.ticker, tc.price, tc.date, tc.amount)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ParseRecord() error = %v, want a *ValidationError", err)
			}
			if verr.Field != tc.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tc.wantField)
			}
		})
	}
}
