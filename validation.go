package stockfolio

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/etnz/stockfolio/date"
	"github.com/shopspring/decimal"
)

// The four field predicates are total: any input string yields a plain
// true or false, malformed values are rejected, never coerced.

var tickerRegex = regexp.MustCompile(`^[A-Za-z]{1,4}$`)

// IsValidTicker reports whether s is an acceptable ticker symbol:
// 1 to 4 letters. The empty string is rejected; a symbol nobody can type
// into a quote request is not a ticker.
func IsValidTicker(s string) bool {
	return tickerRegex.MatchString(s)
}

// IsValidPrice reports whether s parses as a non-negative decimal number.
func IsValidPrice(s string) bool {
	d, err := decimal.NewFromString(s)
	return err == nil && !d.IsNegative()
}

// IsValidDate reports whether s is a strict ISO-8601 calendar date
// ("YYYY-MM-DD"). No other format is accepted.
func IsValidDate(s string) bool {
	_, err := date.Parse(s)
	return err == nil
}

// IsValidAmount reports whether s parses as a non-negative decimal number.
func IsValidAmount(s string) bool {
	d, err := decimal.NewFromString(s)
	return err == nil && !d.IsNegative()
}

// ValidationError reports the first field of a candidate record that
// failed its predicate. Field is one of "ticker", "price", "date",
// "amount".
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// ParseRecord validates the four raw input strings and builds an immutable
// RawRecord from them. Inputs are trimmed of surrounding whitespace first.
// On failure it returns a *ValidationError naming the first field that was
// rejected; the record is not created.
func ParseRecord(ticker, price, day, amount string) (RawRecord, error) {
	ticker = strings.TrimSpace(ticker)
	price = strings.TrimSpace(price)
	day = strings.TrimSpace(day)
	amount = strings.TrimSpace(amount)

	if !IsValidTicker(ticker) {
		return RawRecord{}, &ValidationError{Field: "ticker", Value: ticker}
	}
	if !IsValidPrice(price) {
		return RawRecord{}, &ValidationError{Field: "price", Value: price}
	}
	if !IsValidDate(day) {
		return RawRecord{}, &ValidationError{Field: "date", Value: day}
	}
	if !IsValidAmount(amount) {
		return RawRecord{}, &ValidationError{Field: "amount", Value: amount}
	}

	// The predicates above guarantee these cannot fail.
	p, _ := decimal.NewFromString(price)
	d, _ := date.Parse(day)
	a, _ := decimal.NewFromString(amount)

	return RawRecord{
		Ticker: strings.ToUpper(ticker),
		Price:  p,
		Date:   d,
		Amount: a,
	}, nil
}
