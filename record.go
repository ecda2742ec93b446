package stockfolio

import (
	"github.com/etnz/stockfolio/date"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used to display monetary values.
// Quotes come from the provider in USD, and the tracker deliberately does
// no currency conversion.
const DefaultCurrency = "USD"

// RawRecord is a single stock purchase as entered by the user: which
// ticker was bought, at what price per share, on what day, and how many
// shares. These are the only four fields that are ever persisted.
//
// A RawRecord is built by ParseRecord and is immutable afterwards.
type RawRecord struct {
	Ticker string
	Price  decimal.Decimal // purchase price per share
	Date   date.Date
	Amount decimal.Decimal // number of shares
}

// Fields returns the four raw fields in their persisted order and form.
func (r RawRecord) Fields() []string {
	return []string{r.Ticker, r.Price.String(), r.Date.String(), r.Amount.String()}
}

// Cost returns the total purchase cost of the record (price times amount).
func (r RawRecord) Cost() Money {
	return M(r.Price.Mul(r.Amount), DefaultCurrency)
}

// Record is a RawRecord enriched with a live market quote and the derived
// gain percentage. Derived fields are never persisted: on load they are
// recomputed from a fresh quote.
type Record struct {
	RawRecord

	// Current is the market quote attached at enrichment time.
	// Its zero value means no quote could be obtained.
	Current Quote

	gain    Percent
	hasGain bool
}

// Gain returns the gain percentage relative to the purchase price, and
// whether it is known. It is unknown when the quote is unavailable, and
// also when the purchase price is zero (the percentage would be undefined).
func (r Record) Gain() (Percent, bool) { return r.gain, r.hasGain }

// MarketValue returns the current market value of the record (current
// price times amount), and whether it is known.
func (r Record) MarketValue() (Money, bool) {
	if !r.Current.Available() {
		return Money{}, false
	}
	return M(r.Current.Price().Mul(r.Amount), DefaultCurrency), true
}
