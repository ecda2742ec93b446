package stockfolio

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
)

// Quote is the current market price for a ticker as reported by an
// external provider. Its zero value means "unavailable": no valid quote
// could be obtained. Arithmetic on an unavailable quote is impossible by
// construction, there is no sentinel price that could leak into a
// computation.
type Quote struct {
	price decimal.Decimal
	ok    bool
}

// NewQuote returns an available quote at the given price.
func NewQuote(price decimal.Decimal) Quote { return Quote{price: price, ok: true} }

// Unavailable returns the quote that could not be obtained.
func Unavailable() Quote { return Quote{} }

// Available reports whether the quote holds a price.
func (q Quote) Available() bool { return q.ok }

// Price returns the quoted price. It is only meaningful when Available.
func (q Quote) Price() decimal.Decimal { return q.price }

func (q Quote) String() string {
	if !q.ok {
		return "n/a"
	}
	return q.price.String()
}

// A QuoteProvider fetches the current market price for a ticker.
// It is a single best-effort attempt: no retry, no cache.
type QuoteProvider interface {
	GlobalQuote(ctx context.Context, ticker string) (decimal.Decimal, error)
}

// Enricher attaches a live quote and the derived gain percentage to
// validated raw records.
type Enricher struct {
	Quotes QuoteProvider
}

// Enrich produces the derived record for 'raw'. The record is always
// produced: when the quote fetch fails the quote and the gain are simply
// unavailable, and the failure is logged as a warning for the caller to
// surface.
func (e Enricher) Enrich(ctx context.Context, raw RawRecord) Record {
	rec := Record{RawRecord: raw}

	price, err := e.Quotes.GlobalQuote(ctx, raw.Ticker)
	if err != nil {
		log.Printf("warning: no quote for %q: %v", raw.Ticker, err)
		return rec
	}
	rec.Current = NewQuote(price)

	gain, err := GainOn(price, raw.Price)
	if err != nil {
		// zero purchase price: the quote stays, the gain is unknown.
		log.Printf("warning: %s: %v", raw.Ticker, err)
		return rec
	}
	rec.gain = gain
	rec.hasGain = true
	return rec
}
