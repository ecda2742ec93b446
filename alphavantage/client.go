// Package alphavantage fetches live market quotes from the Alpha Vantage
// HTTP API (https://www.alphavantage.co). Access requires an API key.
package alphavantage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/stockfolio"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the production Alpha Vantage endpoint.
const DefaultBaseURL = "https://www.alphavantage.co"

// requestTimeout bounds every request: a quote fetch blocks the whole
// session, an unresponsive provider must not hang it forever.
const requestTimeout = 10 * time.Second

// Client queries the Alpha Vantage API. Every call is a single
// best-effort attempt: no retry, no cache.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New returns a client using the production endpoint and the given API key.
func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// NewWithBaseURL returns a client pointing at an alternative endpoint.
// Used by tests to point at a local fake server.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	c := New(apiKey)
	c.baseURL = baseURL
	return c
}

// GlobalQuote returns the current price for a ticker.
//
// The response body is shaped as
//
//	{"Global Quote": {"05. price": "123.4500", ...}}
//
// Any failure (network error, non-200 status, missing or malformed price
// field) is returned as an error; the caller decides how to degrade.
func (c *Client) GlobalQuote(ctx context.Context, ticker string) (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		c.baseURL, url.QueryEscape(ticker), url.QueryEscape(c.apiKey))

	var jobj any
	if err := jwget(ctx, c.http, addr, &jobj); err != nil {
		return decimal.Decimal{}, fmt.Errorf("error retrieving quote for %q: %w", ticker, err)
	}

	// Alpha Vantage replies 200 with an informational body for unknown
	// tickers or exhausted keys, so the shape check is the real gate.
	path := `$["Global Quote"]["05. price"]`
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("no price in quote response for %q: %w", ticker, err)
	}

	sval, ok := jval.(string)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("price for %q is not a string: %v", ticker, jval)
	}
	price, err := decimal.NewFromString(sval)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("malformed price %q for %q: %w", sval, ticker, err)
	}
	return price, nil
}

// the whole point of this client is to enrich records.
var _ stockfolio.QuoteProvider = (*Client)(nil)
