package alphavantage

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newFakeServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithBaseURL("demo", srv.URL)
}

func TestGlobalQuote(t *testing.T) {
	c := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "GLOBAL_QUOTE" {
			t.Errorf("function = %q, want GLOBAL_QUOTE", got)
		}
		if got := r.URL.Query().Get("symbol"); got != "AAPL" {
			t.Errorf("symbol = %q, want AAPL", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "demo" {
			t.Errorf("apikey = %q, want demo", got)
		}
		fmt.Fprint(w, `{"Global Quote": {"01. symbol": "AAPL", "05. price": "123.4500", "07. latest trading day": "2024-01-15"}}`)
	})

	price, err := c.GlobalQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("GlobalQuote() unexpected error: %v", err)
	}
	if price.String() != "123.45" {
		t.Errorf("GlobalQuote() = %s, want 123.45", price)
	}
}

func TestGlobalQuoteFailures(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"Server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"Rate limit note instead of quote", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"Note": "Thank you for using Alpha Vantage!"}`)
		}},
		{"Empty quote object", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"Global Quote": {}}`)
		}},
		{"Price is not numeric", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"Global Quote": {"05. price": "none"}}`)
		}},
		{"Body is not JSON", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html>maintenance</html>`)
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newFakeServer(t, tc.handler)
			if _, err := c.GlobalQuote(context.Background(), "AAPL"); err == nil {
				t.Error("GlobalQuote() should have failed")
			}
		})
	}
}

func TestGlobalQuoteNetworkError(t *testing.T) {
	// Point at a closed server: the error must surface, not panic.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewWithBaseURL("demo", url)
	if _, err := c.GlobalQuote(context.Background(), "AAPL"); err == nil {
		t.Error("GlobalQuote() should fail when the provider is unreachable")
	}
}

func TestSearch(t *testing.T) {
	c := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "SYMBOL_SEARCH" {
			t.Errorf("function = %q, want SYMBOL_SEARCH", got)
		}
		fmt.Fprint(w, `{"bestMatches": [
			{"1. symbol": "AAPL", "2. name": "Apple Inc", "3. type": "Equity", "4. region": "United States", "8. currency": "USD", "9. matchScore": "1.0000"},
			{"1. symbol": "APLE", "2. name": "Apple Hospitality REIT Inc", "3. type": "Equity", "4. region": "United States", "8. currency": "USD", "9. matchScore": "0.8000"}
		]}`)
	})

	matches, err := c.Search(context.Background(), "apple")
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Search() returned %d matches, want 2", len(matches))
	}
	if matches[0].Symbol != "AAPL" || matches[0].Name != "Apple Inc" {
		t.Errorf("first match = %+v, want AAPL / Apple Inc", matches[0])
	}
}
