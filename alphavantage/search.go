package alphavantage

import (
	"context"
	"fmt"
	"net/url"
)

// Match is a single search result from the symbol search API. The odd
// field names are Alpha Vantage's own.
type Match struct {
	Symbol   string `json:"1. symbol"`
	Name     string `json:"2. name"`
	Type     string `json:"3. type"`
	Region   string `json:"4. region"`
	Currency string `json:"8. currency"`
	Score    string `json:"9. matchScore"`
}

// Search looks up tickers matching the given keywords, best matches first.
func (c *Client) Search(ctx context.Context, keywords string) ([]Match, error) {
	addr := fmt.Sprintf("%s/query?function=SYMBOL_SEARCH&keywords=%s&apikey=%s",
		c.baseURL, url.QueryEscape(keywords), url.QueryEscape(c.apiKey))

	var content struct {
		BestMatches []Match `json:"bestMatches"`
	}
	if err := jwget(ctx, c.http, addr, &content); err != nil {
		return nil, fmt.Errorf("failed to search for %q: %w", keywords, err)
	}
	return content.BestMatches, nil
}
