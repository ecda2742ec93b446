package stockfolio

import (
	"context"
	"fmt"
	"os"
)

// LoadPortfolio reads a portfolio file, re-validates every row and
// enriches each valid one with a fresh quote. It returns the populated
// portfolio and the total number of rows that were dropped, either because
// they did not split into 4 fields or because a field failed validation.
// The caller should warn the user when skipped is not zero.
func LoadPortfolio(ctx context.Context, path string, enricher Enricher) (p *Portfolio, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("could not open portfolio file %q: %w", path, err)
	}
	defer f.Close()

	rows, malformed, err := DecodeRows(f)
	if err != nil {
		return nil, 0, fmt.Errorf("could not decode portfolio file %q: %w", path, err)
	}

	p = NewPortfolio()
	rejected := p.LoadRows(ctx, rows, enricher)
	return p, malformed + rejected, nil
}

// SavePortfolio writes the portfolio's raw records to the given file,
// replacing its previous content. On error the in-memory portfolio is
// untouched and the caller keeps working with it.
func SavePortfolio(path string, p *Portfolio) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open portfolio file %q for writing: %w", path, err)
	}
	defer f.Close()

	if err := EncodeRecords(f, p); err != nil {
		return fmt.Errorf("could not save portfolio file %q: %w", path, err)
	}
	return nil
}
