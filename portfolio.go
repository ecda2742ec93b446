package stockfolio

import (
	"context"
	"fmt"
)

// Portfolio is an ordered collection of enriched purchase records.
// Insertion order is display order, and the index is the only identity a
// record has: removing a record shifts every later index down by one, so
// callers must resolve an index and act on it immediately.
//
// A Portfolio is not safe for concurrent use. The tracker serves a single
// user performing one action at a time; a future parallel quote fetch
// would have to serialize appends.
type Portfolio struct {
	records []Record
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio() *Portfolio { return &Portfolio{} }

// Len returns the number of records held.
func (p *Portfolio) Len() int { return len(p.records) }

// Add appends a record at the end of the portfolio.
func (p *Portfolio) Add(r Record) { p.records = append(p.records, r) }

// All returns the records in display order. The returned slice is a copy:
// mutating it does not affect the portfolio.
func (p *Portfolio) All() []Record {
	out := make([]Record, len(p.records))
	copy(out, p.records)
	return out
}

// At returns the record at the given position.
func (p *Portfolio) At(index int) (Record, error) {
	if index < 0 || index >= len(p.records) {
		return Record{}, &OutOfRangeError{Index: index, Len: len(p.records)}
	}
	return p.records[index], nil
}

// OutOfRangeError reports a record index that is not a valid position in
// the portfolio.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range, portfolio holds %d records", e.Index, e.Len)
}

// RemoveAt deletes the record at the given position, shifting subsequent
// records down by one. When the index is not a valid position it returns
// an *OutOfRangeError and leaves the portfolio unchanged.
func (p *Portfolio) RemoveAt(index int) error {
	if index < 0 || index >= len(p.records) {
		return &OutOfRangeError{Index: index, Len: len(p.records)}
	}
	p.records = append(p.records[:index], p.records[index+1:]...)
	return nil
}

// LoadRows validates, enriches and appends a batch of raw 4-field rows,
// typically decoded from a portfolio file. Rows that fail validation are
// skipped, not loaded half-baked; the count of rejected rows is returned
// so the caller can warn the user instead of losing data silently.
func (p *Portfolio) LoadRows(ctx context.Context, rows [][]string, enricher Enricher) (rejected int) {
	for _, row := range rows {
		raw, err := ParseRecord(row[0], row[1], row[2], row[3])
		if err != nil {
			rejected++
			continue
		}
		p.Add(enricher.Enrich(ctx, raw))
	}
	return rejected
}
