package stockfolio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// This file implements the flat-file row format: one record per line, the
// four raw fields joined by commas, in order ticker,price,date,amount.
// There is no quoting or escaping, a field containing a comma corrupts its
// row. That is a documented limitation of the format, not of the decoder.

// fieldsPerRow is the exact number of comma-separated fields in a row.
const fieldsPerRow = 4

// DecodeRows reads a portfolio file and returns its raw rows, each exactly
// 4 fields, in file order. Lines that do not split into exactly 4 fields
// are skipped and counted in 'skipped'; blank lines are ignored silently.
// Accepts both LF and CRLF line endings.
func DecodeRows(r io.Reader) (rows [][]string, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != fieldsPerRow {
			skipped++
			continue
		}
		rows = append(rows, parts)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("could not read portfolio rows: %w", err)
	}
	return rows, skipped, nil
}

// EncodeRecords writes every record of the portfolio in display order, one
// row per line. Only the four raw fields are written; derived fields are
// recomputed on load, never persisted.
func EncodeRecords(w io.Writer, p *Portfolio) error {
	for _, rec := range p.All() {
		if _, err := fmt.Fprintln(w, strings.Join(rec.Fields(), ",")); err != nil {
			return fmt.Errorf("could not write record %q: %w", rec.Ticker, err)
		}
	}
	return nil
}
