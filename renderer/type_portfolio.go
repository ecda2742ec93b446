package renderer

import (
	"github.com/etnz/stockfolio"
)

// RecordRow is the display form of a single enriched record. All values
// are pre-formatted strings so the templates stay trivial.
type RecordRow struct {
	Index   int
	Ticker  string
	Price   string // purchase price per share
	Date    string
	Amount  string
	Cost    string // purchase cost, price times amount
	Current string // current quoted price, or "n/a"
	Gain    string // signed gain percentage, or "n/a"
}

// PortfolioView is the display form of the whole portfolio.
type PortfolioView struct {
	Rows []RecordRow

	Count     int
	TotalCost string

	// TotalValue is only meaningful when every record has a quote;
	// a partial total would be misleading.
	TotalValue      string
	TotalValueKnown bool

	// Unquoted counts the records whose quote is unavailable.
	Unquoted int
}

// NewRecordRow builds the display row for a record at a given position.
func NewRecordRow(index int, r stockfolio.Record) RecordRow {
	row := RecordRow{
		Index:   index,
		Ticker:  r.Ticker,
		Price:   r.Price.String(),
		Date:    r.Date.String(),
		Amount:  r.Amount.String(),
		Cost:    r.Cost().String(),
		Current: r.Current.String(),
		Gain:    "n/a",
	}
	if gain, ok := r.Gain(); ok {
		row.Gain = gain.SignedString()
	}
	return row
}

// NewPortfolioView builds the display form of the given records, in order.
func NewPortfolioView(records []stockfolio.Record) *PortfolioView {
	v := &PortfolioView{Count: len(records)}

	var totalCost, totalValue stockfolio.Money
	valueKnown := true
	for i, r := range records {
		v.Rows = append(v.Rows, NewRecordRow(i, r))
		totalCost = totalCost.Add(r.Cost())
		if value, ok := r.MarketValue(); ok {
			totalValue = totalValue.Add(value)
		} else {
			valueKnown = false
			v.Unquoted++
		}
	}

	v.TotalCost = totalCost.String()
	if len(records) > 0 && valueKnown {
		v.TotalValue = totalValue.String()
		v.TotalValueKnown = true
	}
	return v
}
