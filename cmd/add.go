package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/etnz/stockfolio/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	ticker string
	price  string
	date   string
	amount string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a purchase record to the portfolio" }
func (*addCmd) Usage() string {
	return `spc add -ticker <ticker> -price <price> -date <date> -amount <amount>

  Validates the four fields, fetches the current price for the ticker,
  appends the record to the portfolio and saves the portfolio file.
  A failed quote fetch is only a warning: the record is added anyway,
  with its current price and gain unknown.

  - ticker: 1 to 4 letters (e.g. "AAPL").
  - price: purchase price per share, a non-negative number.
  - date: purchase date, strictly YYYY-MM-DD.
  - amount: number of shares, a non-negative number.

Usage Example:
$ spc add -ticker AAPL -price 150.25 -date 2024-01-15 -amount 10
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol (required)")
	f.StringVar(&c.price, "price", "", "Purchase price per share (required)")
	f.StringVar(&c.date, "date", "", "Purchase date, YYYY-MM-DD (required)")
	f.StringVar(&c.amount, "amount", "", "Number of shares (required)")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	raw, err := stockfolio.ParseRecord(c.ticker, c.price, c.date, c.amount)
	var verr *stockfolio.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Error: %v.\n", verr)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	p, err := DecodePortfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := NewEnricher().Enrich(ctx, raw)
	p.Add(rec)

	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	row := renderer.NewRecordRow(p.Len()-1, rec)
	printMarkdown(renderer.RenderRecord(&row))
	return subcommands.ExitSuccess
}
