package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch the current price for a ticker" }
func (*quoteCmd) Usage() string {
	return `spc quote <ticker>

  Fetches and prints the current price for a single ticker, without
  touching the portfolio.

Usage Example:
$ spc quote AAPL
`
}

func (*quoteCmd) SetFlags(_ *flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one ticker is required.")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)
	if !stockfolio.IsValidTicker(ticker) {
		fmt.Fprintf(os.Stderr, "Error: invalid ticker %q. It should be 1 to 4 letters.\n", ticker)
		return subcommands.ExitUsageError
	}

	price, err := NewQuoteClient().GlobalQuote(ctx, ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quote: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %s\n", ticker, price)
	return subcommands.ExitSuccess
}
