package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search the quote provider for a ticker symbol" }
func (*searchCmd) Usage() string {
	return `spc search <keywords>

  Searches Alpha Vantage for tickers matching the keywords, best matches
  first. Useful to find the exact symbol before adding a record.

Usage Example:
$ spc search apple
`
}

func (*searchCmd) SetFlags(_ *flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: search keywords are required.")
		return subcommands.ExitUsageError
	}
	keywords := strings.Join(f.Args(), " ")

	matches, err := NewQuoteClient().Search(ctx, keywords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching for %q: %v\n", keywords, err)
		return subcommands.ExitFailure
	}
	if len(matches) == 0 {
		fmt.Printf("No match for %q.\n", keywords)
		return subcommands.ExitSuccess
	}

	for _, m := range matches {
		fmt.Printf("%-6s %-40s %s (%s, score %s)\n", m.Symbol, m.Name, m.Type, m.Region, m.Score)
	}
	return subcommands.ExitSuccess
}
