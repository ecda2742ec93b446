package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the portfolio with current prices and gains" }
func (*listCmd) Usage() string {
	return `spc list

  Loads the portfolio file, fetches a current quote for every record and
  displays the enriched table: purchase fields, cost, current price and
  gain percentage. Records whose quote could not be fetched show "n/a".
`
}

func (*listCmd) SetFlags(_ *flag.FlagSet) {}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderPortfolio(renderer.NewPortfolioView(p.All())))
	return subcommands.ExitSuccess
}
