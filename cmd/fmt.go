package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the portfolio file in a canonical form"
}
func (*fmtCmd) Usage() string {
	return `spc fmt

  Reads the portfolio file, re-validates every row and writes the file
  back in its canonical form: four comma-separated fields per line, no
  blank lines. Malformed or invalid rows are dropped, and their count is
  reported before anything is written.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %q, %d record(s) kept.\n", *portfolioFile, p.Len())
	return subcommands.ExitSuccess
}
