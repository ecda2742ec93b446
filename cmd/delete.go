package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	index int
	yes   bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a record from the portfolio by index" }
func (*deleteCmd) Usage() string {
	return `spc delete -i <index> [-y]

  Deletes the record at the given index, as shown by 'spc list', and
  saves the portfolio file. Asks for confirmation unless -y is given.

  Indices are positions, not identities: deleting a record shifts every
  later index down by one. Always take the index from a fresh listing.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the record to delete (required)")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.index < 0 {
		fmt.Fprintln(os.Stderr, "Error: -i <index> is required.")
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	rec, err := p.At(c.index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.yes {
		fmt.Printf("Delete record %d (%s, %s share(s) bought on %s)? [y/N] ",
			c.index, rec.Ticker, rec.Amount, rec.Date)
		answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	if err := p.RemoveAt(c.index); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted record %d, %d record(s) left.\n", c.index, p.Len())
	return subcommands.ExitSuccess
}
