// Package cmd implements the CLI application to manage a stock purchase
// portfolio.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stockfolio"
	"github.com/etnz/stockfolio/alphavantage"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "records")
	c.Register(&deleteCmd{}, "records")
	c.Register(&listCmd{}, "records")
	c.Register(&fmtCmd{}, "records")

	c.Register(&quoteCmd{}, "quotes")
	c.Register(&searchCmd{}, "quotes")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("file", "portfolio.csv", "Path to the portfolio file")
var apiKeyFlag = flag.String("apikey", "", "Alpha Vantage API key (defaults to $"+EnvAPIKey+")")

const EnvAPIKey = "ALPHAVANTAGE_API_KEY"

func apiKey() string {
	if *apiKeyFlag != "" {
		return *apiKeyFlag
	}
	return os.Getenv(EnvAPIKey)
}

// NewQuoteClient returns the quote client configured for this run.
func NewQuoteClient() *alphavantage.Client {
	return alphavantage.New(apiKey())
}

// NewEnricher returns the enricher configured for this run.
func NewEnricher() stockfolio.Enricher {
	return stockfolio.Enricher{Quotes: NewQuoteClient()}
}

// DecodePortfolio loads the portfolio from the app portfolio file,
// enriching every record with a fresh quote. A missing file is not an
// error: it yields an empty portfolio, so the first `add` just works.
func DecodePortfolio(ctx context.Context) (*stockfolio.Portfolio, error) {
	p, skipped, err := stockfolio.LoadPortfolio(ctx, *portfolioFile, NewEnricher())
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, portfolio file does not exist, starting with an empty portfolio")
		return stockfolio.NewPortfolio(), nil
	}
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d row(s) in %q were malformed or invalid and were skipped.\n", skipped, *portfolioFile)
	}
	return p, nil
}

// EncodePortfolio saves the portfolio back into the app portfolio file.
func EncodePortfolio(p *stockfolio.Portfolio) error {
	return stockfolio.SavePortfolio(*portfolioFile, p)
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
