package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/adewale/indexfund"
	"github.com/adewale/indexfund/ngx"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	fund   string
	output string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch fund equity data from the exchange" }
func (*fetchCmd) Usage() string {
	return `ifund fetch [-f <fund>] [-o <file>]

  Fetches ticker, market capitalization and price for the configured fund
  universe from the Nigerian Exchange and writes them to a fund file.
  Responses are cached on disk for a day.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Fund name in the universe file. Defaults to the only fund if one exists.")
	f.StringVar(&c.output, "o", "", "Output fund file. Defaults to the -fund-file flag.")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	universe, err := indexfund.LoadUniverse(*universeFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading universe: %v\n", err)
		return subcommands.ExitFailure
	}

	tickers, err := universe.Tickers(c.fund)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error selecting fund: %v\n", err)
		return subcommands.ExitUsageError
	}

	fund, err := ngx.NewClient().Fetch(ctx, tickers, universe.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching equity data: %v\n", err)
		return subcommands.ExitFailure
	}

	output := c.output
	if output == "" {
		output = *fundFile
	}
	if err := indexfund.SaveFund(output, fund); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing fund file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully wrote %d equities to %s\n", len(fund), output)
	return subcommands.ExitSuccess
}
