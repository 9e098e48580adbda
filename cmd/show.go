package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/adewale/indexfund/renderer"
	"github.com/google/subcommands"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the fund composition" }
func (*showCmd) Usage() string {
	return `ifund show

  Displays the equities of the fund file: ticker, company name, market
  capitalization and last price.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fund, err := LoadFund()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fund: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderFund(renderer.NewFundView(fund)))
	return subcommands.ExitSuccess
}
