package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/adewale/indexfund"
	"github.com/adewale/indexfund/renderer"
	"github.com/google/subcommands"
)

// weightsCmd holds the flags for the 'weights' subcommand.
type weightsCmd struct {
	cap float64
}

func (*weightsCmd) Name() string     { return "weights" }
func (*weightsCmd) Synopsis() string { return "display the capped market-cap weights of the fund" }
func (*weightsCmd) Usage() string {
	return `ifund weights [-cap <fraction>]

  Displays the weight each fund equity would receive: proportional to market
  capitalization, capped per equity, with the stripped excess redistributed.
`
}

func (c *weightsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.cap, "cap", 0.20, "Maximum weight per equity as a decimal fraction")
}

func (c *weightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fund, err := LoadFund()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fund: %v\n", err)
		return subcommands.ExitFailure
	}

	weights, err := indexfund.CapWeights(fund, c.cap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing weights: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderWeights(renderer.NewWeights(fund, weights, c.cap)))
	return subcommands.ExitSuccess
}
