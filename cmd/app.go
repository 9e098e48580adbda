// Package cmd implements the CLI application to replicate an index fund.
package cmd

import (
	"flag"
	"fmt"

	"github.com/adewale/indexfund"
	"github.com/charmbracelet/glamour"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var fundFile = flag.String("fund-file", "fund.json", "Path to the fund data file (JSON array of equities)")
var universeFile = flag.String("universe", "universe.yaml", "Path to the universe file defining fund ticker lists")
var defaultCurrency = flag.String("currency", "NGN", "Currency the fund prices are denominated in")

// LoadFund loads the app default fund file.
func LoadFund() (indexfund.Fund, error) {
	return indexfund.LoadFund(*fundFile, *defaultCurrency)
}

// printMarkdown renders a markdown report for the terminal. If rendering
// fails the raw markdown is still printed: the report matters more than the
// styling.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
