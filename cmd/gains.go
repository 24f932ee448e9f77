package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/acb"
	"github.com/etnz/acb/date"
	"github.com/etnz/acb/renderer"
	"github.com/google/subcommands"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	currency string
	period   string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized capital gains per period" }
func (*gainsCmd) Usage() string {
	return `acb gains [-c <currency>] [-period <period>]

  Sums the capital gains realized by the sells of the security per period,
  tax year by default. Superficial losses are shown apart.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "CAD", "Reporting currency")
	f.StringVar(&c.period, "period", date.Yearly.String(), "Predefined period (day, week, month, quarter, year)")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := ApplyEnv(f, currencyEnv); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	in, err := loadInputs()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	conv := acb.NewConverter(in.ledger.Prices)
	rows, err := acb.Compute(in.txs, conv, c.currency)
	if err != nil {
		fmt.Fprintf(stderr, "Error computing ACB of %s: %v\n", in.conf.Ticker, err)
		return subcommands.ExitFailure
	}
	summary := acb.Summarize(rows, p)
	if summary.Ticker == "" {
		summary.Ticker, summary.Currency = in.conf.Ticker, c.currency
	}

	printMarkdown(renderer.GainsMarkdown(summary))
	if d := renderer.DiagnosticsMarkdown(conv.Diagnostics); d != "" {
		printMarkdownTo(stderr, d)
	}
	return subcommands.ExitSuccess
}
