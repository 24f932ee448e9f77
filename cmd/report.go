package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/acb"
	"github.com/etnz/acb/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	currency string
	reverse  bool
	html     bool
	json     bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "adjusted cost base and capital gains, transaction by transaction" }
func (*reportCmd) Usage() string {
	return `acb report [-c <currency>] [-reverse] [-html | -json]

  Computes the adjusted cost base of the security after each buy and sell,
  and the capital gain of each sell.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "CAD", "Reporting currency")
	f.BoolVar(&c.reverse, "reverse", false, "Show the most recent transactions first")
	f.BoolVar(&c.html, "html", false, "Print the report as HTML")
	f.BoolVar(&c.json, "json", false, "Print one JSON object per transaction")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := ApplyEnv(f, currencyEnv); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.html && c.json {
		fmt.Fprintln(stderr, "-html and -json flags cannot be used together")
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

	switch {
	case c.json:
		if c.reverse {
			fmt.Fprintln(stderr, "-reverse is ignored with -json")
		}
		if err := acb.EncodeResults(stdout, rows); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	case c.html:
		md := renderer.ResultsMarkdown(in.conf.Ticker, c.currency, rows, renderer.Options{Reverse: c.reverse})
		if err := renderer.HTML(stdout, md+renderer.DiagnosticsMarkdown(conv.Diagnostics)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	default:
		printMarkdown(renderer.ResultsMarkdown(in.conf.Ticker, c.currency, rows, renderer.Options{Reverse: c.reverse}))
	}

	if d := renderer.DiagnosticsMarkdown(conv.Diagnostics); d != "" {
		printMarkdownTo(stderr, d)
	}
	return subcommands.ExitSuccess
}
