package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/acb"
	"github.com/etnz/acb/renderer"
	"github.com/google/subcommands"
)

type transactionsCmd struct {
	json bool
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list the buys and sells found in the ledger" }
func (*transactionsCmd) Usage() string {
	return `acb transactions [-json]

  Lists the buys and sells of the security found in the ledger, in ledger
  order, to check the account prefixes of the configuration.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print one JSON object per transaction")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := loadInputs()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		if err := acb.EncodeTransactions(stdout, in.txs); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TransactionsMarkdown(in.conf.Ticker, in.txs))
	return subcommands.ExitSuccess
}
