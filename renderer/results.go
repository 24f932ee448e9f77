package renderer

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/etnz/acb"
)

// Options holds configuration for rendering the results table.
type Options struct {
	Reverse bool // Show the most recent transaction first.
}

// ResultsMarkdown renders the ACB results of a security as a markdown table.
func ResultsMarkdown(ticker, currency string, rows []acb.Result, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Adjusted Cost Base of %s in %s\n\n", ticker, currency)
	if len(rows) == 0 {
		fmt.Fprintf(&b, "No transaction for %s.\n", ticker)
		return b.String()
	}

	if opts.Reverse {
		rows = slices.Clone(rows)
		slices.Reverse(rows)
	}

	fmt.Fprintln(&b, "| Date | Kind | Amount | Shares | Price | Commission | Capital Gain | Superficial | Total Shares | ACB Delta | Total ACB | ACB/Share |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|:---:|---:|---:|---:|---:|")
	for _, r := range rows {
		delta := r.ACBDelta
		if r.Kind == acb.Sell {
			delta = delta.Neg()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			r.Date,
			r.Kind,
			r.Amount.String(),
			r.Shares,
			r.Price.String(),
			r.Commission.String(),
			r.CapitalGain.SignedString(),
			yesNo(r.SuperficialLoss),
			r.TotalShares,
			delta.SignedString(),
			r.TotalACB.String(),
			r.ACBPerShare.String(),
		)
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\nSuperficial losses are not deductible, they remain in the cost base of the shares still held:\n\n")
		found := false
		for _, r := range rows {
			if r.SuperficialLoss {
				found = true
				fmt.Fprintf(w, "- %s: %s\n", r.Date, r.CapitalGain.String())
			}
		}
		return found
	})

	return b.String()
}
