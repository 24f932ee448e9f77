package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/acb"
)

// GainsMarkdown renders the realized gains per period.
func GainsMarkdown(s *acb.GainsSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Realized Capital Gains for %s\n\n", s.Ticker)
	if len(s.Periods) == 0 {
		fmt.Fprint(&b, "No disposition.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Reporting currency: %s, %s periods.\n\n", s.Currency, s.Period)

	fmt.Fprintln(&b, "| Period | Dispositions | Proceeds | Capital Gain | Superficial Losses | Net Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, p := range s.Periods {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s |\n",
			p.Range.Identifier(),
			p.Dispositions,
			p.Proceeds.String(),
			p.CapitalGain.SignedString(),
			p.SuperficialLosses.SignedString(),
			p.Net().SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | **%d** | **%s** | **%s** | **%s** | **%s** |\n",
		"Total",
		s.Total.Dispositions,
		s.Total.Proceeds.String(),
		s.Total.CapitalGain.SignedString(),
		s.Total.SuperficialLosses.SignedString(),
		s.Total.Net().SignedString(),
	)

	return b.String()
}
