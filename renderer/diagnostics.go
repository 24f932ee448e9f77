package renderer

import (
	"bytes"

	"github.com/etnz/acb"
	md "github.com/nao1215/markdown"
)

// DiagnosticsMarkdown renders the data quality warnings of a run, or an empty
// string if there is none.
func DiagnosticsMarkdown(d acb.Diagnostics) string {
	if !d.Inexact() {
		return ""
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Warning: inexact conversions")
	doc.PlainText("Some exchange rates are missing in the ledger, the nearest available rates were used instead. Results may be inexact.")

	table := md.TableSet{
		Header:    []string{"Pair", "Date", "Rate Used From"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
	}
	for _, m := range d.Missing {
		used := "none"
		if !m.Used.IsZero() {
			used = m.Used.String()
		}
		table.Rows = append(table.Rows, []string{m.From + "/" + m.To, m.Date.String(), used})
	}
	doc.Table(table)

	return doc.String()
}
