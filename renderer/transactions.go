package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/acb"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders the buys and sells found in the ledger for a security.
func TransactionsMarkdown(ticker string, txs []acb.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Transactions of %s", ticker))
	if len(txs) == 0 {
		doc.PlainText(fmt.Sprintf("No transaction for %s.", ticker))
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Kind", "Shares", "Unit Price", "Commissions"},
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
	}
	for _, tx := range txs {
		commissions := make([]string, 0, len(tx.Commissions))
		for _, c := range tx.Commissions {
			commissions = append(commissions, c.String()+" "+c.Currency())
		}
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			tx.Kind.String(),
			tx.Shares.String(),
			tx.UnitPrice.String() + " " + tx.UnitPrice.Currency(),
			strings.Join(commissions, ", "),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d transactions.", len(txs)))

	return doc.String()
}
