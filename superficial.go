package acb

import (
	"slices"
)

// SuperficialWindow is the number of days before and after a sale in which a
// purchase makes its loss superficial.
const SuperficialWindow = 30

// IsSuperficialLoss reports whether the superficial loss rule applies to sale:
// the same security was bought within SuperficialWindow days around the sale
// (bounds included) and shares are still held at the end of that window.
//
// all is the whole transaction history, it may contain other securities and
// need not be sorted. Identical properties under another ticker are not matched.
func IsSuperficialLoss(sale Transaction, all []Transaction) bool {
	txs := make([]Transaction, 0, len(all))
	for _, tx := range all {
		if tx.Ticker == sale.Ticker {
			txs = append(txs, tx)
		}
	}
	sortByDate(txs)

	first, last := sale.Date.Add(-SuperficialWindow), sale.Date.Add(SuperficialWindow)
	held := Q(0)
	boughtInWindow := false
	for _, tx := range txs {
		if tx.Date.After(last) {
			break
		}
		switch tx.Kind {
		case Buy:
			held = held.Add(tx.Shares)
			if !tx.Date.Before(first) {
				boughtInWindow = true
			}
		case Sell:
			held = held.Sub(tx.Shares)
		}
	}
	return boughtInWindow && !held.IsZero()
}

// sortByDate sorts transactions by ascending date, keeping the order of same day transactions.
func sortByDate(txs []Transaction) {
	slices.SortStableFunc(txs, func(a, b Transaction) int { return a.Date.Compare(b.Date) })
}
