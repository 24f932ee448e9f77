package acb

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Classify turns ledger entries into the buys and sells of the configured security.
//
// Entries without any posting on the security are skipped, so are transfers
// between tracked accounts (matched postings summing to exactly zero).
// Commissions are collected from every posting of the entry whose account is a
// commission account, whatever its currency.
func Classify(entries []Entry, conf SecurityConfig) ([]Transaction, error) {
	var txs []Transaction
	for _, e := range entries {
		tx, ok, err := classifyEntry(e, conf)
		if err != nil {
			return nil, err
		}
		if ok {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

// classifyEntry returns the transaction for e, or false if e is not a taxable event.
func classifyEntry(e Entry, conf SecurityConfig) (Transaction, bool, error) {
	var relevant []Posting
	for _, p := range e.Postings {
		if conf.IsInvestment(p) {
			relevant = append(relevant, p)
		}
	}
	if len(relevant) == 0 {
		return Transaction{}, false, nil
	}

	sum := decimal.Zero
	positives, negatives := 0, 0
	for _, p := range relevant {
		n := p.Units.Number
		sum = sum.Add(n)
		switch n.Sign() {
		case 1:
			positives++
		case -1:
			negatives++
		}
	}
	if positives != len(relevant) && negatives != len(relevant) {
		if sum.IsZero() {
			return Transaction{}, false, nil // transfer
		}
		return Transaction{}, false, &ValidationError{Date: e.Date, Reason: ReasonMixedSign, Detail: e.Narration}
	}

	var unit Amount
	var err error
	kind := Buy
	if sum.IsNegative() {
		kind = Sell
		unit, err = agreedAmount(e, relevant, func(p Posting) *Amount { return p.Price }, ReasonMissingSalePrice, ReasonInconsistentSalePrice)
		if err == nil && unit.Number.IsZero() {
			err = &ValidationError{Date: e.Date, Reason: ReasonZeroPrice, Detail: e.Narration}
		}
	} else {
		unit, err = agreedAmount(e, relevant, func(p Posting) *Amount { return p.Cost }, ReasonMissingCostBasis, ReasonInconsistentCostBasis)
	}
	if err != nil {
		return Transaction{}, false, err
	}

	var commissions []Money
	for _, p := range e.Postings {
		if conf.IsCommission(p) {
			commissions = append(commissions, p.Units.Money())
		}
	}

	return Transaction{
		Date:        e.Date,
		Kind:        kind,
		Ticker:      conf.Ticker,
		Shares:      Q(sum.Abs()),
		UnitPrice:   unit.Money(),
		Commissions: commissions,
	}, true, nil
}

// agreedAmount returns the amount annotated on every posting, which must all be identical.
func agreedAmount(e Entry, postings []Posting, annotation func(Posting) *Amount, missing, inconsistent string) (Amount, error) {
	var agreed *Amount
	for _, p := range postings {
		a := annotation(p)
		if a == nil {
			return Amount{}, &ValidationError{Date: e.Date, Reason: missing, Detail: p.Account}
		}
		if agreed == nil {
			agreed = a
			continue
		}
		if !agreed.Equal(*a) {
			return Amount{}, &ValidationError{Date: e.Date, Reason: inconsistent, Detail: fmt.Sprintf("%s != %s", agreed, a)}
		}
	}
	return *agreed, nil
}
