package acb

import (
	"fmt"
	"slices"

	"github.com/etnz/acb/date"
)

// State is the running position of a security: shares held and their total adjusted cost base.
//
// State is a value, each transition returns a new one.
type State struct {
	Shares Quantity
	ACB    Money
}

// PerShare returns the adjusted cost base of one share, zero when no share is held.
func (s State) PerShare() Money {
	if s.Shares.IsZero() {
		return M(0, s.ACB.Currency())
	}
	return s.ACB.Div(s.Shares)
}

// Result is the outcome of one transaction on the position.
type Result struct {
	Ticker string
	Date   date.Date
	Kind   Kind
	// Amount is the gross amount: shares times price, commissions excluded.
	Amount     Money
	Shares     Quantity
	Price      Money
	Commission Money
	// CapitalGain is zero on a Buy. A superficial loss keeps the actual loss here.
	CapitalGain     Money
	SuperficialLoss bool
	// ACBDelta is the cost added by a Buy or the base removed by a Sell.
	ACBDelta    Money
	TotalShares Quantity
	TotalACB    Money
	ACBPerShare Money
}

// MarshalJSON implements the json.Marshaler interface for Result.
func (r Result) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", r.Ticker)
	w.Append("date", r.Date)
	w.Append("kind", r.Kind)
	w.Append("amount", r.Amount)
	w.Append("shares", r.Shares)
	w.Append("price", r.Price)
	w.Append("commission", r.Commission)
	w.Append("capitalGain", r.CapitalGain)
	w.Optional("superficialLoss", r.SuperficialLoss)
	w.Append("acbDelta", r.ACBDelta)
	w.Append("totalShares", r.TotalShares)
	w.Append("totalAcb", r.TotalACB)
	w.Append("acbPerShare", r.ACBPerShare)
	return w.MarshalJSON()
}

// Env is what a transition needs besides the state.
type Env struct {
	// Currency is the reporting currency.
	Currency  string
	Converter *Converter
	// History is the complete transaction list of the security, for the superficial loss rule.
	History []Transaction
}

// Apply processes one transaction on s. It returns the next state and the
// result row. s is left untouched.
func (s State) Apply(tx Transaction, env *Env) (State, Result, error) {
	commission := M(0, env.Currency)
	for _, c := range tx.Commissions {
		converted, err := env.Converter.Convert(c, env.Currency, tx.Date)
		if err != nil {
			return s, Result{}, err
		}
		commission = commission.Add(converted)
	}
	price, err := env.Converter.Convert(tx.UnitPrice, env.Currency, tx.Date)
	if err != nil {
		return s, Result{}, err
	}
	// Start from a zero of the reporting currency so that a fresh State gets its currency.
	acb := M(0, env.Currency).Add(s.ACB)

	r := Result{
		Ticker:     tx.Ticker,
		Date:       tx.Date,
		Kind:       tx.Kind,
		Shares:     tx.Shares,
		Price:      price,
		Commission: commission,
	}
	var next State

	switch tx.Kind {
	case Buy:
		r.Amount = price.Mul(tx.Shares)
		cost := r.Amount.Add(commission)
		next = State{Shares: s.Shares.Add(tx.Shares), ACB: acb.Add(cost)}
		r.CapitalGain = M(0, env.Currency)
		r.ACBDelta = cost

	case Sell:
		if tx.Shares.GreaterThan(s.Shares) {
			return s, Result{}, &InsufficientSharesError{Date: tx.Date, Ticker: tx.Ticker, Requested: tx.Shares, Held: s.Shares}
		}
		r.Amount = price.Mul(tx.Shares)
		proceeds := r.Amount.Sub(commission)
		perShare := State{Shares: s.Shares, ACB: acb}.PerShare()
		reduction := perShare.Mul(tx.Shares)
		r.CapitalGain = proceeds.Sub(reduction)
		if r.CapitalGain.IsNegative() && IsSuperficialLoss(tx, env.History) {
			reduction = reduction.Add(r.CapitalGain)
			r.SuperficialLoss = true
		}
		r.ACBDelta = reduction

		next.Shares = s.Shares.Sub(tx.Shares)
		switch {
		case !next.Shares.IsPositive():
			next.ACB = M(0, env.Currency)
		case r.SuperficialLoss:
			next.ACB = acb.Sub(reduction)
		default:
			// The remaining shares keep the per-share ACB exactly.
			next.ACB = perShare.Mul(next.Shares)
		}

	default:
		return s, Result{}, &InvariantViolation{What: fmt.Sprintf("unknown transaction kind %v on %s", tx.Kind, tx.Date)}
	}

	r.TotalShares = next.Shares
	r.TotalACB = next.ACB
	r.ACBPerShare = next.PerShare()
	return next, r, nil
}

// Compute folds the transactions of a single security into one Result per
// transaction, in ascending date order. Transactions on the same day keep their
// relative order. Amounts are converted to currency with conv.
//
// No result is returned on error.
func Compute(txs []Transaction, conv *Converter, currency string) ([]Result, error) {
	sorted := slices.Clone(txs)
	sortByDate(sorted)
	for _, tx := range sorted {
		if tx.Ticker != sorted[0].Ticker {
			return nil, &InvariantViolation{What: fmt.Sprintf("transactions of several securities: %s and %s", sorted[0].Ticker, tx.Ticker)}
		}
	}

	env := &Env{Currency: currency, Converter: conv, History: sorted}
	state := State{Shares: Q(0), ACB: M(0, currency)}
	results := make([]Result, 0, len(sorted))
	for _, tx := range sorted {
		next, r, err := state.Apply(tx, env)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
		state = next
	}
	return results, nil
}
