package acb

import (
	"fmt"

	"github.com/etnz/acb/date"
)

// Kind is the kind of a normalized transaction. Only Buy and Sell exist.
type Kind int

const (
	Buy Kind = iota + 1
	Sell
)

func (k Kind) String() string {
	switch k {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalJSON writes the kind as its name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Transaction is a buy or a sell of a single security, normalized from a ledger entry.
type Transaction struct {
	Date   date.Date
	Kind   Kind
	Ticker string
	// Shares is always strictly positive.
	Shares Quantity
	// UnitPrice is the cost basis per share for a Buy, the sale price per share for a Sell.
	UnitPrice   Money
	Commissions []Money
}

// NewBuy creates a new Buy transaction.
func NewBuy(on date.Date, ticker string, shares Quantity, cost Money, commissions ...Money) Transaction {
	return Transaction{Date: on, Kind: Buy, Ticker: ticker, Shares: shares, UnitPrice: cost, Commissions: commissions}
}

// NewSell creates a new Sell transaction.
func NewSell(on date.Date, ticker string, shares Quantity, price Money, commissions ...Money) Transaction {
	return Transaction{Date: on, Kind: Sell, Ticker: ticker, Shares: shares, UnitPrice: price, Commissions: commissions}
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("kind", t.Kind)
	w.Append("ticker", t.Ticker)
	w.Append("shares", t.Shares)
	w.Append("unitPrice", t.UnitPrice)
	w.Optional("commissions", t.Commissions)
	return w.MarshalJSON()
}
